package navigation

import "careergranny/internal/domain"

// State holds all navigation-related state
type State struct {
	Current  domain.Section
	MenuOpen bool
	Cursor   int // highlighted menu entry while the menu is open
}

// Direction represents movement through the section menu
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// Event types for navigation changes
type SectionChangedEvent struct {
	From domain.Section
	To   domain.Section
}

type MenuToggledEvent struct {
	Open bool
}
