package carousel

import "careergranny/internal/logic"

// State holds carousel state
type State struct {
	Position   logic.CarouselState
	Configured int  // visible count from config, the upper bound for resizes
	Dragging   bool // a mouse drag is in progress
	DragStartX int
}

// Event types
type MovedEvent struct {
	Direction logic.Direction
	OldIndex  int
	NewIndex  int
	Auto      bool
}

type ReleasedEvent struct{}

type ResetEvent struct {
	VisibleCount int
}
