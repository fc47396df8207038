package filter

import "careergranny/internal/domain"

// State holds the event filter bar state
type State struct {
	Options []string // "all" first, then categories in catalog order
	Current int
	Results []domain.EventRecord
}

// Event types
type FilterChangedEvent struct {
	Category string
	Count    int
}
