package search

import (
	"careergranny/internal/domain"
	"careergranny/internal/logic"
)

// State holds search state
type State struct {
	Query        string // raw text as typed
	Outcome      logic.SearchOutcome
	CurrentMatch int // index into Outcome.Records
}

// Event types
type SearchStartedEvent struct {
	Query string
}

type SearchCompletedEvent struct {
	Query      string // normalized
	EmptyQuery bool
	MatchCount int
}

type SearchClearedEvent struct{}

type SearchNavigatedEvent struct {
	OldIndex int
	NewIndex int
}

type ResultSelectedEvent struct {
	Record  domain.SearchRecord
	Section domain.Section
}
