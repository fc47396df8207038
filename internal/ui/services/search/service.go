package search

import (
	"careergranny/internal/domain"
	appLog "careergranny/internal/log"
	"careergranny/internal/logic"
	"careergranny/internal/ui/services/events"
)

// Service handles the search overlay: live querying, cycling through
// results and opening the section a result belongs to.
type Service struct {
	state     *State
	bus       events.EventBus
	recordsFn func() []domain.SearchRecord
	minLength int
}

// NewService creates a new search service
func NewService(bus events.EventBus, minLength int) *Service {
	if minLength <= 0 {
		minLength = logic.MinQueryLength
	}
	return &Service{
		state: &State{
			Outcome: logic.SearchOutcome{EmptyQuery: true},
		},
		bus:       bus,
		minLength: minLength,
	}
}

// SetRecordsFunction sets the function that supplies the search dataset
func (s *Service) SetRecordsFunction(fn func() []domain.SearchRecord) {
	s.recordsFn = fn
}

// StartSearch evaluates query. It runs on every keystroke.
func (s *Service) StartSearch(query string) {
	if query == s.state.Query {
		return // Same search
	}

	s.state.Query = query
	s.bus.Publish(SearchStartedEvent{Query: query})
	s.performSearch()
}

// ClearSearch clears the current search
func (s *Service) ClearSearch() {
	s.state.Query = ""
	s.state.Outcome = logic.SearchOutcome{EmptyQuery: true}
	s.state.CurrentMatch = 0

	s.bus.Publish(SearchClearedEvent{})
}

// NavigateNext moves to the next search result
func (s *Service) NavigateNext() {
	n := len(s.state.Outcome.Records)
	if n == 0 {
		return
	}
	s.moveTo((s.state.CurrentMatch + 1) % n)
}

// NavigatePrevious moves to the previous search result
func (s *Service) NavigatePrevious() {
	n := len(s.state.Outcome.Records)
	if n == 0 {
		return
	}
	s.moveTo((s.state.CurrentMatch - 1 + n) % n)
}

// Select opens the current result. It reports false when there is nothing to select.
func (s *Service) Select() (domain.Section, bool) {
	record, ok := s.Selected()
	if !ok {
		return "", false
	}

	section := logic.SectionForCategory(record.Category)
	appLog.Info("search result selected", "title", record.Title, "section", section)
	s.bus.Publish(ResultSelectedEvent{Record: record, Section: section})
	return section, true
}

// GetQuery returns the raw query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// Outcome returns the outcome of the last evaluation
func (s *Service) Outcome() logic.SearchOutcome {
	return s.state.Outcome
}

// GetMatchCount returns the number of matches
func (s *Service) GetMatchCount() int {
	return len(s.state.Outcome.Records)
}

// GetCurrentMatchIndex returns the highlighted result, or -1 with no results
func (s *Service) GetCurrentMatchIndex() int {
	if len(s.state.Outcome.Records) == 0 {
		return -1
	}
	return s.state.CurrentMatch
}

// Selected returns the highlighted result
func (s *Service) Selected() (domain.SearchRecord, bool) {
	idx := s.GetCurrentMatchIndex()
	if idx < 0 {
		return domain.SearchRecord{}, false
	}
	return s.state.Outcome.Records[idx], true
}

func (s *Service) performSearch() {
	var records []domain.SearchRecord
	if s.recordsFn != nil {
		records = s.recordsFn()
	}

	s.state.Outcome = logic.SearchWithMin(s.state.Query, records, s.minLength)
	s.state.CurrentMatch = 0

	appLog.Debug("search evaluated", "query", s.state.Outcome.Query, "matches", len(s.state.Outcome.Records))

	s.bus.Publish(SearchCompletedEvent{
		Query:      s.state.Outcome.Query,
		EmptyQuery: s.state.Outcome.EmptyQuery,
		MatchCount: len(s.state.Outcome.Records),
	})
}

func (s *Service) moveTo(index int) {
	old := s.state.CurrentMatch
	s.state.CurrentMatch = index
	s.bus.Publish(SearchNavigatedEvent{OldIndex: old, NewIndex: index})
}
