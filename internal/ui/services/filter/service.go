package filter

import (
	"careergranny/internal/domain"
	"careergranny/internal/logic"
	"careergranny/internal/ui/services/events"
)

// Service drives the events section filter bar
type Service struct {
	state  *State
	bus    events.EventBus
	events []domain.EventRecord
}

// NewService creates a filter over the catalog with "all" selected
func NewService(bus events.EventBus, catalog []domain.EventRecord) *Service {
	return &Service{
		state: &State{
			Options: logic.FilterOptions(catalog),
			Results: logic.FilterEvents(logic.AllCategories, catalog),
		},
		bus:    bus,
		events: catalog,
	}
}

// Apply selects category. Categories not in the bar still filter, they
// simply match nothing.
func (s *Service) Apply(category string) {
	s.state.Current = -1
	for i, opt := range s.state.Options {
		if opt == category {
			s.state.Current = i
			break
		}
	}
	s.apply(category)
}

// Next selects the next option in the bar
func (s *Service) Next() {
	s.step(1)
}

// Previous selects the previous option in the bar
func (s *Service) Previous() {
	s.step(-1)
}

// Category returns the active category
func (s *Service) Category() string {
	if s.state.Current < 0 || s.state.Current >= len(s.state.Options) {
		return ""
	}
	return s.state.Options[s.state.Current]
}

// Options returns the filter bar entries
func (s *Service) Options() []string {
	return s.state.Options
}

// Results returns the events matching the active category
func (s *Service) Results() []domain.EventRecord {
	return s.state.Results
}

func (s *Service) step(delta int) {
	n := len(s.state.Options)
	if n == 0 {
		return
	}
	s.state.Current = ((s.state.Current+delta)%n + n) % n
	s.apply(s.state.Options[s.state.Current])
}

func (s *Service) apply(category string) {
	s.state.Results = logic.FilterEvents(category, s.events)
	s.bus.Publish(FilterChangedEvent{Category: category, Count: len(s.state.Results)})
}
