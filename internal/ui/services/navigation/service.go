package navigation

import (
	"careergranny/internal/domain"
	"careergranny/internal/ui/services/events"
)

// Service tracks which section is visible. Exactly one section is shown at a time.
type Service struct {
	state    *State
	bus      events.EventBus
	sections []domain.Section
}

// NewService creates a new navigation service starting on the home section
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			Current: domain.SectionHome,
		},
		bus:      bus,
		sections: domain.Sections(),
	}
}

// Current returns the visible section
func (s *Service) Current() domain.Section {
	return s.state.Current
}

// Sections returns the menu entries in order
func (s *Service) Sections() []domain.Section {
	return s.sections
}

// MenuOpen reports whether the section menu is expanded
func (s *Service) MenuOpen() bool {
	return s.state.MenuOpen
}

// Cursor returns the highlighted menu entry
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// Show makes section the visible one and closes the menu.
// Unknown sections fall back to home.
func (s *Service) Show(section domain.Section) {
	if s.indexOf(section) < 0 {
		section = domain.SectionHome
	}
	s.closeMenu()

	if section == s.state.Current {
		return
	}
	from := s.state.Current
	s.state.Current = section
	s.state.Cursor = s.indexOf(section)
	s.bus.Publish(SectionChangedEvent{From: from, To: section})
}

// Navigate moves between sections, or the menu cursor when the menu is open
func (s *Service) Navigate(direction Direction) {
	if s.state.MenuOpen {
		switch direction {
		case DirectionUp, DirectionLeft:
			s.state.Cursor = s.wrap(s.state.Cursor - 1)
		case DirectionDown, DirectionRight:
			s.state.Cursor = s.wrap(s.state.Cursor + 1)
		}
		return
	}

	current := s.indexOf(s.state.Current)
	switch direction {
	case DirectionLeft:
		s.Show(s.sections[s.wrap(current-1)])
	case DirectionRight:
		s.Show(s.sections[s.wrap(current+1)])
	}
}

// ToggleMenu opens or closes the section menu
func (s *Service) ToggleMenu() {
	s.state.MenuOpen = !s.state.MenuOpen
	if s.state.MenuOpen {
		s.state.Cursor = s.indexOf(s.state.Current)
	}
	s.bus.Publish(MenuToggledEvent{Open: s.state.MenuOpen})
}

// ChooseCursor shows the section under the menu cursor
func (s *Service) ChooseCursor() {
	if !s.state.MenuOpen {
		return
	}
	s.Show(s.sections[s.wrap(s.state.Cursor)])
}

// CloseMenu collapses the menu without changing section
func (s *Service) CloseMenu() {
	if s.state.MenuOpen {
		s.closeMenu()
		s.bus.Publish(MenuToggledEvent{Open: false})
	}
}

func (s *Service) closeMenu() {
	s.state.MenuOpen = false
}

func (s *Service) indexOf(section domain.Section) int {
	for i, sec := range s.sections {
		if sec == section {
			return i
		}
	}
	return -1
}

func (s *Service) wrap(i int) int {
	n := len(s.sections)
	return ((i % n) + n) % n
}
