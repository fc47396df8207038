package carousel

import (
	"errors"

	"careergranny/internal/domain"
	appLog "careergranny/internal/log"
	"careergranny/internal/logic"
	"careergranny/internal/ui/services/events"
)

// Service owns the carousel position and its transition lock. The lock is
// taken after every accepted move of a scrollable carousel; the caller
// releases it once the cool-down elapses.
type Service struct {
	state     *State
	bus       events.EventBus
	items     []domain.EventRecord
	threshold int
}

// NewService creates a carousel over items showing visibleCount at a time
func NewService(bus events.EventBus, items []domain.EventRecord, visibleCount, swipeThreshold int) *Service {
	if visibleCount < 1 {
		visibleCount = logic.DefaultVisibleCount
	}
	return &Service{
		state: &State{
			Position:   logic.NewCarouselState(len(items), visibleCount),
			Configured: visibleCount,
		},
		bus:       bus,
		items:     items,
		threshold: swipeThreshold,
	}
}

// Move advances one page. It reports whether the lock was taken, in which
// case the caller must schedule Release. Moves while locked return
// logic.ErrCarouselBusy and change nothing.
func (s *Service) Move(direction logic.Direction, auto bool) (bool, error) {
	old := s.state.Position
	next, err := logic.Advance(old, direction)
	if err != nil {
		if errors.Is(err, logic.ErrCarouselBusy) {
			appLog.Debug("carousel move ignored", "direction", direction, "auto", auto)
		}
		return false, err
	}

	locked := next.Scrollable()
	if locked {
		next = next.Locked()
	}
	s.state.Position = next

	if next.Index != old.Index {
		s.bus.Publish(MovedEvent{
			Direction: direction,
			OldIndex:  old.Index,
			NewIndex:  next.Index,
			Auto:      auto,
		})
	}
	return locked, nil
}

// Release clears the transition lock
func (s *Service) Release() {
	if !s.state.Position.IsTransitioning {
		return
	}
	s.state.Position = s.state.Position.Unlocked()
	s.bus.Publish(ReleasedEvent{})
}

// Resize goes back to the first page and fits at most the configured number
// of cards into the available width.
func (s *Service) Resize(fit int) {
	visible := min(max(fit, 1), s.state.Configured)
	pos := logic.NewCarouselState(len(s.items), visible)
	pos.IsTransitioning = s.state.Position.IsTransitioning
	s.state.Position = pos
	s.bus.Publish(ResetEvent{VisibleCount: visible})
}

// BeginDrag records where a mouse drag started
func (s *Service) BeginDrag(x int) {
	s.state.Dragging = true
	s.state.DragStartX = x
}

// EndDrag finishes a drag and moves when it was long enough.
// It returns the direction taken, if any, and whether the lock was taken.
func (s *Service) EndDrag(x int) (logic.Direction, bool, error) {
	if !s.state.Dragging {
		return "", false, nil
	}
	s.state.Dragging = false

	direction, ok := logic.SwipeDirection(s.state.DragStartX, x, s.threshold)
	if !ok {
		return "", false, nil
	}
	locked, err := s.Move(direction, false)
	return direction, locked, err
}

// Position returns the current paging state
func (s *Service) Position() logic.CarouselState {
	return s.state.Position
}

// Visible returns the cards in the current window
func (s *Service) Visible() []domain.EventRecord {
	start, end := s.state.Position.Window()
	return s.items[start:end]
}

// Items returns every card in the carousel
func (s *Service) Items() []domain.EventRecord {
	return s.items
}
