package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careergranny/internal/domain"
	"careergranny/internal/ui/services/events"
)

func TestShowPublishesChange(t *testing.T) {
	bus := events.NewBus()
	s := NewService(bus)

	var changes []SectionChangedEvent
	bus.Subscribe(events.TypeOf(SectionChangedEvent{}), func(e interface{}) {
		changes = append(changes, e.(SectionChangedEvent))
	})

	s.Show(domain.SectionEvents)
	s.Show(domain.SectionEvents)
	s.Show(domain.Section("blog"))

	require.Len(t, changes, 2)
	assert.Equal(t, SectionChangedEvent{From: domain.SectionHome, To: domain.SectionEvents}, changes[0])
	assert.Equal(t, domain.SectionHome, changes[1].To)
	assert.Equal(t, domain.SectionHome, s.Current())
}

func TestNavigateCyclesSections(t *testing.T) {
	s := NewService(&events.NullBus{})

	s.Navigate(DirectionLeft)
	assert.Equal(t, domain.SectionContact, s.Current())

	s.Navigate(DirectionRight)
	s.Navigate(DirectionRight)
	assert.Equal(t, domain.SectionAbout, s.Current())
}

func TestMenuCursorChoosesSection(t *testing.T) {
	s := NewService(&events.NullBus{})

	s.ToggleMenu()
	require.True(t, s.MenuOpen())
	assert.Equal(t, 0, s.Cursor())

	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	assert.Equal(t, domain.SectionHome, s.Current(), "menu movement does not change section")

	s.ChooseCursor()
	assert.Equal(t, domain.SectionResources, s.Current())
	assert.False(t, s.MenuOpen())
}

func TestCloseMenuKeepsSection(t *testing.T) {
	s := NewService(&events.NullBus{})
	s.Show(domain.SectionStats)
	s.ToggleMenu()
	s.Navigate(DirectionUp)
	s.CloseMenu()

	assert.False(t, s.MenuOpen())
	assert.Equal(t, domain.SectionStats, s.Current())
}
