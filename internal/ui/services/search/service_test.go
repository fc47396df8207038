package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careergranny/internal/domain"
	"careergranny/internal/ui/services/events"
)

func records() []domain.SearchRecord {
	return []domain.SearchRecord{
		{Title: "Software Engineer", Category: domain.CategoryCareer, Description: "Design and develop software"},
		{Title: "Python Programming", Category: domain.CategorySkill, Description: "Learn Python"},
		{Title: "Career Fair", Category: domain.CategoryEvent, Description: "Meet employers"},
	}
}

func newService(t *testing.T) (*Service, *events.Bus) {
	t.Helper()
	bus := events.NewBus()
	s := NewService(bus, 0)
	s.SetRecordsFunction(records)
	return s, bus
}

func TestStartSearchShortQueryIsEmptyOutcome(t *testing.T) {
	s, _ := newService(t)
	s.StartSearch(" p ")

	assert.True(t, s.Outcome().EmptyQuery)
	assert.Equal(t, -1, s.GetCurrentMatchIndex())
	_, ok := s.Select()
	assert.False(t, ok)
}

func TestStartSearchPublishesCompletion(t *testing.T) {
	s, bus := newService(t)
	var completed []SearchCompletedEvent
	bus.Subscribe(events.TypeOf(SearchCompletedEvent{}), func(e interface{}) {
		completed = append(completed, e.(SearchCompletedEvent))
	})

	s.StartSearch("CAREER")
	s.StartSearch("CAREER") // unchanged query is not re-evaluated
	s.StartSearch("zzz")

	require.Len(t, completed, 2)
	assert.Equal(t, SearchCompletedEvent{Query: "career", MatchCount: 2}, completed[0])
	assert.Equal(t, 0, completed[1].MatchCount)
	assert.False(t, completed[1].EmptyQuery)
}

func TestNavigateWrapsAround(t *testing.T) {
	s, _ := newService(t)
	s.StartSearch("career")
	require.Equal(t, 2, s.GetMatchCount())

	s.NavigatePrevious()
	assert.Equal(t, 1, s.GetCurrentMatchIndex())
	s.NavigateNext()
	assert.Equal(t, 0, s.GetCurrentMatchIndex())
}

func TestSelectRoutesByCategory(t *testing.T) {
	s, bus := newService(t)
	var selected ResultSelectedEvent
	bus.Subscribe(events.TypeOf(ResultSelectedEvent{}), func(e interface{}) {
		selected = e.(ResultSelectedEvent)
	})

	s.StartSearch("career")
	section, ok := s.Select()
	require.True(t, ok)
	assert.Equal(t, domain.SectionResources, section)

	s.NavigateNext()
	section, ok = s.Select()
	require.True(t, ok)
	assert.Equal(t, domain.SectionEvents, section)
	assert.Equal(t, "Career Fair", selected.Record.Title)
}

func TestClearSearch(t *testing.T) {
	s, _ := newService(t)
	s.StartSearch("python")
	s.ClearSearch()

	assert.Empty(t, s.GetQuery())
	assert.True(t, s.Outcome().EmptyQuery)
	assert.Zero(t, s.GetMatchCount())
}
