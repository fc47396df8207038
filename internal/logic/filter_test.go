package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careergranny/internal/domain"
)

func eventFixture() []domain.EventRecord {
	categories := []string{
		"workshop", "networking", "fundraiser", "webinar",
		"workshop", "networking", "workshop", "fundraiser",
	}
	events := make([]domain.EventRecord, 0, len(categories))
	for i, c := range categories {
		events = append(events, domain.EventRecord{ID: i + 1, Title: c, Category: c, Date: "2025-03-01"})
	}
	return events
}

func ids(events []domain.EventRecord) []int {
	out := make([]int, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterAllIsIdentity(t *testing.T) {
	events := eventFixture()
	assert.Equal(t, events, FilterEvents(AllCategories, events))
}

func TestFilterWorkshopKeepsPositions(t *testing.T) {
	got := FilterEvents("workshop", eventFixture())
	// positions 0, 4 and 6
	assert.Equal(t, []int{1, 5, 7}, ids(got))
}

func TestFilterIsExactAndCaseSensitive(t *testing.T) {
	assert.Empty(t, FilterEvents("Workshop", eventFixture()))
	assert.Empty(t, FilterEvents("work", eventFixture()))
	assert.NotNil(t, FilterEvents("gala", eventFixture()))
}

func TestFilterPartitionsCatalog(t *testing.T) {
	events := eventFixture()
	seen := make(map[int]int)
	total := 0
	for _, c := range Categories(events) {
		for _, e := range FilterEvents(c, events) {
			assert.Equal(t, c, e.Category)
			seen[e.ID]++
			total++
		}
	}
	assert.Equal(t, len(events), total)
	for _, e := range events {
		assert.Equal(t, 1, seen[e.ID], "event %d must appear exactly once", e.ID)
	}
}

func TestPreview(t *testing.T) {
	events := eventFixture()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(Preview(events, DefaultPreviewSize)))
	assert.Len(t, Preview(events, 20), 8)
	assert.Empty(t, Preview(events, -1))
	assert.Empty(t, Preview(nil, 6))
}

func TestPreviewDoesNotAliasAppends(t *testing.T) {
	events := eventFixture()
	preview := Preview(events, 2)
	_ = append(preview, domain.EventRecord{ID: 99})
	assert.Equal(t, 3, events[2].ID)
}

func TestCategoriesAndOptions(t *testing.T) {
	events := eventFixture()
	assert.Equal(t, []string{"workshop", "networking", "fundraiser", "webinar"}, Categories(events))
	assert.Equal(t, []string{"all", "workshop", "networking", "fundraiser", "webinar"}, FilterOptions(events))
	assert.Equal(t, []string{"all"}, FilterOptions(nil))
}
