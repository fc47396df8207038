package logic

import "careergranny/internal/domain"

// AllCategories is the filter value that selects the whole catalog
const AllCategories = "all"

// DefaultPreviewSize is how many events the carousel shows
const DefaultPreviewSize = 6

// FilterEvents returns the events whose category equals category exactly.
// AllCategories returns the catalog unchanged. Order is preserved.
func FilterEvents(category string, events []domain.EventRecord) []domain.EventRecord {
	if category == AllCategories {
		return events
	}

	filtered := make([]domain.EventRecord, 0)
	for _, e := range events {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Preview returns the first n events
func Preview(events []domain.EventRecord, n int) []domain.EventRecord {
	if n < 0 {
		n = 0
	}
	if n > len(events) {
		n = len(events)
	}
	return events[:n:n]
}

// Categories lists distinct event categories in first-seen order
func Categories(events []domain.EventRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range events {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// FilterOptions is the filter bar: AllCategories followed by each category
func FilterOptions(events []domain.EventRecord) []string {
	return append([]string{AllCategories}, Categories(events)...)
}
