package logic

import "careergranny/internal/domain"

// CatalogStore provides read-only access to the static site content
type CatalogStore interface {
	SearchRecords() []domain.SearchRecord
	Events() []domain.EventRecord
	Stats() []domain.Stat
	EventByID(id int) (domain.EventRecord, bool)
}
