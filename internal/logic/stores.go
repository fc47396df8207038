package logic

import (
	"sync"

	"careergranny/internal/domain"
)

// MemoryCatalogStore is an in-memory implementation of CatalogStore.
// It is filled once at startup and never mutated afterwards.
type MemoryCatalogStore struct {
	mu     sync.RWMutex
	search []domain.SearchRecord
	events []domain.EventRecord
	stats  []domain.Stat
	byID   map[int]int
}

// NewMemoryCatalogStore copies the given records into a new store
func NewMemoryCatalogStore(search []domain.SearchRecord, events []domain.EventRecord, stats []domain.Stat) *MemoryCatalogStore {
	s := &MemoryCatalogStore{
		search: append([]domain.SearchRecord(nil), search...),
		events: append([]domain.EventRecord(nil), events...),
		stats:  append([]domain.Stat(nil), stats...),
		byID:   make(map[int]int, len(events)),
	}
	for i, e := range s.events {
		s.byID[e.ID] = i
	}
	return s
}

func (s *MemoryCatalogStore) SearchRecords() []domain.SearchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	return append([]domain.SearchRecord(nil), s.search...)
}

func (s *MemoryCatalogStore) Events() []domain.EventRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.EventRecord(nil), s.events...)
}

func (s *MemoryCatalogStore) Stats() []domain.Stat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Stat(nil), s.stats...)
}

func (s *MemoryCatalogStore) EventByID(id int) (domain.EventRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.EventRecord{}, false
	}
	return s.events[i], true
}
