package state

import (
	"careergranny/internal/logic"
)

// StatusKind classifies a status line notification
type StatusKind string

const (
	StatusInfo    StatusKind = "info"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
	StatusLoading StatusKind = "loading"
)

// AppState contains the model state not owned by a service
type AppState struct {
	// Status line
	StatusMessage string
	StatusKind    StatusKind
	StatusSeq     int // bumps on every notification so stale clears are ignored

	// Hero headline
	Headline string

	// Stats counters, parallel to the catalog stats
	Counters        []*logic.Counter
	CountersStarted bool

	// Viewport
	Width     int
	Height    int
	ResizeSeq int // last resize seen; only the latest one resets the carousel

	// UI state
	ShowHelp    bool
	InPagerMode bool

	// Catalog and export info
	CatalogSource string
	LastExport    string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// Notify replaces the status line and returns its sequence number
func (s *AppState) Notify(kind StatusKind, message string) int {
	s.StatusSeq++
	s.StatusKind = kind
	s.StatusMessage = message
	return s.StatusSeq
}

// ClearStatus clears the status line if seq is still the latest notification
func (s *AppState) ClearStatus(seq int) bool {
	if seq != s.StatusSeq {
		return false
	}
	s.StatusMessage = ""
	s.StatusKind = ""
	return true
}

// StartCounters creates one counter per target. It only runs once.
func (s *AppState) StartCounters(targets []int) bool {
	if s.CountersStarted {
		return false
	}
	s.CountersStarted = true
	s.Counters = make([]*logic.Counter, len(targets))
	for i, t := range targets {
		s.Counters[i] = logic.NewCounter(t)
	}
	return true
}

// StepCounters advances every counter one frame and reports whether any is still running
func (s *AppState) StepCounters() bool {
	running := false
	for _, c := range s.Counters {
		c.Step()
		if !c.Done() {
			running = true
		}
	}
	return running
}

// CounterValue returns the displayed value of counter i
func (s *AppState) CounterValue(i int) int {
	if i < 0 || i >= len(s.Counters) {
		return 0
	}
	return s.Counters[i].Value()
}
