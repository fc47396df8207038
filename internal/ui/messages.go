package ui

import (
	"careergranny/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// typewriterTickMsg types or deletes one headline character
type typewriterTickMsg struct{}

// counterTickMsg advances the stats counters one frame
type counterTickMsg struct{}

// carouselAutoMsg fires on the auto-advance schedule
type carouselAutoMsg struct{}

// carouselReleaseMsg ends the carousel cool-down
type carouselReleaseMsg struct{}

// resizeSettledMsg is sent once the terminal stopped resizing
type resizeSettledMsg struct {
	seq int
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	help bool
	err  error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
