package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"careergranny/internal/eventbus"
	"careergranny/internal/ui/state"
)

// ClearStatusMsg clears the status line if Seq is still the latest notification
type ClearStatusMsg struct {
	Seq int
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
	ttl   time.Duration
}

// NewEventHandler creates a new event handler. Notifications disappear after ttl.
func NewEventHandler(appState *state.AppState, ttl time.Duration) *EventHandler {
	return &EventHandler{
		state: appState,
		ttl:   ttl,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		if e.Err != nil {
			return h.Notify(state.StatusError, fmt.Sprintf("%s: %v", e.Message, e.Err))
		}
		return h.Notify(state.StatusError, e.Message)

	case eventbus.CatalogLoadedEvent:
		h.state.CatalogSource = e.Source
		return h.Notify(state.StatusInfo, fmt.Sprintf("Loaded %d events from %s", e.EventCount, e.Source))

	case eventbus.CalendarExportedEvent:
		h.state.LastExport = e.Path
		return h.Notify(state.StatusSuccess, fmt.Sprintf("Exported %d events to %s", e.Count, e.Path))

	case eventbus.ConfigSavedEvent:
		return h.Notify(state.StatusInfo, fmt.Sprintf("Config written to %s", e.Path))
	}

	return nil
}

// Notify shows a status message. Everything but a loading message is
// cleared again after the notification TTL.
func (h *EventHandler) Notify(kind state.StatusKind, message string) tea.Cmd {
	seq := h.state.Notify(kind, message)
	if kind == state.StatusLoading || h.ttl <= 0 {
		return nil
	}
	return tea.Tick(h.ttl, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
