package handlers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"careergranny/internal/eventbus"
	"careergranny/internal/ui/state"
)

func TestHandleErrorEvent(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, time.Second)

	cmd := h.HandleEvent(eventbus.ErrorEvent{Message: "export failed", Err: errors.New("disk full")})
	assert.NotNil(t, cmd)
	assert.Equal(t, state.StatusError, st.StatusKind)
	assert.Equal(t, "export failed: disk full", st.StatusMessage)
}

func TestHandleCalendarExported(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, time.Second)

	h.HandleEvent(eventbus.CalendarExportedEvent{Path: "events.ics", Count: 3})
	assert.Equal(t, "events.ics", st.LastExport)
	assert.Equal(t, state.StatusSuccess, st.StatusKind)
	assert.Contains(t, st.StatusMessage, "3 events")
}

func TestHandleCatalogLoaded(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, time.Second)

	h.HandleEvent(eventbus.CatalogLoadedEvent{Source: "embedded", EventCount: 6})
	assert.Equal(t, "embedded", st.CatalogSource)
	assert.Equal(t, "Loaded 6 events from embedded", st.StatusMessage)
}

func TestUnhandledEventIsIgnored(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, time.Second)

	assert.Nil(t, h.HandleEvent(eventbus.AppReadyEvent{}))
	assert.Empty(t, st.StatusMessage)
}

func TestLoadingNotificationStays(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, time.Second)

	assert.Nil(t, h.Notify(state.StatusLoading, "Sending..."))
	assert.NotNil(t, h.Notify(state.StatusSuccess, "Sent"))
}

func TestNotifyClearMessageCarriesSequence(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, time.Millisecond)

	cmd := h.Notify(state.StatusInfo, "one")
	msg := cmd()
	assert.Equal(t, ClearStatusMsg{Seq: st.StatusSeq}, msg)
}
