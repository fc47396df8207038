package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"careergranny/internal/eventbus"
	"careergranny/internal/logic"
	"careergranny/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, catalog logic.CatalogStore) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:   state,
			Bus:     bus,
			Catalog: catalog,
			Now:     time.Now,
		},
	}
}

// SetClock replaces the clock used for export timestamps
func (e *Executor) SetClock(now func() time.Time) {
	e.ctx.Now = now
}

// ExecuteExportCalendar creates and executes a calendar export command
func (e *Executor) ExecuteExportCalendar(path string) tea.Cmd {
	cmd := NewExportCalendarCommand(e.ctx, path)
	return cmd.Execute()
}

// ExecuteDeliverContact creates and executes a contact delivery command
func (e *Executor) ExecuteDeliverContact(receiptID string, delay time.Duration) tea.Cmd {
	cmd := NewDeliverContactCommand(e.ctx, receiptID, delay)
	return cmd.Execute()
}
