package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"careergranny/internal/calendar"
	"careergranny/internal/eventbus"
	appLog "careergranny/internal/log"
	"careergranny/internal/logic"
	"careergranny/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State   *state.AppState
	Bus     eventbus.EventBus
	Catalog logic.CatalogStore
	Now     func() time.Time
}

// ResultMsg carries the domain event a finished command produced back to the UI
type ResultMsg struct {
	Event eventbus.DomainEvent
}

// DeliveredMsg is sent once a contact submission's hand-off delay elapsed
type DeliveredMsg struct {
	ReceiptID string
}

// ExportCalendarCommand writes the event catalog as an iCalendar file
type ExportCalendarCommand struct {
	ctx  *CommandContext
	path string
}

// NewExportCalendarCommand creates a new export command
func NewExportCalendarCommand(ctx *CommandContext, path string) *ExportCalendarCommand {
	return &ExportCalendarCommand{
		ctx:  ctx,
		path: path,
	}
}

// Execute exports in the background. Failures go out on the bus as an
// ErrorEvent; success comes back as a ResultMsg.
func (c *ExportCalendarCommand) Execute() tea.Cmd {
	if c.path == "" {
		return nil
	}
	c.ctx.State.Notify(state.StatusLoading, "Exporting events...")

	events := c.ctx.Catalog.Events()
	now := c.ctx.Now
	if now == nil {
		now = time.Now
	}
	stamp := now()

	return func() tea.Msg {
		if err := calendar.ExportFile(c.path, events, stamp); err != nil {
			appLog.Error("calendar export failed", err, "path", c.path)
			if c.ctx.Bus != nil {
				c.ctx.Bus.Publish(eventbus.ErrorEvent{Message: "Calendar export failed", Err: err})
			}
			return nil
		}

		ev := eventbus.CalendarExportedEvent{Path: c.path, Count: len(events)}
		if c.ctx.Bus != nil {
			c.ctx.Bus.Publish(ev)
		}
		return ResultMsg{Event: ev}
	}
}

// DeliverContactCommand completes a contact submission after its hand-off delay
type DeliverContactCommand struct {
	ctx       *CommandContext
	receiptID string
	delay     time.Duration
}

// NewDeliverContactCommand creates a new delivery command
func NewDeliverContactCommand(ctx *CommandContext, receiptID string, delay time.Duration) *DeliverContactCommand {
	return &DeliverContactCommand{
		ctx:       ctx,
		receiptID: receiptID,
		delay:     delay,
	}
}

// Execute shows the sending state and schedules the delivery
func (c *DeliverContactCommand) Execute() tea.Cmd {
	if c.receiptID == "" {
		return nil
	}
	c.ctx.State.Notify(state.StatusLoading, "Sending...")

	receipt := c.receiptID
	if c.delay <= 0 {
		return func() tea.Msg { return DeliveredMsg{ReceiptID: receipt} }
	}
	return tea.Tick(c.delay, func(time.Time) tea.Msg {
		return DeliveredMsg{ReceiptID: receipt}
	})
}
