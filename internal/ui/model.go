package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"

	"careergranny/internal/config"
	"careergranny/internal/domain"
	"careergranny/internal/eventbus"
	appLog "careergranny/internal/log"
	"careergranny/internal/logic"
	"careergranny/internal/ui/commands"
	"careergranny/internal/ui/handlers"
	"careergranny/internal/ui/input"
	inputtypes "careergranny/internal/ui/input/types"
	"careergranny/internal/ui/services/carousel"
	"careergranny/internal/ui/services/contact"
	"careergranny/internal/ui/services/events"
	"careergranny/internal/ui/services/filter"
	"careergranny/internal/ui/services/navigation"
	"careergranny/internal/ui/services/search"
	"careergranny/internal/ui/state"
	"careergranny/internal/ui/viewmodels"
	"careergranny/internal/ui/views"
)

// counterFrame is the interval between two stats counter frames
const counterFrame = 20 * time.Millisecond

const thankYouMessage = "Thank you for your message! We'll get back to you soon."

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState // centralized state
	catalog logic.CatalogStore

	// Services talk to each other over the synchronous UI bus
	uiBus      *events.Bus
	navigation *navigation.Service
	search     *search.Service
	carousel   *carousel.Service
	filter     *filter.Service
	contact    *contact.Service

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpRenderer *HelpRenderer

	typewriter *logic.Typewriter
	schedule   cron.Schedule // nil when auto-advance is off
	now        func() time.Time

	// commands queued by UI bus subscribers during the current Update
	pending []tea.Cmd

	// Program reference for terminal management
	program *tea.Program
	pager   *PagerOps
}

// NewModel creates a new UI model over a loaded catalog
func NewModel(bus eventbus.EventBus, cfg *config.Config, catalog logic.CatalogStore) *Model {
	appState := state.NewAppState()
	uiBus := events.NewBus()
	allEvents := catalog.Events()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		catalog:      catalog,
		uiBus:        uiBus,
		navigation:   navigation.NewService(uiBus),
		search:       search.NewService(uiBus, cfg.Search.MinQueryLength),
		carousel:     carousel.NewService(uiBus, logic.Preview(allEvents, cfg.Carousel.PreviewSize), cfg.Carousel.VisibleCount, cfg.Carousel.SwipeThreshold),
		filter:       filter.NewService(uiBus, allEvents),
		contact:      contact.NewService(uiBus),
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(appState, cfg.UI.NotificationTTL()),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		typewriter:   logic.NewTypewriter(cfg.UI.Phrases),
		now:          time.Now,
	}
	m.search.SetRecordsFunction(catalog.SearchRecords)
	m.cmdExecutor = commands.NewExecutor(appState, bus, catalog)

	m.viewModel = viewmodels.NewViewModel(appState, viewmodels.Sources{
		Navigation: m.navigation,
		Carousel:   m.carousel,
		Filter:     m.filter,
		Search:     m.search,
		Contact:    m.contact,
		Catalog:    catalog,
	}, m.inputHandler)

	sched, err := cfg.Carousel.AutoAdvanceSchedule()
	if err != nil {
		appLog.Error("carousel auto-advance disabled", err)
	}
	m.schedule = sched

	if !cfg.UI.Typewriter && len(cfg.UI.Phrases) > 0 {
		m.state.Headline = cfg.UI.Phrases[0]
	}

	m.subscribe()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// SetClock replaces the clock used for schedules and timestamps
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
	m.cmdExecutor.SetClock(now)
}

// subscribe turns UI bus notifications into domain events and follow-up commands
func (m *Model) subscribe() {
	m.uiBus.Subscribe(events.TypeOf(navigation.SectionChangedEvent{}), func(e interface{}) {
		ev := e.(navigation.SectionChangedEvent)
		m.publish(eventbus.SectionShownEvent{From: ev.From, To: ev.To})
		if ev.To == domain.SectionStats {
			m.queue(m.startCounters())
		}
	})

	m.uiBus.Subscribe(events.TypeOf(search.SearchCompletedEvent{}), func(e interface{}) {
		ev := e.(search.SearchCompletedEvent)
		m.publish(eventbus.SearchPerformedEvent{Query: ev.Query, EmptyQuery: ev.EmptyQuery, MatchCount: ev.MatchCount})
	})

	m.uiBus.Subscribe(events.TypeOf(search.ResultSelectedEvent{}), func(e interface{}) {
		ev := e.(search.ResultSelectedEvent)
		m.publish(eventbus.SearchSelectedEvent{Record: ev.Record, Section: ev.Section})
		m.queue(m.eventHandler.Notify(state.StatusInfo, "Showing results for: "+ev.Record.Title))
	})

	m.uiBus.Subscribe(events.TypeOf(filter.FilterChangedEvent{}), func(e interface{}) {
		ev := e.(filter.FilterChangedEvent)
		m.publish(eventbus.EventsFilteredEvent{Category: ev.Category, Count: ev.Count})
	})

	m.uiBus.Subscribe(events.TypeOf(carousel.MovedEvent{}), func(e interface{}) {
		ev := e.(carousel.MovedEvent)
		m.publish(eventbus.CarouselMovedEvent{
			Direction: string(ev.Direction),
			OldIndex:  ev.OldIndex,
			NewIndex:  ev.NewIndex,
			Auto:      ev.Auto,
		})
	})

	m.uiBus.Subscribe(events.TypeOf(contact.SubmittedEvent{}), func(e interface{}) {
		ev := e.(contact.SubmittedEvent)
		m.publish(eventbus.ContactSubmittedEvent{ReceiptID: ev.Submission.ReceiptID, Input: ev.Submission.Input})
		m.queue(m.cmdExecutor.ExecuteDeliverContact(ev.Submission.ReceiptID, m.config.Contact.SubmitDelay()))
	})

	m.uiBus.Subscribe(events.TypeOf(contact.RejectedEvent{}), func(e interface{}) {
		ev := e.(contact.RejectedEvent)
		m.publish(eventbus.ContactRejectedEvent{Field: ev.Field, Reason: ev.Reason})
		m.inputHandler.Contact().FocusField(ev.Field)
		m.queue(m.eventHandler.Notify(state.StatusError, ev.Reason))
	})

	m.uiBus.Subscribe(events.TypeOf(contact.DeliveredEvent{}), func(e interface{}) {
		ev := e.(contact.DeliveredEvent)
		m.publish(eventbus.ContactDeliveredEvent{ReceiptID: ev.ReceiptID})
		m.inputHandler.Contact().Clear()
		m.queue(m.eventHandler.Notify(state.StatusSuccess, thankYouMessage))
	})
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) drain() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.publish(eventbus.AppReadyEvent{})

	var cmds []tea.Cmd
	if m.config.UI.Typewriter {
		cmds = append(cmds, tea.Tick(logic.TypewriterStart, func(time.Time) tea.Msg {
			return typewriterTickMsg{}
		}))
	}
	cmds = append(cmds, m.scheduleAutoAdvance())
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.viewModel.SetWidth(msg.Width)
		cmds = append(cmds, m.debounceResize())

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg)...)

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.handleNonKeyboardMsg(msg))
	}

	cmds = append(cmds, m.drain()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) []tea.Cmd {
	// The help popup swallows everything but its close keys
	if m.state.ShowHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.state.ShowHelp = false
		case "ctrl+c":
			return []tea.Cmd{tea.Quit}
		}
		return nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return cmds
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Navigation: m.navigation,
		Search:     m.search,
		Contact:    m.contact,
	}
}

// handleMouse turns a horizontal drag on the home carousel into a swipe
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.navigation.Current() != domain.SectionHome || m.navigation.MenuOpen() ||
		m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.carousel.BeginDrag(msg.X)
		}
	case tea.MouseActionRelease:
		_, locked, err := m.carousel.EndDrag(msg.X)
		if err != nil {
			return nil
		}
		return m.releaseAfterCooldown(locked)
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.ShowSectionAction:
		m.navigation.Show(a.Section)

	case inputtypes.ToggleMenuAction:
		m.navigation.ToggleMenu()

	case inputtypes.ChooseMenuAction:
		m.navigation.ChooseCursor()

	case inputtypes.CarouselAction:
		return m.moveCarousel(logic.Direction(a.Direction), false)

	case inputtypes.FilterAction:
		if a.Direction == "prev" {
			m.filter.Previous()
		} else {
			m.filter.Next()
		}

	case inputtypes.UpdateTextAction:
		m.search.StartSearch(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			if section, ok := m.search.Select(); ok {
				m.navigation.Show(section)
			}
			m.search.ClearSearch()
		}

	case inputtypes.CancelTextAction:
		m.search.ClearSearch()

	case inputtypes.SearchNavigateAction:
		if a.Direction == "prev" {
			m.search.NavigatePrevious()
		} else {
			m.search.NavigateNext()
		}

	case inputtypes.UpdateContactAction:
		m.contact.SetField(contact.Field(a.Field), a.Value)

	case inputtypes.SubmitContactAction:
		m.contact.SetForm(a.Input)
		_, err := m.contact.Submit()
		switch {
		case err == nil:
			m.inputHandler.ChangeMode(inputtypes.ModeNormal, "", m.inputContext())
		case errors.Is(err, contact.ErrSubmissionPending):
			return m.eventHandler.Notify(state.StatusInfo, "Your message is still being sent.")
		}

	case inputtypes.OpenEventsPagerAction:
		return m.showInPager(m.helpRenderer.RenderEventListing(m.catalog.Events()), false)

	case inputtypes.ExportCalendarAction:
		return m.cmdExecutor.ExecuteExportCalendar(m.config.Export)

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.state.ShowHelp = !m.state.ShowHelp
			return nil
		}
		return m.showInPager(m.helpRenderer.RenderHelpContentPlain(), true)

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.eventHandler.HandleEvent(msg.Event)

	case commands.ResultMsg:
		return m.eventHandler.HandleEvent(msg.Event)

	case commands.DeliveredMsg:
		if err := m.contact.Complete(msg.ReceiptID); err != nil {
			appLog.Error("contact delivery", err)
		}
		return nil

	case handlers.ClearStatusMsg:
		m.state.ClearStatus(msg.Seq)
		return nil

	case typewriterTickMsg:
		text, delay := m.typewriter.Step()
		m.state.Headline = text
		return tea.Tick(delay, func(time.Time) tea.Msg { return typewriterTickMsg{} })

	case counterTickMsg:
		if m.state.StepCounters() {
			return counterTick()
		}
		return nil

	case carouselAutoMsg:
		var cmd tea.Cmd
		if !m.state.InPagerMode {
			cmd = m.moveCarousel(logic.DirectionNext, true)
		}
		return tea.Batch(cmd, m.scheduleAutoAdvance())

	case carouselReleaseMsg:
		m.carousel.Release()
		return nil

	case resizeSettledMsg:
		if msg.seq == m.state.ResizeSeq {
			m.carousel.Resize(views.CardsPerRow(m.state.Width))
		}
		return nil

	case pagerMsg:
		if msg.err != nil {
			appLog.Error("pager failed", msg.err)
			if msg.help {
				// fall back to the popup
				m.state.ShowHelp = true
			}
		}
		return nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return nil
	}

	return nil
}

// moveCarousel advances the carousel and schedules the end of the cool-down
func (m *Model) moveCarousel(direction logic.Direction, auto bool) tea.Cmd {
	locked, err := m.carousel.Move(direction, auto)
	if err != nil {
		if !errors.Is(err, logic.ErrCarouselBusy) {
			appLog.Error("carousel move", err, "direction", direction)
		}
		return nil
	}
	return m.releaseAfterCooldown(locked)
}

func (m *Model) releaseAfterCooldown(locked bool) tea.Cmd {
	if !locked {
		return nil
	}
	return tea.Tick(m.config.Carousel.Cooldown(), func(time.Time) tea.Msg {
		return carouselReleaseMsg{}
	})
}

// scheduleAutoAdvance waits for the next auto-advance slot
func (m *Model) scheduleAutoAdvance() tea.Cmd {
	if m.schedule == nil {
		return nil
	}
	now := m.now()
	wait := m.schedule.Next(now).Sub(now)
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return carouselAutoMsg{}
	})
}

// debounceResize resets the carousel once resizing settled
func (m *Model) debounceResize() tea.Cmd {
	m.state.ResizeSeq++
	seq := m.state.ResizeSeq
	return tea.Tick(m.config.Carousel.ResizeDelay(), func(time.Time) tea.Msg {
		return resizeSettledMsg{seq: seq}
	})
}

// startCounters begins the stats animation the first time the section shows
func (m *Model) startCounters() tea.Cmd {
	stats := m.catalog.Stats()
	targets := make([]int, len(stats))
	for i, s := range stats {
		targets[i] = s.Target
	}
	if !m.state.StartCounters(targets) {
		return nil
	}
	return counterTick()
}

func counterTick() tea.Cmd {
	return tea.Tick(counterFrame, func(time.Time) tea.Msg {
		return counterTickMsg{}
	})
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(content string, help bool) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{help: help, err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	if m.state.InPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}
