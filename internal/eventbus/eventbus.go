package eventbus

import (
	"runtime/debug"
	"sync"

	"careergranny/internal/domain"
	appLog "careergranny/internal/log"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
	EventCatalogLoaded    = domain.EventCatalogLoaded
	EventSectionShown     = domain.EventSectionShown
	EventSearchPerformed  = domain.EventSearchPerformed
	EventSearchSelected   = domain.EventSearchSelected
	EventEventsFiltered   = domain.EventEventsFiltered
	EventCarouselMoved    = domain.EventCarouselMoved
	EventContactSubmitted = domain.EventContactSubmitted
	EventContactRejected  = domain.EventContactRejected
	EventContactDelivered = domain.EventContactDelivered
	EventCalendarExported = domain.EventCalendarExported
	EventAppReady         = domain.EventAppReady
)

// Re-export domain event types
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type CatalogLoadedEvent = domain.CatalogLoadedEvent
type SectionShownEvent = domain.SectionShownEvent
type SearchPerformedEvent = domain.SearchPerformedEvent
type SearchSelectedEvent = domain.SearchSelectedEvent
type EventsFilteredEvent = domain.EventsFilteredEvent
type CarouselMovedEvent = domain.CarouselMovedEvent
type ContactSubmittedEvent = domain.ContactSubmittedEvent
type ContactRejectedEvent = domain.ContactRejectedEvent
type ContactDeliveredEvent = domain.ContactDeliveredEvent
type CalendarExportedEvent = domain.CalendarExportedEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// carousel ticks are too chatty for INFO
	switch event.Type() {
	case EventCarouselMoved:
		appLog.Debug("eventbus publish", "type", event.Type())
	default:
		appLog.Info("eventbus publish", "type", event.Type())
	}

	select {
	case b.eventChan <- event:
	case <-b.quit:
	default:
		appLog.Info("eventbus channel full, dropping event", "type", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Pending events are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.deliver(s.handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// deliver runs one handler, recovering from panics so one bad subscriber
// cannot take down the dispatcher.
func (b *bus) deliver(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			appLog.Info("event handler panic", "type", event.Type(), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}
