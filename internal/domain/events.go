package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventCatalogLoaded    EventType = "CatalogLoaded"
	EventSectionShown     EventType = "SectionShown"
	EventSearchPerformed  EventType = "SearchPerformed"
	EventSearchSelected   EventType = "SearchSelected"
	EventEventsFiltered   EventType = "EventsFiltered"
	EventCarouselMoved    EventType = "CarouselMoved"
	EventContactSubmitted EventType = "ContactSubmitted"
	EventContactRejected  EventType = "ContactRejected"
	EventContactDelivered EventType = "ContactDelivered"
	EventCalendarExported EventType = "CalendarExported"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// CatalogLoadedEvent is emitted once the static catalog is available
type CatalogLoadedEvent struct {
	Source      string
	SearchCount int
	EventCount  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// SectionShownEvent is emitted when the visible section changes
type SectionShownEvent struct {
	From Section
	To   Section
}

func (e SectionShownEvent) Type() EventType { return EventSectionShown }

// SearchPerformedEvent is emitted after a search query was evaluated
type SearchPerformedEvent struct {
	Query      string
	EmptyQuery bool
	MatchCount int
}

func (e SearchPerformedEvent) Type() EventType { return EventSearchPerformed }

// SearchSelectedEvent is emitted when a search result is chosen
type SearchSelectedEvent struct {
	Record  SearchRecord
	Section Section
}

func (e SearchSelectedEvent) Type() EventType { return EventSearchSelected }

// EventsFilteredEvent is emitted when the event filter changes
type EventsFilteredEvent struct {
	Category string
	Count    int
}

func (e EventsFilteredEvent) Type() EventType { return EventEventsFiltered }

// CarouselMovedEvent is emitted after an accepted carousel advance
type CarouselMovedEvent struct {
	Direction string
	OldIndex  int
	NewIndex  int
	Auto      bool
}

func (e CarouselMovedEvent) Type() EventType { return EventCarouselMoved }

// ContactSubmittedEvent is emitted when a valid form is handed off
type ContactSubmittedEvent struct {
	ReceiptID string
	Input     FormInput
}

func (e ContactSubmittedEvent) Type() EventType { return EventContactSubmitted }

// ContactRejectedEvent is emitted when validation fails
type ContactRejectedEvent struct {
	Field  string
	Reason string
}

func (e ContactRejectedEvent) Type() EventType { return EventContactRejected }

// ContactDeliveredEvent is emitted when a pending submission completes
type ContactDeliveredEvent struct {
	ReceiptID string
}

func (e ContactDeliveredEvent) Type() EventType { return EventContactDelivered }

// CalendarExportedEvent is emitted after the event catalog was written as iCalendar
type CalendarExportedEvent struct {
	Path  string
	Count int
}

func (e CalendarExportedEvent) Type() EventType { return EventCalendarExported }

// AppReadyEvent is emitted once the UI has started
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
