package types

import "careergranny/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

type ShowSectionAction struct {
	Section domain.Section
}

func (a ShowSectionAction) Type() string { return "show_section" }

type ToggleMenuAction struct{}

func (a ToggleMenuAction) Type() string { return "toggle_menu" }

type ChooseMenuAction struct{}

func (a ChooseMenuAction) Type() string { return "choose_menu" }

// Carousel and filter actions
type CarouselAction struct {
	Direction string // "next" or "prev"
}

func (a CarouselAction) Type() string { return "carousel" }

type FilterAction struct {
	Direction string // "next" or "prev"
}

func (a FilterAction) Type() string { return "filter" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

// Contact form actions
type UpdateContactAction struct {
	Field string
	Value string
}

func (a UpdateContactAction) Type() string { return "update_contact" }

type SubmitContactAction struct {
	Input domain.FormInput
}

func (a SubmitContactAction) Type() string { return "submit_contact" }

// Command actions
type OpenEventsPagerAction struct{}

func (a OpenEventsPagerAction) Type() string { return "open_events_pager" }

type ExportCalendarAction struct{}

func (a ExportCalendarAction) Type() string { return "export_calendar" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
