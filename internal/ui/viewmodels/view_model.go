package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"careergranny/internal/logic"
	"careergranny/internal/ui/input"
	inputtypes "careergranny/internal/ui/input/types"
	"careergranny/internal/ui/services/carousel"
	"careergranny/internal/ui/services/contact"
	"careergranny/internal/ui/services/filter"
	"careergranny/internal/ui/services/navigation"
	"careergranny/internal/ui/services/search"
	"careergranny/internal/ui/state"
	"careergranny/internal/ui/views"
)

// Sources are the services a frame is read from
type Sources struct {
	Navigation *navigation.Service
	Carousel   *carousel.Service
	Filter     *filter.Service
	Search     *search.Service
	Contact    *contact.Service
	Catalog    logic.CatalogStore
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state *state.AppState
	src   Sources
	input *input.Handler
	help  help.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, src Sources, handler *input.Handler) *ViewModel {
	return &ViewModel{
		state: appState,
		src:   src,
		input: handler,
		help:  help.New(),
	}
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetWidth resizes the help footer
func (vm *ViewModel) SetWidth(width int) {
	vm.help.Width = width
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	pos := vm.src.Carousel.Position()
	mode := vm.input.CurrentMode()

	vs := views.ViewState{
		Width:      vm.state.Width,
		Height:     vm.state.Height,
		Section:    vm.src.Navigation.Current(),
		Sections:   vm.src.Navigation.Sections(),
		MenuOpen:   vm.src.Navigation.MenuOpen(),
		MenuCursor: vm.src.Navigation.Cursor(),
		Headline:   vm.state.Headline,

		CarouselCards: vm.src.Carousel.Visible(),
		CarouselIndex: pos.Index,
		CarouselMax:   pos.MaxIndex(),
		CarouselBusy:  pos.IsTransitioning,

		FilterOptions:  vm.src.Filter.Options(),
		FilterCategory: vm.src.Filter.Category(),
		FilteredEvents: vm.src.Filter.Results(),

		Resources: vm.src.Catalog.SearchRecords(),
		Stats:     vm.buildStats(),

		SearchOpen:    mode == inputtypes.ModeSearch,
		SearchOutcome: vm.src.Search.Outcome(),
		SearchIndex:   vm.src.Search.GetCurrentMatchIndex(),

		ContactEditing: mode == inputtypes.ModeContact,
		ContactFields:  vm.input.Contact().FieldViews(),
		ContactFocus:   vm.input.Contact().Focused(),
		ContactReceipt: vm.src.Contact.LastReceipt(),

		StatusMessage: vm.state.StatusMessage,
		StatusKind:    string(vm.state.StatusKind),

		ShowHelp:  vm.state.ShowHelp,
		HelpModel: vm.help,
		Keys:      vm.input.Keys(),
	}

	if ti := vm.input.TextInput(); ti != nil {
		vs.SearchInput = ti.View()
	}
	_, vs.ContactPending = vm.src.Contact.Pending()

	return vs
}

// buildStats pairs each catalog stat with its animated counter value.
// Before the counters start every stat reads zero.
func (vm *ViewModel) buildStats() []views.StatView {
	stats := vm.src.Catalog.Stats()
	out := make([]views.StatView, len(stats))
	for i, s := range stats {
		out[i] = views.StatView{
			Label:  s.Label,
			Value:  vm.state.CounterValue(i),
			Suffix: s.Suffix,
		}
	}
	return out
}
