package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"careergranny/internal/domain"
	"careergranny/internal/format"
	"careergranny/internal/logic"
	"careergranny/internal/ui/input/types"
)

// CardWidth is the inner width of one carousel card
const CardWidth = 30

// CardsPerRow is how many cards fit side by side in width cells
func CardsPerRow(width int) int {
	return max(1, (width-4)/(CardWidth+4))
}

// StatView is one counter as currently displayed
type StatView struct {
	Label  string
	Value  int
	Suffix string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Section    domain.Section
	Sections   []domain.Section
	MenuOpen   bool
	MenuCursor int
	Headline   string

	CarouselCards []domain.EventRecord
	CarouselIndex int
	CarouselMax   int
	CarouselBusy  bool

	FilterOptions  []string
	FilterCategory string
	FilteredEvents []domain.EventRecord

	Resources []domain.SearchRecord
	Stats     []StatView

	SearchOpen    bool
	SearchInput   string
	SearchOutcome logic.SearchOutcome
	SearchIndex   int

	ContactEditing bool
	ContactFields  []string
	ContactFocus   int
	ContactPending bool
	ContactReceipt string

	StatusMessage string
	StatusKind    string // "success", "error", "info", "loading"

	ShowHelp  bool
	HelpModel help.Model
	Keys      types.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n\n")

	switch {
	case state.SearchOpen:
		content.WriteString(r.renderSearch(state))
	case state.MenuOpen:
		content.WriteString(r.renderMenu(state))
	default:
		content.WriteString(r.renderSection(state))
	}
	content.WriteString("\n")

	if status := r.renderStatus(state); status != "" {
		content.WriteString("\n")
		content.WriteString(status)
	}

	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))

	if state.ShowHelp {
		return r.popupRender.RenderPopup(r.renderHelpPopup(state), state.Width, state.Height)
	}
	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Title.Render("👵 Career Granny")

	var nav []string
	for i, s := range state.Sections {
		label := fmt.Sprintf("%d %s", i+1, SectionLabel(s))
		if s == state.Section {
			nav = append(nav, r.styles.NavActive.Render(label))
		} else {
			nav = append(nav, r.styles.NavItem.Render(label))
		}
	}
	navLine := strings.Join(nav, "")

	// Narrow terminals get the collapsed menu button instead of the bar
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	available := termWidth - 4 // Account for main container padding
	if lipgloss.Width(logo)+2+lipgloss.Width(navLine) > available {
		return fmt.Sprintf("%s  %s", logo, r.styles.Dim.Render("☰ m: menu  ·  "+SectionLabel(state.Section)))
	}

	padding := available - lipgloss.Width(logo) - lipgloss.Width(navLine)
	return logo + strings.Repeat(" ", max(padding, 2)) + navLine
}

func (r *Renderer) renderMenu(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.SectionTitle.Render("Menu"))
	b.WriteString("\n")
	for i, s := range state.Sections {
		line := SectionLabel(s)
		if i == state.MenuCursor {
			b.WriteString(r.styles.ResultActive.Render("› " + line))
		} else {
			b.WriteString(r.styles.Result.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderSection(state ViewState) string {
	switch state.Section {
	case domain.SectionAbout:
		return r.renderAbout()
	case domain.SectionResources:
		return r.renderResources(state)
	case domain.SectionEvents:
		return r.renderEvents(state)
	case domain.SectionStats:
		return r.renderStats(state)
	case domain.SectionContact:
		return r.renderContact(state)
	default:
		return r.renderHome(state)
	}
}

func (r *Renderer) renderHome(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Headline.Render(state.Headline + "▌"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(tagline))
	b.WriteString("\n\n")
	b.WriteString(r.styles.SectionTitle.Render("Upcoming Events"))
	b.WriteString("\n")

	if len(state.CarouselCards) == 0 {
		b.WriteString(r.styles.Dim.Render("No upcoming events."))
		return b.String()
	}

	cards := make([]string, 0, len(state.CarouselCards))
	for _, e := range state.CarouselCards {
		cards = append(cards, r.renderCard(e, "Learn More →"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")
	b.WriteString(r.renderPager(state.CarouselIndex, state.CarouselMax))
	return b.String()
}

// renderPager draws one dot per carousel page
func (r *Renderer) renderPager(index, maxIndex int) string {
	if maxIndex == 0 {
		return ""
	}
	dots := make([]string, maxIndex+1)
	for i := range dots {
		if i == index {
			dots[i] = r.styles.Highlight.Render("●")
		} else {
			dots[i] = r.styles.Dim.Render("○")
		}
	}
	return "‹ " + strings.Join(dots, " ") + " ›"
}

func (r *Renderer) renderCard(e domain.EventRecord, cta string) string {
	var b strings.Builder
	b.WriteString(e.Icon + " " + lipgloss.NewStyle().Foreground(lipgloss.Color(CategoryColor(e.Category))).Render(e.Category))
	if e.Status != "" {
		b.WriteString(r.styles.Dim.Render(" · " + e.Status))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.CardDate.Render(format.EventDateOrRaw(e.Date)))
	b.WriteString("\n")
	b.WriteString(r.styles.CardTitle.Render(e.Title))
	b.WriteString("\n")
	b.WriteString(e.Description)
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(cta))
	return r.styles.Card.Render(b.String())
}

func (r *Renderer) renderAbout() string {
	var b strings.Builder
	b.WriteString(r.styles.SectionTitle.Render("About Career Granny"))
	b.WriteString("\n")
	for _, p := range aboutParagraphs {
		b.WriteString(p)
		b.WriteString("\n\n")
	}
	return b.String()
}

func (r *Renderer) renderResources(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.SectionTitle.Render("Resources"))
	b.WriteString("\n")

	groups := []domain.Category{domain.CategoryCareer, domain.CategorySkill, domain.CategoryResource}
	for _, c := range groups {
		var lines []string
		for _, rec := range state.Resources {
			if rec.Category == c {
				lines = append(lines, fmt.Sprintf("  • %s %s", r.styles.CardTitle.Render(rec.Title), r.styles.Dim.Render("· "+rec.Description)))
			}
		}
		if len(lines) == 0 {
			continue
		}
		b.WriteString(r.styles.Highlight.Render(CategoryHeading(c)))
		b.WriteString("\n")
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (r *Renderer) renderEvents(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.SectionTitle.Render("Events"))
	b.WriteString("\n")

	var opts []string
	for _, o := range state.FilterOptions {
		if o == state.FilterCategory {
			opts = append(opts, r.styles.FilterActive.Render(o))
		} else {
			opts = append(opts, r.styles.FilterOption.Render(o))
		}
	}
	b.WriteString(strings.Join(opts, " "))
	b.WriteString("\n\n")

	if len(state.FilteredEvents) == 0 {
		b.WriteString(r.styles.Dim.Render("No events in this category."))
		return b.String()
	}

	perRow := CardsPerRow(state.Width)
	var rows []string
	for i := 0; i < len(state.FilteredEvents); i += perRow {
		end := min(i+perRow, len(state.FilteredEvents))
		var row []string
		for _, e := range state.FilteredEvents[i:end] {
			row = append(row, r.renderCard(e, "Register Now →"))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return b.String()
}

func (r *Renderer) renderStats(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.SectionTitle.Render("Our Impact"))
	b.WriteString("\n")
	for _, s := range state.Stats {
		value := r.styles.StatValue.Render(format.Number(s.Value) + s.Suffix)
		b.WriteString(fmt.Sprintf("  %s  %s\n", value, s.Label))
	}
	return b.String()
}

func (r *Renderer) renderContact(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.SectionTitle.Render("Contact Us"))
	b.WriteString("\n")

	labels := []string{"Name", "Email", "Subject", "Message"}
	for i, field := range state.ContactFields {
		if i >= len(labels) {
			break
		}
		label := r.styles.Label.Render(labels[i])
		if state.ContactEditing && i == state.ContactFocus {
			label = r.styles.LabelFocused.Render(labels[i])
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, field))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case state.ContactPending:
		b.WriteString(r.styles.StatusLoading.Render("Sending..."))
	case state.ContactEditing:
		b.WriteString(r.styles.Dim.Render("tab: next field  ctrl+s: send  esc: done"))
	default:
		b.WriteString(r.styles.Dim.Render("enter: edit the form"))
	}
	if state.ContactReceipt != "" && !state.ContactPending {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Last receipt: " + state.ContactReceipt))
	}
	return b.String()
}

func (r *Renderer) renderSearch(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.SearchBox.Render("🔍 " + state.SearchInput))
	b.WriteString("\n")

	out := state.SearchOutcome
	switch {
	case out.EmptyQuery:
		// too short to search: no result list at all
	case out.NoMatches():
		b.WriteString(r.styles.Result.Render("No results found"))
		b.WriteString("\n")
	default:
		for i, rec := range out.Records {
			line := fmt.Sprintf("%s  %s", rec.Title, r.styles.Dim.Render(string(rec.Category)))
			if i == state.SearchIndex {
				b.WriteString(r.styles.ResultActive.Render("› " + line))
			} else {
				b.WriteString(r.styles.Result.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	switch state.StatusKind {
	case "error":
		return r.styles.StatusError.Render("✗ " + state.StatusMessage)
	case "success":
		return r.styles.StatusSuccess.Render("✓ " + state.StatusMessage)
	case "loading":
		return r.styles.StatusLoading.Render(state.StatusMessage)
	default:
		return r.styles.StatusInfo.Render("ℹ " + state.StatusMessage)
	}
}

func (r *Renderer) renderHelpPopup(state ViewState) string {
	h := state.HelpModel
	h.ShowAll = true
	return r.styles.SectionTitle.Render("Keys") + "\n" + h.View(state.Keys) + "\n\n" + r.styles.Dim.Render("? or esc to close")
}
