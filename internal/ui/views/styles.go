package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Headline      lipgloss.Style
	Dim           lipgloss.Style
	NavItem       lipgloss.Style
	NavActive     lipgloss.Style
	SectionTitle  lipgloss.Style
	Card          lipgloss.Style
	CardTitle     lipgloss.Style
	CardDate      lipgloss.Style
	Badge         lipgloss.Style
	FilterOption  lipgloss.Style
	FilterActive  lipgloss.Style
	SearchBox     lipgloss.Style
	Result        lipgloss.Style
	ResultActive  lipgloss.Style
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	StatValue     lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Popup         lipgloss.Style
	Highlight     lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusLoading lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Headline:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		Dim:          lipgloss.NewStyle().Faint(true),
		NavItem:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		NavActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Underline(true).Padding(0, 1),
		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(CardWidth),
		CardTitle:    lipgloss.NewStyle().Bold(true),
		CardDate:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("111")).Padding(0, 1),
		FilterOption: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		FilterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("99")).Padding(0, 1),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Result:       lipgloss.NewStyle().Padding(0, 1),
		ResultActive: lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")).Bold(true),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Width(10),
		StatValue:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}

// CategoryColor returns the badge color for an event category
func CategoryColor(category string) string {
	switch category {
	case "workshop":
		return "111" // blue
	case "networking":
		return "78" // green
	case "fundraiser":
		return "214" // yellow
	case "webinar":
		return "177" // purple
	default:
		return "245"
	}
}
