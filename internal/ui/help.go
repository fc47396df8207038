package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"careergranny/internal/domain"
	"careergranny/internal/format"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	dim     lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dim:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

type helpLine struct {
	keys string
	desc string
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	groups := []struct {
		name  string
		lines []helpLine
	}{
		{"Navigation", []helpLine{
			{"[ / ]", "Previous/next section"},
			{"1-6", "Jump to a section"},
			{"←/→, h/l", "Previous/next section (carousel on home)"},
			{"m", "Open the section menu"},
			{"↑/↓, enter", "Move and choose in the menu"},
		}},
		{"Events", []helpLine{
			{"tab", "Next category filter"},
			{"shift+tab", "Previous category filter"},
			{"v", "List all events in the pager"},
			{"e", "Export events as .ics"},
			{"drag", "Swipe the carousel with the mouse"},
		}},
		{"Search", []helpLine{
			{"ctrl+k, /", "Open search"},
			{"↓/↑, tab", "Move through results"},
			{"enter", "Open the highlighted result"},
			{"esc", "Close search"},
		}},
		{"Contact", []helpLine{
			{"enter", "Edit the form"},
			{"tab", "Next field"},
			{"ctrl+s", "Send"},
			{"esc", "Leave the form"},
		}},
		{"Other", []helpLine{
			{"?", "Toggle this help"},
			{"q", "Quit"},
		}},
	}

	width := 0
	for _, g := range groups {
		for _, l := range g.lines {
			width = max(width, lipgloss.Width(l.keys))
		}
	}

	var help strings.Builder
	help.WriteString(r.title.Render("Career Granny Help"))
	help.WriteString("\n")
	for _, g := range groups {
		help.WriteString(r.section.Render(g.name))
		help.WriteString("\n")
		for _, l := range g.lines {
			pad := strings.Repeat(" ", width-lipgloss.Width(l.keys))
			fmt.Fprintf(&help, "  %s%s  %s\n", r.key.Render(l.keys), pad, r.desc.Render(l.desc))
		}
	}
	help.WriteString("\n")
	help.WriteString(r.dim.Render("  Search looks at titles, descriptions and categories. Type at least two characters."))
	return help.String()
}

// RenderEventListing renders every event, in catalog order, for the pager
func (r *HelpRenderer) RenderEventListing(events []domain.EventRecord) string {
	var b strings.Builder
	b.WriteString(r.title.Render(fmt.Sprintf("Upcoming Events (%d)", len(events))))
	b.WriteString("\n")
	for _, e := range events {
		b.WriteString(r.section.Render(strings.TrimSpace(e.Icon + " " + e.Title)))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s\n", r.key.Render(format.EventDateOrRaw(e.Date)))
		fmt.Fprintf(&b, "  %s · %s\n", r.desc.Render(e.Category), r.desc.Render(e.Status))
		if e.Description != "" {
			fmt.Fprintf(&b, "  %s\n", e.Description)
		}
		if e.Link != "" {
			fmt.Fprintf(&b, "  %s\n", r.dim.Render(e.Link))
		}
	}
	return b.String()
}

// PagerOps runs content in the ov pager on the released terminal
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager shows content using ov pager
func (h *PagerOps) ShowInPager(content string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
