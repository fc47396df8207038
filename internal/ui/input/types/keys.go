package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the normal mode key layout. It also feeds the footer help.
type KeyMap struct {
	Search       key.Binding
	Close        key.Binding
	Left         key.Binding
	Right        key.Binding
	Up           key.Binding
	Down         key.Binding
	PrevSection  key.Binding
	NextSection  key.Binding
	Jump         key.Binding
	Menu         key.Binding
	Choose       key.Binding
	NextFilter   key.Binding
	PrevFilter   key.Binding
	EventsPager  key.Binding
	ExportEvents key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("ctrl+k", "/"),
			key.WithHelp("ctrl+k", "search"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "carousel / section"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[/]", "section"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("]"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "jump"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		EventsPager: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "all events"),
		),
		ExportEvents: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export .ics"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Left, k.PrevSection, k.Menu, k.NextFilter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Close, k.Menu, k.Choose},
		{k.Left, k.PrevSection, k.Jump},
		{k.NextFilter, k.EventsPager, k.ExportEvents},
		{k.Help, k.Quit},
	}
}
