package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"careergranny/internal/domain"
	"careergranny/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	if key.Matches(msg, m.keys.Search) {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	}

	// The open menu captures movement and enter
	if ctx.MenuOpen() {
		switch {
		case key.Matches(msg, m.keys.Up):
			return []types.Action{types.NavigateAction{Direction: "up"}}, true
		case key.Matches(msg, m.keys.Down):
			return []types.Action{types.NavigateAction{Direction: "down"}}, true
		case key.Matches(msg, m.keys.Choose):
			return []types.Action{types.ChooseMenuAction{}}, true
		case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Close):
			return []types.Action{types.ToggleMenuAction{}}, true
		}
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		// Arrows page the carousel on the home section
		if ctx.CurrentSection() == domain.SectionHome {
			return []types.Action{types.CarouselAction{Direction: "prev"}}, true
		}
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case key.Matches(msg, m.keys.Right):
		if ctx.CurrentSection() == domain.SectionHome {
			return []types.Action{types.CarouselAction{Direction: "next"}}, true
		}
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case key.Matches(msg, m.keys.PrevSection):
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case key.Matches(msg, m.keys.NextSection):
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case key.Matches(msg, m.keys.Jump):
		sections := domain.Sections()
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(sections) {
			return []types.Action{types.ShowSectionAction{Section: sections[idx]}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Menu):
		return []types.Action{types.ToggleMenuAction{}}, true

	case key.Matches(msg, m.keys.NextFilter):
		if ctx.CurrentSection() == domain.SectionEvents {
			return []types.Action{types.FilterAction{Direction: "next"}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.PrevFilter):
		if ctx.CurrentSection() == domain.SectionEvents {
			return []types.Action{types.FilterAction{Direction: "prev"}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Choose):
		// Enter starts editing the form on the contact section
		if ctx.CurrentSection() == domain.SectionContact && !ctx.SubmissionPending() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeContact}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.EventsPager):
		return []types.Action{types.OpenEventsPagerAction{}}, true

	case key.Matches(msg, m.keys.ExportEvents):
		return []types.Action{types.ExportCalendarAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Close):
		return nil, true // Consume the key even if no action

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
