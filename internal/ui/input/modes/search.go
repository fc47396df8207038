package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"careergranny/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+k":
		// the shortcut that opened search also closes it
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "down", "tab", "ctrl+n":
		if ctx.SearchResultCount() > 0 {
			return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
		}
		return nil, true
	case "up", "shift+tab", "ctrl+p":
		if ctx.SearchResultCount() > 0 {
			return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
		}
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
