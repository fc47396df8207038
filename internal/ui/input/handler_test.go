package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careergranny/internal/domain"
	"careergranny/internal/ui/input/types"
)

type fakeContext struct {
	section domain.Section
	menu    bool
	results int
	pending bool
}

func (c *fakeContext) CurrentSection() domain.Section { return c.section }
func (c *fakeContext) MenuOpen() bool                 { return c.menu }
func (c *fakeContext) SearchResultCount() int         { return c.results }
func (c *fakeContext) SubmissionPending() bool        { return c.pending }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestArrowsMoveCarouselOnHome(t *testing.T) {
	h := New()
	ctx := &fakeContext{section: domain.SectionHome}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, ctx)
	assert.Equal(t, []types.Action{types.CarouselAction{Direction: "next"}}, actions)

	ctx.section = domain.SectionAbout
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "left"}}, actions)
}

func TestSearchModeTypesAndCloses(t *testing.T) {
	h := New()
	ctx := &fakeContext{section: domain.SectionHome}

	_, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlK}, ctx)
	require.Equal(t, types.ModeSearch, h.CurrentMode())

	actions, _ := h.HandleKey(runes("p"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "p"}}, actions)
	actions, _ = h.HandleKey(runes("y"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "py"}}, actions)

	ctx.results = 2
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Equal(t, []types.Action{types.SearchNavigateAction{Direction: "next"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "py", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestSearchEscCancels(t *testing.T) {
	h := New()
	ctx := &fakeContext{}

	_, _ = h.HandleKey(runes("/"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestMenuCapturesMovement(t *testing.T) {
	h := New()
	ctx := &fakeContext{section: domain.SectionHome, menu: true}

	actions, _ := h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.ChooseMenuAction{}}, actions)
}

func TestJumpAndFilterKeys(t *testing.T) {
	h := New()
	ctx := &fakeContext{section: domain.SectionHome}

	actions, _ := h.HandleKey(runes("4"), ctx)
	assert.Equal(t, []types.Action{types.ShowSectionAction{Section: domain.SectionEvents}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Empty(t, actions, "tab only filters on the events section")

	ctx.section = domain.SectionEvents
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, ctx)
	assert.Equal(t, []types.Action{types.FilterAction{Direction: "prev"}}, actions)
}

func TestContactModeEditsAndSubmits(t *testing.T) {
	h := New()
	ctx := &fakeContext{section: domain.SectionContact}

	_, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Equal(t, types.ModeContact, h.CurrentMode())

	actions, _ := h.HandleKey(runes("A"), ctx)
	assert.Equal(t, []types.Action{types.UpdateContactAction{Field: "name", Value: "A"}}, actions)

	_, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	actions, _ = h.HandleKey(runes("a@b.co"), ctx)
	assert.Equal(t, []types.Action{types.UpdateContactAction{Field: "email", Value: "a@b.co"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlS}, ctx)
	require.Len(t, actions, 1)
	submit, ok := actions[0].(types.SubmitContactAction)
	require.True(t, ok)
	assert.Equal(t, domain.FormInput{Name: "A", Email: "a@b.co"}, submit.Input)

	_, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Equal(t, "A", h.Contact().Values().Name, "leaving the form keeps its values")
}

func TestContactBlockedWhilePending(t *testing.T) {
	h := New()
	ctx := &fakeContext{section: domain.SectionContact, pending: true}

	_, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestCtrlCQuits(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, &fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}
