package modes

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"careergranny/internal/domain"
	"careergranny/internal/ui/input/types"
)

// Contact form inputs in tab order. The message is the last one.
const (
	ContactName = iota
	ContactEmail
	ContactSubject
	ContactMessage
	contactFieldCount
)

var contactFieldNames = [contactFieldCount]string{"name", "email", "subject", "message"}

// ContactMode edits the contact form. It owns its inputs so the form keeps
// its values when the user leaves and comes back.
type ContactMode struct {
	inputs  [ContactMessage]textinput.Model
	message textarea.Model
	focus   int
}

func NewContactMode() *ContactMode {
	m := &ContactMode{}
	placeholders := [ContactMessage]string{"Your name", "you@example.com", "Subject"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		ti.Width = 40
		m.inputs[i] = ti
	}

	m.message = textarea.New()
	m.message.Placeholder = "How can we help?"
	m.message.ShowLineNumbers = false
	m.message.SetWidth(60)
	m.message.SetHeight(4)
	return m
}

func (m *ContactMode) Name() string {
	return "contact"
}

func (m *ContactMode) Enter(ctx types.Context) []types.Action {
	m.setFocus(m.focus)
	return nil
}

func (m *ContactMode) Exit(ctx types.Context) []types.Action {
	m.blurAll()
	return nil
}

func (m *ContactMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "tab":
		m.setFocus((m.focus + 1) % contactFieldCount)
		return nil, true
	case "shift+tab":
		m.setFocus((m.focus + contactFieldCount - 1) % contactFieldCount)
		return nil, true
	case "ctrl+s":
		return []types.Action{types.SubmitContactAction{Input: m.Values()}}, true
	case "enter":
		// enter moves on from single-line fields; the message takes newlines
		if m.focus != ContactMessage {
			m.setFocus(m.focus + 1)
			return nil, true
		}
	}

	if m.focus == ContactMessage {
		m.message, _ = m.message.Update(msg)
		return []types.Action{types.UpdateContactAction{
			Field: contactFieldNames[ContactMessage],
			Value: m.message.Value(),
		}}, true
	}

	m.inputs[m.focus], _ = m.inputs[m.focus].Update(msg)
	return []types.Action{types.UpdateContactAction{
		Field: contactFieldNames[m.focus],
		Value: m.inputs[m.focus].Value(),
	}}, true
}

// Values returns the form as typed
func (m *ContactMode) Values() domain.FormInput {
	return domain.FormInput{
		Name:    m.inputs[ContactName].Value(),
		Email:   m.inputs[ContactEmail].Value(),
		Subject: m.inputs[ContactSubject].Value(),
		Message: m.message.Value(),
	}
}

// Load fills the inputs, e.g. after a rejected submission
func (m *ContactMode) Load(in domain.FormInput) {
	m.inputs[ContactName].SetValue(in.Name)
	m.inputs[ContactEmail].SetValue(in.Email)
	m.inputs[ContactSubject].SetValue(in.Subject)
	m.message.SetValue(in.Message)
}

// Clear empties the form and moves focus back to the first input
func (m *ContactMode) Clear() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.message.Reset()
	m.focus = ContactName
}

// FocusField moves focus to the named field, as after a validation failure
func (m *ContactMode) FocusField(field string) {
	for i, name := range contactFieldNames {
		if name == field {
			m.setFocus(i)
			return
		}
	}
}

// Focused returns the index of the focused input
func (m *ContactMode) Focused() int {
	return m.focus
}

// FieldViews renders each input for the form view
func (m *ContactMode) FieldViews() []string {
	out := make([]string, 0, contactFieldCount)
	for i := range m.inputs {
		out = append(out, m.inputs[i].View())
	}
	return append(out, m.message.View())
}

func (m *ContactMode) setFocus(i int) {
	m.blurAll()
	m.focus = i
	if i == ContactMessage {
		m.message.Focus()
		return
	}
	m.inputs[i].Focus()
}

func (m *ContactMode) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
}
