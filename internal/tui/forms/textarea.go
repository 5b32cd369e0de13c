package forms

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea is a multi-line text input field
type TextArea struct {
	key      string
	title    string
	textarea textarea.Model
}

// NewTextArea creates a new text area field
func NewTextArea(key, title, placeholder, value string, charLimit int) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = charLimit
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.SetValue(value)

	return &TextArea{
		key:      key,
		title:    title,
		textarea: ta,
	}
}

// Update handles messages
func (t *TextArea) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.textarea, cmd = t.textarea.Update(msg)
	return t, cmd
}

// View renders the text area
func (t *TextArea) View() string {
	return titleStyle(t.Focused()).Render(t.title) + "\n" + t.textarea.View()
}

// Focus focuses the text area
func (t *TextArea) Focus() tea.Cmd {
	return t.textarea.Focus()
}

// Blur removes focus
func (t *TextArea) Blur() {
	t.textarea.Blur()
}

// Focused returns whether the textarea is focused
func (t *TextArea) Focused() bool {
	return t.textarea.Focused()
}

// Key returns the field key
func (t *TextArea) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextArea) Value() string {
	return t.textarea.Value()
}

// SetValue replaces the current value
func (t *TextArea) SetValue(value string) {
	t.textarea.SetValue(value)
}

// SetWidth sets the visible width of the text area
func (t *TextArea) SetWidth(width int) {
	t.textarea.SetWidth(width)
}

// Multiline keeps enter inside the text area
func (t *TextArea) Multiline() bool {
	return true
}
