// Package forms implements the small field framework behind the task modal
package forms

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// FormState represents the state of the form
type FormState int

const (
	StateInProgress FormState = iota
	StateCompleted
	StateAborted
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string

	// Value returns the field's current value as text
	Value() string
}

// multiline fields keep enter for themselves instead of advancing focus
type multiline interface {
	Multiline() bool
}

// Form manages a collection of fields
type Form struct {
	fields       []Field
	focusedIndex int
	state        FormState
	submitKey    string
}

// NewForm creates a new form submitted with submitKey
func NewForm(submitKey string, fields ...Field) *Form {
	return &Form{
		fields:    fields,
		state:     StateInProgress,
		submitKey: submitKey,
	}
}

// Init focuses the first field
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.state = StateAborted
			return f, nil

		case f.submitKey:
			f.state = StateCompleted
			return f, nil

		case "tab", "shift+tab":
			return f, f.moveFocus(keyMsg.String() == "shift+tab")

		case "enter":
			if !f.focusedIsMultiline() {
				if f.focusedIndex == len(f.fields)-1 {
					f.state = StateCompleted
					return f, nil
				}
				return f, f.moveFocus(false)
			}
		}
	}

	// Forward message to focused field
	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

func (f *Form) focusedIsMultiline() bool {
	if f.focusedIndex >= len(f.fields) {
		return false
	}
	m, ok := f.fields[f.focusedIndex].(multiline)
	return ok && m.Multiline()
}

// moveFocus moves focus between fields, wrapping around
func (f *Form) moveFocus(reverse bool) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	f.fields[f.focusedIndex].Blur()

	if reverse {
		f.focusedIndex--
		if f.focusedIndex < 0 {
			f.focusedIndex = len(f.fields) - 1
		}
	} else {
		f.focusedIndex++
		if f.focusedIndex >= len(f.fields) {
			f.focusedIndex = 0
		}
	}

	return f.fields[f.focusedIndex].Focus()
}

// View renders the form
func (f *Form) View() string {
	s := ""
	for _, field := range f.fields {
		s += field.View() + "\n\n"
	}
	return s
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Reopen puts a completed form back in progress, e.g. after a failed save
func (f *Form) Reopen() {
	f.state = StateInProgress
}

// Focused returns the key of the focused field
func (f *Form) Focused() string {
	if f.focusedIndex >= len(f.fields) {
		return ""
	}
	return f.fields[f.focusedIndex].Key()
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

// Value returns the value of the field with key, or "" when absent
func (f *Form) Value(key string) string {
	if field := f.Get(key); field != nil {
		return field.Value()
	}
	return ""
}

func titleStyle(focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Subtle))
	if focused {
		style = style.Foreground(lipgloss.Color(theme.Accent))
	}
	return style
}
