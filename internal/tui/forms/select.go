package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// Option is one choice of a Select field
type Option struct {
	Label string
	Value string
}

// Select is a single-choice field cycled with left/right
type Select struct {
	key       string
	title     string
	options   []Option
	selection int
	focused   bool
}

// NewSelect creates a select field with value preselected when present
func NewSelect(key, title string, options []Option, value string) *Select {
	s := &Select{
		key:     key,
		title:   title,
		options: options,
	}
	for i, opt := range options {
		if opt.Value == value {
			s.selection = i
		}
	}
	return s
}

// Update handles messages
func (s *Select) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !s.focused || len(s.options) == 0 {
		return s, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "left", "h":
			s.selection = (s.selection - 1 + len(s.options)) % len(s.options)
		case "right", "l", "space":
			s.selection = (s.selection + 1) % len(s.options)
		}
	}

	return s, nil
}

// View renders the options on one line with the selected one highlighted
func (s *Select) View() string {
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent)).
		Background(lipgloss.Color(theme.SelectedBg))
	unselectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	rendered := make([]string, len(s.options))
	for i, opt := range s.options {
		style := unselectedStyle
		if i == s.selection {
			style = selectedStyle
		}
		rendered[i] = style.Render(" " + opt.Label + " ")
	}

	return titleStyle(s.focused).Render(s.title) + "\n" + strings.Join(rendered, "  ")
}

// Focus focuses the select field
func (s *Select) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus
func (s *Select) Blur() {
	s.focused = false
}

// Focused returns whether the field is focused
func (s *Select) Focused() bool {
	return s.focused
}

// Key returns the field key
func (s *Select) Key() string {
	return s.key
}

// Value returns the value of the selected option
func (s *Select) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.selection].Value
}
