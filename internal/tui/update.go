package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.resizeForm()
		m.clampSelection()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.UiState.Mode() {
		case state.NormalMode:
			return m.handleNormalMode(msg)
		case state.CreateMode, state.EditMode:
			return m.handleFormMode(msg)
		case state.ViewMode:
			return m.handleViewMode(msg)
		case state.DeleteConfirmMode:
			return m.handleDeleteConfirm(msg)
		case state.HelpMode:
			m.UiState.SetMode(state.NormalMode)
			return m, nil
		}
	}

	// Cursor blinks and other field messages
	if m.form != nil {
		return m.handleFormMode(msg)
	}
	return m, nil
}
