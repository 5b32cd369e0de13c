package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.Notifications.Clear()

	key := msg.String()
	km := m.keys

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddTask:
		return m.handleAddTask()
	case km.EditTask:
		return m.handleEditTask()
	case km.ViewTask:
		return m.handleViewTask()
	case km.DeleteTask:
		return m.handleDeleteTask()
	case km.MoveTaskRight:
		return m.handleMoveTask(true)
	case km.MoveTaskLeft:
		return m.handleMoveTask(false)
	case km.PrevColumn, "left":
		return m.handleNavigateColumn(-1)
	case km.NextColumn, "right":
		return m.handleNavigateColumn(1)
	case km.PrevTask, "up":
		return m.handleNavigateTask(-1)
	case km.NextTask, "down":
		return m.handleNavigateTask(1)
	case km.PrevBoard:
		return m.handleSwitchBoard(-1)
	case km.NextBoard:
		return m.handleSwitchBoard(1)
	case km.ToggleSidebar:
		return m.handleToggleSidebar()
	case km.ToggleTheme:
		return m.handleToggleTheme()
	}
	return m, nil
}

func (m Model) handleNavigateColumn(delta int) (tea.Model, tea.Cmd) {
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= len(models.Columns) {
		return m, nil
	}
	m.UiState.SetSelectedColumn(next)
	m.clampSelection()
	return m, nil
}

func (m Model) handleNavigateTask(delta int) (tea.Model, tea.Cmd) {
	col := m.UiState.SelectedColumn()
	next := m.UiState.SelectedTask() + delta
	if next < 0 || next >= len(m.columnTasks(col)) {
		return m, nil
	}
	m.UiState.SetSelectedTask(next)
	m.UiState.EnsureTaskVisible(col, next, m.visibleTasks())
	return m, nil
}

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	draft := models.Task{
		Status: models.Columns[m.UiState.SelectedColumn()].Status,
		Board:  m.board,
	}
	return m, m.openForm(state.CreateMode, draft)
}

func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		m.Notifications.Info("No task selected")
		return m, nil
	}
	return m, m.openForm(state.EditMode, task)
}

func (m Model) handleViewTask() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		m.Notifications.Info("No task selected")
		return m, nil
	}
	m.activeTaskID = task.ID
	m.UiState.SetMode(state.ViewMode)
	return m, nil
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		m.Notifications.Info("No task selected")
		return m, nil
	}
	m.activeTaskID = task.ID
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// handleMoveTask moves the selected task one column and keeps it selected
func (m Model) handleMoveTask(right bool) (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		return m, nil
	}

	var err error
	if right {
		err = m.App.TaskService.MoveTaskToNextColumn(m.ctx, task.ID)
	} else {
		err = m.App.TaskService.MoveTaskToPrevColumn(m.ctx, task.ID)
	}

	switch {
	case errors.Is(err, models.ErrAlreadyLastColumn):
		m.Notifications.Info("Task is already in the last column")
		return m, nil
	case errors.Is(err, models.ErrAlreadyFirstColumn):
		m.Notifications.Info("Task is already in the first column")
		return m, nil
	case err != nil:
		slog.Error("failed to move task", "id", task.ID, "error", err)
		m.Notifications.Error("Failed to move task: " + err.Error())
		return m, nil
	}

	m.reload()
	m.selectTask(task.ID)
	return m, nil
}

// handleSwitchBoard cycles the board filter and remembers it
func (m Model) handleSwitchBoard(delta int) (tea.Model, tea.Cmd) {
	if len(m.boards) < 2 {
		return m, nil
	}

	current := 0
	for i, entry := range m.boards {
		if entry.Board == m.board {
			current = i
			break
		}
	}
	next := (current + delta + len(m.boards)) % len(m.boards)
	m.board = m.boards[next].Board

	if err := m.App.Prefs.SetActiveBoard(m.ctx, m.board); err != nil {
		slog.Error("failed to save active board", "error", err)
		m.Notifications.Error("Failed to save active board")
	}

	m.UiState.ResetSelection()
	m.reload()
	return m, nil
}

func (m Model) handleToggleSidebar() (tea.Model, tea.Cmd) {
	m.showSidebar = !m.showSidebar
	if err := m.App.Prefs.SetSidebarVisible(m.ctx, m.showSidebar); err != nil {
		slog.Error("failed to save sidebar preference", "error", err)
		m.Notifications.Error("Failed to save sidebar preference")
	}
	return m, nil
}

func (m Model) handleToggleTheme() (tea.Model, tea.Cmd) {
	m.light = !m.light
	if err := m.App.Prefs.SetLightTheme(m.ctx, m.light); err != nil {
		slog.Error("failed to save theme preference", "error", err)
		m.Notifications.Error("Failed to save theme preference")
	}
	components.InitStyles(m.Config.Scheme(m.light), m.light)
	return m, nil
}

// handleViewMode handles keys while the task details are shown
func (m Model) handleViewMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	task, ok := m.findTask(m.activeTaskID)
	if !ok {
		m.closeModal()
		return m, nil
	}

	switch msg.String() {
	case "esc", m.keys.ViewTask, m.keys.Quit:
		m.closeModal()
	case m.keys.EditTask:
		return m, m.openForm(state.EditMode, task)
	case m.keys.DeleteTask:
		m.UiState.SetMode(state.DeleteConfirmMode)
	}
	return m, nil
}

// handleDeleteConfirm deletes on y and cancels on n or esc
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.activeTaskID
		m.closeModal()
		if err := m.App.TaskService.DeleteTask(m.ctx, id); err != nil {
			slog.Error("failed to delete task", "id", id, "error", err)
			m.Notifications.Error("Failed to delete task: " + err.Error())
			return m, nil
		}
		m.reload()
		m.Notifications.Info("Task deleted")
	case "n", "N", "esc":
		m.closeModal()
	}
	return m, nil
}

func (m *Model) closeModal() {
	m.activeTaskID = ""
	m.UiState.SetMode(state.NormalMode)
}
