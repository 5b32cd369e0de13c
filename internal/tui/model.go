// Package tui implements the interactive kanban board
package tui

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/storage"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/forms"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config
	keys   config.KeyMappings

	UiState       *state.UIState
	Notifications *state.NotificationState

	// form is the open create or edit form, nil otherwise
	form *forms.Form

	// activeTaskID is the task shown in the view, edit or delete modal
	activeTaskID string

	columns     map[models.Status][]models.Task
	board       models.BoardID
	boards      []components.BoardEntry
	showSidebar bool
	light       bool
}

// InitialModel creates the TUI model and loads the board from storage
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = a.Config
	}

	m := Model{
		ctx:           ctx,
		App:           a,
		Config:        cfg,
		keys:          normalizeKeys(cfg.KeyMappings),
		UiState:       state.NewUIState(),
		Notifications: state.NewNotificationState(),
		showSidebar:   a.Prefs.SidebarVisible(ctx),
		light:         a.Prefs.LightTheme(ctx),
		board:         a.Prefs.ActiveBoard(ctx),
	}

	components.InitStyles(cfg.Scheme(m.light), m.light)
	m.reload()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// reload re-reads the board from storage and keeps the selection in range
func (m *Model) reload() {
	columns, err := m.App.TaskService.GetTasksByStatus(m.ctx, m.board)
	m.columns = columns
	if err != nil {
		slog.Error("failed to load tasks", "error", err)
		if errors.Is(err, storage.ErrCorruptPayload) {
			m.Notifications.Error("Stored tasks are corrupted, showing an empty board")
		} else {
			m.Notifications.Error("Failed to load tasks: " + err.Error())
		}
	}

	m.boards = m.loadBoards()
	m.clampSelection()
}

// loadBoards lists the "all tasks" entry followed by every board in use
func (m *Model) loadBoards() []components.BoardEntry {
	all, _ := m.App.TaskService.ListTasks(m.ctx, models.NoBoard)

	counts := make(map[models.BoardID]int)
	for _, task := range all {
		if task.Board.IsSet() {
			counts[task.Board]++
		}
	}
	if m.board.IsSet() {
		if _, ok := counts[m.board]; !ok {
			counts[m.board] = 0
		}
	}

	ids := make([]models.BoardID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	entries := make([]components.BoardEntry, 0, len(ids)+1)
	entries = append(entries, components.BoardEntry{Board: models.NoBoard, Count: len(all)})
	for _, id := range ids {
		entries = append(entries, components.BoardEntry{Board: id, Count: counts[id]})
	}
	return entries
}

func (m *Model) columnTasks(column int) []models.Task {
	if column < 0 || column >= len(models.Columns) {
		return nil
	}
	return m.columns[models.Columns[column].Status]
}

func (m *Model) clampSelection() {
	m.UiState.ClampSelection(len(models.Columns), func(column int) int {
		return len(m.columnTasks(column))
	})
	m.UiState.EnsureTaskVisible(m.UiState.SelectedColumn(), m.UiState.SelectedTask(), m.visibleTasks())
}

func (m *Model) visibleTasks() int {
	return components.VisibleTasks(m.UiState.ContentHeight())
}

// currentTask returns the selected task, if the selected column has one
func (m *Model) currentTask() (models.Task, bool) {
	tasks := m.columnTasks(m.UiState.SelectedColumn())
	idx := m.UiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[idx], true
}

// findTask returns the loaded task with id
func (m *Model) findTask(id string) (models.Task, bool) {
	for _, col := range models.Columns {
		for _, task := range m.columns[col.Status] {
			if task.ID == id {
				return task, true
			}
		}
	}
	return models.Task{}, false
}

// selectTask moves the selection onto the task with id when it is on the board
func (m *Model) selectTask(id string) {
	for c, col := range models.Columns {
		for i, task := range m.columns[col.Status] {
			if task.ID == id {
				m.UiState.SetSelectedColumn(c)
				m.UiState.SetSelectedTask(i)
				m.UiState.EnsureTaskVisible(c, i, m.visibleTasks())
				return
			}
		}
	}
}

// Board returns the active board filter
func (m Model) Board() models.BoardID {
	return m.board
}

// Columns returns the loaded tasks of status
func (m Model) Columns(status models.Status) []models.Task {
	return m.columns[status]
}

// SidebarVisible reports whether the board list is shown
func (m Model) SidebarVisible() bool {
	return m.showSidebar
}

// LightTheme reports whether the light scheme is active
func (m Model) LightTheme() bool {
	return m.light
}

// Form returns the open form, nil outside create and edit mode
func (m Model) Form() *forms.Form {
	return m.form
}

// normalizeKeys maps a literal space binding to the name key presses report
func normalizeKeys(km config.KeyMappings) config.KeyMappings {
	for _, field := range []*string{
		&km.AddTask, &km.EditTask, &km.ViewTask, &km.DeleteTask,
		&km.MoveTaskLeft, &km.MoveTaskRight, &km.SaveForm,
		&km.PrevColumn, &km.NextColumn, &km.PrevTask, &km.NextTask,
		&km.PrevBoard, &km.NextBoard, &km.ToggleSidebar, &km.ToggleTheme,
		&km.ShowHelp, &km.Quit,
	} {
		if *field == " " {
			*field = "space"
		}
	}
	return km
}
