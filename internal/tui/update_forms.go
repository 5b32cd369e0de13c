package tui

import (
	"errors"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
	"github.com/thenoetrevino/lanes/internal/storage"
	"github.com/thenoetrevino/lanes/internal/tui/forms"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// Form field keys
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldStatus      = "status"
	fieldBoard       = "board"
)

const (
	titleLimit       = 200
	descriptionLimit = 10000
	boardLimit       = 64
)

// openForm opens the create or edit form prefilled from task
func (m *Model) openForm(mode state.Mode, task models.Task) tea.Cmd {
	options := make([]forms.Option, len(models.Columns))
	for i, col := range models.Columns {
		options[i] = forms.Option{Label: col.Name, Value: string(col.Status)}
	}

	m.form = forms.NewForm(m.keys.SaveForm,
		forms.NewTextInput(fieldTitle, "Title", "What needs doing?", task.Title, titleLimit),
		forms.NewTextArea(fieldDescription, "Description", "Markdown supported", task.Description, descriptionLimit),
		forms.NewSelect(fieldStatus, "Status", options, string(task.Status)),
		forms.NewTextInput(fieldBoard, "Board", "optional", string(task.Board), boardLimit),
	)
	m.activeTaskID = task.ID
	m.UiState.SetMode(mode)
	m.resizeForm()
	return m.form.Init()
}

// resizeForm fits the text fields to the modal width
func (m *Model) resizeForm() {
	if m.form == nil {
		return
	}
	width := m.formWidth() - 6
	for _, key := range []string{fieldTitle, fieldDescription, fieldBoard} {
		if field, ok := m.form.Get(key).(interface{ SetWidth(int) }); ok {
			field.SetWidth(width)
		}
	}
}

func (m *Model) formWidth() int {
	w := m.UiState.Width() / 2
	return min(max(w, 40), 80)
}

// closeForm discards the form and its input
func (m *Model) closeForm() {
	m.form = nil
	m.closeModal()
}

func (m Model) handleFormMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.closeModal()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	m.form = form

	switch form.State() {
	case forms.StateAborted:
		m.closeForm()
		return m, nil
	case forms.StateCompleted:
		return m.submitForm()
	}
	return m, cmd
}

// submitForm saves the form; on failure the form stays open with its input
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.form.Value(fieldTitle))
	description := m.form.Value(fieldDescription)
	status := models.Status(m.form.Value(fieldStatus))
	board := models.BoardID(strings.TrimSpace(m.form.Value(fieldBoard)))

	var (
		id  string
		err error
	)
	if m.UiState.Mode() == state.CreateMode {
		var task models.Task
		task, err = m.App.TaskService.CreateTask(m.ctx, taskservice.CreateTaskRequest{
			Title:       title,
			Description: description,
			Status:      status,
			Board:       board,
		})
		id = task.ID
	} else {
		id = m.activeTaskID
		err = m.App.TaskService.UpdateTask(m.ctx, taskservice.UpdateTaskRequest{
			TaskID:      id,
			Title:       &title,
			Description: &description,
			Status:      &status,
			Board:       &board,
		})
	}

	if err != nil {
		slog.Error("failed to save task", "id", id, "error", err)
		m.form.Reopen()
		m.Notifications.Error(formErrorMessage(err))
		return m, nil
	}

	created := m.UiState.Mode() == state.CreateMode
	m.closeForm()
	m.reload()
	m.selectTask(id)
	if created {
		m.Notifications.Info("Task created")
	} else {
		m.Notifications.Info("Task updated")
	}
	return m, nil
}

func formErrorMessage(err error) string {
	switch {
	case errors.Is(err, taskservice.ErrEmptyTitle):
		return "Title is required"
	case errors.Is(err, taskservice.ErrEmptyDescription):
		return "Description is required"
	case errors.Is(err, taskservice.ErrEmptyStatus), errors.Is(err, models.ErrUnknownStatus):
		return "Pick a status column"
	case errors.Is(err, storage.ErrQuotaExceeded):
		return "Storage is full, task not saved"
	case errors.Is(err, taskservice.ErrTaskNotFound), errors.Is(err, storage.ErrTaskNotFound):
		return "Task no longer exists"
	default:
		return "Failed to save task: " + err.Error()
	}
}
