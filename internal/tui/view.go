package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/state"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	switch m.UiState.Mode() {
	case state.CreateMode:
		return m.place(m.renderForm("New Task", components.CreateBoxStyle))
	case state.EditMode:
		return m.place(m.renderForm("Edit Task", components.EditBoxStyle))
	case state.ViewMode:
		return m.place(m.renderTaskDetails())
	case state.DeleteConfirmMode:
		return m.place(m.renderDeleteConfirm())
	case state.HelpMode:
		return m.place(m.renderHelp())
	}

	return m.renderBoard()
}

// place centers a modal over the whole terminal
func (m Model) place(box string) string {
	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

func (m Model) renderBoard() string {
	height := m.UiState.ContentHeight()
	width := m.UiState.Width()

	var panels []string
	if m.showSidebar {
		panels = append(panels, components.RenderSidebar(components.SidebarProps{
			Boards: m.boards,
			Active: m.board,
			Light:  m.light,
			Height: height,
		}))
		width -= components.SidebarWidth + 2
	}

	columnWidth := max(width/len(models.Columns)-2, 12)
	for i, col := range models.Columns {
		selected := i == m.UiState.SelectedColumn()
		panels = append(panels, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Tasks:        m.columns[col.Status],
			Selected:     selected,
			SelectedTask: m.UiState.SelectedTask(),
			ScrollOffset: m.UiState.TaskScrollOffset(i),
			Width:        columnWidth,
			Height:       height,
		}))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, panels...)

	var notification *state.Notification
	if n, ok := m.Notifications.Current(); ok {
		notification = &n
	}
	bar := components.RenderStatusBar(components.StatusBarProps{
		Width:        m.UiState.Width(),
		Hint:         m.statusHint(),
		Notification: notification,
	})

	return lipgloss.JoinVertical(lipgloss.Left, board, bar)
}

func (m Model) statusHint() string {
	km := m.keys
	return fmt.Sprintf("%s add  %s edit  %s view  %s delete  %s help  %s quit",
		km.AddTask, km.EditTask, km.ViewTask, km.DeleteTask, km.ShowHelp, km.Quit)
}

func (m Model) renderForm(title string, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(title))
	b.WriteString("\n\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}

	hint := fmt.Sprintf("tab next field  %s save  esc cancel", m.keys.SaveForm)
	if n, ok := m.Notifications.Current(); ok && n.Level == state.LevelError {
		b.WriteString(components.ErrorBannerStyle.Render(n.Message))
		b.WriteString("\n")
	}
	b.WriteString(components.SubtleStyle.Render(hint))

	return style.Width(m.formWidth()).Render(b.String())
}

func (m Model) renderTaskDetails() string {
	task, ok := m.findTask(m.activeTaskID)
	if !ok {
		return components.ViewBoxStyle.Render("Task not found")
	}

	width := m.formWidth()
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(task.Title))
	b.WriteString("\n")

	meta := "Status: " + task.Status.Name()
	if task.Board.IsSet() {
		meta += "   Board: #" + string(task.Board)
	}
	b.WriteString(components.SubtleStyle.Render(meta))
	b.WriteString("\n\n")

	b.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: task.Description,
		Width:       width - 6,
		Light:       m.light,
	}))
	b.WriteString("\n\n")
	b.WriteString(components.SubtleStyle.Render(fmt.Sprintf(
		"%s edit  %s delete  esc close", m.keys.EditTask, m.keys.DeleteTask)))

	return components.ViewBoxStyle.Width(width).Render(b.String())
}

func (m Model) renderDeleteConfirm() string {
	title := m.activeTaskID
	if task, ok := m.findTask(m.activeTaskID); ok {
		title = task.Title
	}
	content := fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", title)
	return components.DeleteConfirmBoxStyle.Width(50).Render(content)
}

func (m Model) renderHelp() string {
	km := m.keys
	rows := [][2]string{
		{km.AddTask, "add task"},
		{km.EditTask, "edit task"},
		{km.ViewTask, "view task"},
		{km.DeleteTask, "delete task"},
		{km.MoveTaskLeft + "/" + km.MoveTaskRight, "move task left/right"},
		{km.PrevColumn + "/" + km.NextColumn, "previous/next column"},
		{km.PrevTask + "/" + km.NextTask, "previous/next task"},
		{km.PrevBoard + "/" + km.NextBoard, "previous/next board"},
		{km.ToggleSidebar, "toggle sidebar"},
		{km.ToggleTheme, "toggle theme"},
		{km.SaveForm, "save form"},
		{km.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-10s %s\n", row[0], row[1])
	}
	b.WriteString("\n")
	b.WriteString(components.SubtleStyle.Render("press any key to close"))

	return components.HelpBoxStyle.Render(b.String())
}
