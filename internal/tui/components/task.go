package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// TaskCardHeight is the fixed height of a task card: two title lines, one
// board line and the top and bottom borders
const TaskCardHeight = 5

const taskTitleLines = 2

// RenderTask renders a single task as a card of the given outer width
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Task Title}        ┃
//	┃ {wrapped title}     ┃
//	┃ board               ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
func RenderTask(task models.Task, selected bool, width int) string {
	bg := theme.TaskBg
	border := theme.TaskBorder
	if selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	innerWidth := max(width-4, 4)
	content := renderTaskTitle(task.Title, innerWidth) + "\n" + renderTaskBoard(task.Board, bg)

	style := TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Width(width - 2)

	return style.Render(content)
}

// renderTaskTitle wraps the title to width and keeps the first two lines,
// marking the cut with an ellipsis
func renderTaskTitle(title string, width int) string {
	lines := strings.Split(wordwrap.String(title, width), "\n")
	if len(lines) > taskTitleLines {
		lines = lines[:taskTitleLines]
		last := []rune(lines[taskTitleLines-1])
		if len(last) > width-3 {
			last = last[:max(width-3, 0)]
		}
		lines[taskTitleLines-1] = string(last) + "..."
	}
	for len(lines) < taskTitleLines {
		lines = append(lines, "")
	}

	style := lipgloss.NewStyle().Bold(true)
	for i, line := range lines {
		lines[i] = style.Render(" " + line)
	}
	return strings.Join(lines, "\n")
}

func renderTaskBoard(board models.BoardID, bg string) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Italic(true)
	if !board.IsSet() {
		return " " + style.Render("no board")
	}
	return " " + style.Render("#"+string(board))
}
