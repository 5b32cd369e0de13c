package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// columnOverhead is the lines a column spends outside its cards:
// top and bottom border, header, and the two scroll indicator lines
const columnOverhead = 5

// VisibleTasks returns how many cards fit in a column of the given height
func VisibleTasks(height int) int {
	return max((height-columnOverhead)/TaskCardHeight, 1)
}

// ColumnProps describes one status column to render
type ColumnProps struct {
	Column       models.Column
	Tasks        []models.Task
	Selected     bool
	SelectedTask int // index of the selected task, ignored unless Selected
	ScrollOffset int // index of the first visible task
	Width        int
	Height       int
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Name} ({count})
//	▲ more above (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ more below (if more tasks below)
func RenderColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Column.Name, len(props.Tasks))
	content := TitleStyle.Render(header) + "\n"

	cardWidth := max(props.Width-4, 8)

	if len(props.Tasks) == 0 {
		content += SubtleStyle.Padding(1, 0).Render("No tasks")
	} else {
		maxVisible := VisibleTasks(props.Height)
		offset := min(max(props.ScrollOffset, 0), len(props.Tasks)-1)

		if offset > 0 {
			content += IndicatorStyle.Width(cardWidth).Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		end := min(offset+maxVisible, len(props.Tasks))
		cards := make([]string, 0, end-offset)
		for i := offset; i < end; i++ {
			isSelected := props.Selected && i == props.SelectedTask
			cards = append(cards, RenderTask(props.Tasks[i], isSelected, cardWidth))
		}
		content += strings.Join(cards, "\n")

		if end < len(props.Tasks) {
			content += "\n" + IndicatorStyle.Width(cardWidth).Render("▼ more below")
		}
	}

	style := ColumnStyle.Width(props.Width)
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		style = style.Height(props.Height)
	}

	return style.Render(content)
}
