package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// SidebarWidth is the outer width of the board list
const SidebarWidth = 26

// BoardEntry is one row of the board list
type BoardEntry struct {
	Board models.BoardID
	Count int
}

// SidebarProps describes the board list panel
type SidebarProps struct {
	Boards []BoardEntry
	Active models.BoardID
	Light  bool
	Height int
}

// RenderSidebar renders the boards with their task counts and the theme switch
func RenderSidebar(props SidebarProps) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("ALL BOARDS (%d)", len(props.Boards))))
	b.WriteString("\n\n")

	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	for _, entry := range props.Boards {
		name := "All tasks"
		if entry.Board.IsSet() {
			name = "#" + string(entry.Board)
		}
		line := fmt.Sprintf("%s (%d)", name, entry.Count)
		if entry.Board == props.Active {
			b.WriteString(activeStyle.Render("▸ " + line))
		} else {
			b.WriteString(normalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	themeName := "dark"
	if props.Light {
		themeName = "light"
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("theme: " + themeName))

	style := SidebarStyle.Width(SidebarWidth)
	if props.Height > 0 {
		style = style.Height(props.Height)
	}
	return style.Render(b.String())
}
