package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanes/internal/tui/state"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// StatusBarProps describes the bottom status line
type StatusBarProps struct {
	Width        int
	Hint         string
	Notification *state.Notification
}

// RenderStatusBar renders the notification (or app name) on the left and the
// key hint on the right
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	left := style.Render("lanes")
	if n := props.Notification; n != nil {
		if n.Level == state.LevelError {
			left = ErrorBannerStyle.Render(n.Message)
		} else {
			left = InfoBannerStyle.Render(n.Message)
		}
	}
	right := style.Render(props.Hint)

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}
