// Package theme holds the colors of the active color scheme
package theme

import "github.com/thenoetrevino/lanes/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	TaskBorder     string
	TaskBg         string
	SelectedBorder string
	SelectedBg     string
	SidebarBorder  string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string

	// Light reports whether the light scheme is active
	Light bool
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme, light bool) {
	Accent = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	TaskBorder = colors.TaskBorder
	TaskBg = colors.TaskBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	SidebarBorder = colors.SidebarBorder
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	Light = light
}
