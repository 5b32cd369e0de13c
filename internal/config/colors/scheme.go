package colors

// ColorScheme defines every color the board renders with
type ColorScheme struct {
	// Preset name the unset fields are filled from ("dark", "light", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`

	// Semantic colors
	Create string `yaml:"create"` // creation dialogs
	Edit   string `yaml:"edit"`   // edit dialogs
	Delete string `yaml:"delete"` // delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	TaskBackground string `yaml:"task_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	SidebarBorder  string `yaml:"sidebar_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name; unknown names get Dark
func GetPreset(name string) *ColorScheme {
	switch name {
	case "light":
		return Light()
	case "monochrome":
		return Monochrome()
	default:
		return Dark()
	}
}

// fields lists pointers to every color so schemes can be merged generically
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Background,
		&c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.TaskBorder, &c.TaskBackground,
		&c.SelectedBorder, &c.SelectedBg, &c.SidebarBorder,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills empty colors from the named preset, falling back to
// fallback when no preset is named
func (c *ColorScheme) ApplyDefaults(fallback string) {
	if c.Preset == "" {
		c.Preset = fallback
	}
	preset := GetPreset(c.Preset).fields()
	for i, f := range c.fields() {
		if *f == "" {
			*f = *preset[i]
		}
	}
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	theirs := other.fields()
	for i, f := range c.fields() {
		if *theirs[i] != "" {
			*f = *theirs[i]
		}
	}
}
