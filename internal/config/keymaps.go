package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	ViewTask      string `yaml:"view_task"`
	DeleteTask    string `yaml:"delete_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`
	PrevBoard  string `yaml:"prev_board"`
	NextBoard  string `yaml:"next_board"`

	// Layout
	ToggleSidebar string `yaml:"toggle_sidebar"`
	ToggleTheme   string `yaml:"toggle_theme"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:       "a",
		EditTask:      "e",
		ViewTask:      " ",
		DeleteTask:    "d",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",

		SaveForm: "ctrl+s",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",
		PrevBoard:  "{",
		NextBoard:  "}",

		ToggleSidebar: "s",
		ToggleTheme:   "t",

		ShowHelp: "?",
		Quit:     "q",
	}
}

func fill(field *string, fallback string) {
	if *field == "" {
		*field = fallback
	}
}

// applyDefaults fills in any missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()

	fill(&k.AddTask, d.AddTask)
	fill(&k.EditTask, d.EditTask)
	fill(&k.ViewTask, d.ViewTask)
	fill(&k.DeleteTask, d.DeleteTask)
	fill(&k.MoveTaskLeft, d.MoveTaskLeft)
	fill(&k.MoveTaskRight, d.MoveTaskRight)
	fill(&k.SaveForm, d.SaveForm)
	fill(&k.PrevColumn, d.PrevColumn)
	fill(&k.NextColumn, d.NextColumn)
	fill(&k.PrevTask, d.PrevTask)
	fill(&k.NextTask, d.NextTask)
	fill(&k.PrevBoard, d.PrevBoard)
	fill(&k.NextBoard, d.NextBoard)
	fill(&k.ToggleSidebar, d.ToggleSidebar)
	fill(&k.ToggleTheme, d.ToggleTheme)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
