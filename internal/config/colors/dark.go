package colors

// Dark returns the default dark color scheme (purple accent)
func Dark() *ColorScheme {
	return &ColorScheme{
		Preset: "dark",

		Accent:     "#874BFD",
		Background: "#1C1C1C",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		ColumnBorder:   "#5F87D7",
		TaskBorder:     "#585858",
		TaskBackground: "#262626",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",
		SidebarBorder:  "#874BFD",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}
