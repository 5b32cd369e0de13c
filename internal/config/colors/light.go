package colors

// Light returns the light color scheme (cream paper background)
func Light() *ColorScheme {
	return &ColorScheme{
		Preset: "light",

		Accent:     "#624C83",
		Background: "#F2ECBC",

		Create: "#6F894E",
		Edit:   "#4D699B",
		Delete: "#C84053",

		ColumnBorder:   "#A09CAC",
		TaskBorder:     "#C7C7B6",
		TaskBackground: "#E5DDB0",
		SelectedBorder: "#597B75",
		SelectedBg:     "#C9CBD1",
		SidebarBorder:  "#624C83",

		Title:  "#4D699B",
		Subtle: "#8A8980",
		Normal: "#545464",

		InfoFg:  "#4E8CA2",
		InfoBg:  "#B5CBD2",
		ErrorFg: "#D7474B",
		ErrorBg: "#D9A594",
	}
}
