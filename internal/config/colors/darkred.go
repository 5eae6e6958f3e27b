package colors

// DarkRed returns the dark theme with a red primary
func DarkRed() *ColorScheme {
	return &ColorScheme{
		Preset: DarkRedPreset,

		Accent: "#EF6C6B",

		Title:  "#FFCBD0",
		Subtle: "#9E9E9E",
		Normal: "#FFFFFF",

		SuccessFg: "#6BEF6B",
		SuccessBg: "#1E3A1E",
		WarningFg: "#FFD700",
		WarningBg: "#5C4A00",
		ErrorFg:   "#F93636",
		ErrorBg:   "#373737",
	}
}
