package colors

// LightRed returns the light theme with a red primary
func LightRed() *ColorScheme {
	return &ColorScheme{
		Preset: LightRedPreset,

		Accent: "#EF6C6B",

		Title:  "#FC3227",
		Subtle: "#777777",
		Normal: "#333333",

		SuccessFg: "#1B5E20",
		SuccessBg: "#C8F7C8",
		WarningFg: "#7A4F00",
		WarningBg: "#FFE9B3",
		ErrorFg:   "#F93636",
		ErrorBg:   "#FFCBD0",
	}
}
