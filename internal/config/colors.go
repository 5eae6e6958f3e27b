package config

import "github.com/thenoetrevino/novi/internal/config/colors"

// ColorScheme is the theme used for human-readable CLI output
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (dark red)
func DefaultColorScheme() ColorScheme {
	return *colors.DarkRed()
}
