package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CircuitMakerTheme provides a custom theme for the application.
type CircuitMakerTheme struct{}

var _ fyne.Theme = (*CircuitMakerTheme)(nil)

func (t *CircuitMakerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x1A, G: 0x4F, B: 0x8B, A: 0xFF} // Schematic blue
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0xB4, G: 0xC8, B: 0xFF, A: 0x80} // Active tool tint
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *CircuitMakerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CircuitMakerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *CircuitMakerTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
