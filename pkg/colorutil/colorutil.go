// Package colorutil provides the shared color palette for the circuit editor.
package colorutil

import "image/color"

// Drawing colors used throughout the application.
var (
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGray = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	DarkGray  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Toolbar button colors, matching the selected/normal/border scheme of the UI.
var (
	ButtonNormal   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	ButtonSelected = color.RGBA{R: 180, G: 200, B: 255, A: 255}
	ButtonBorder   = Black
	ButtonText     = Black
)
