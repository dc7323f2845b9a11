package editor

import (
	"image"

	"circuit-maker/internal/component"
	"circuit-maker/pkg/colorutil"
	"circuit-maker/pkg/geometry"
	"circuit-maker/pkg/raster"
)

// Tool is the active placement mode. Exactly one tool is active at a time.
type Tool int

const (
	ToolNone Tool = iota
	ToolWire
	ToolResistor
	ToolGround
	ToolPower
)

func (t Tool) String() string {
	switch t {
	case ToolNone:
		return "None"
	case ToolWire:
		return "Wire"
	case ToolResistor:
		return "Resistor"
	case ToolGround:
		return "Ground"
	case ToolPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// ComponentType returns the component type the tool places. Only valid for
// tools other than ToolNone.
func (t Tool) ComponentType() component.Type {
	switch t {
	case ToolWire:
		return component.TypeWire
	case ToolResistor:
		return component.TypeResistor
	case ToolGround:
		return component.TypeGround
	default:
		return component.TypePower
	}
}

// Toolbar button layout.
const (
	buttonWidth   = 110
	buttonHeight  = 32
	buttonPadding = 10
	buttonSpacing = 5

	// ToolbarHeight is the pixel height of the toolbar strip at the top of
	// the editor canvas. The grid begins directly below it.
	ToolbarHeight = buttonHeight + 2*buttonPadding
)

// Button is a clickable toolbar region that activates a tool.
type Button struct {
	Rect  geometry.RectInt
	Label string
	Tool  Tool
}

// HitTest returns true if the pixel lies inside the button.
func (b *Button) HitTest(x, y int) bool {
	return b.Rect.Contains(x, y)
}

// Toolbar is the row of tool buttons across the top of the editor.
type Toolbar struct {
	Height  int
	Buttons []Button
}

// NewToolbar creates the standard toolbar with one button per placement tool.
func NewToolbar() *Toolbar {
	tools := []struct {
		label string
		tool  Tool
	}{
		{"Wire", ToolWire},
		{"Resistor", ToolResistor},
		{"Ground", ToolGround},
		{"Power", ToolPower},
	}

	tb := &Toolbar{Height: ToolbarHeight}
	x := buttonPadding
	for _, t := range tools {
		tb.Buttons = append(tb.Buttons, Button{
			Rect:  geometry.NewRectInt(x, buttonPadding, buttonWidth, buttonHeight),
			Label: t.label,
			Tool:  t.tool,
		})
		x += buttonWidth + buttonSpacing
	}
	return tb
}

// HitTest returns the first button containing the pixel, or nil.
func (tb *Toolbar) HitTest(x, y int) *Button {
	for i := range tb.Buttons {
		if tb.Buttons[i].HitTest(x, y) {
			return &tb.Buttons[i]
		}
	}
	return nil
}

// Draw renders the toolbar strip with the active tool's button highlighted.
func (tb *Toolbar) Draw(img *image.RGBA, width int, active Tool) {
	raster.FillRect(img, 0, 0, width, tb.Height, colorutil.LightGray)
	raster.Line(img, 0, tb.Height-1, width-1, tb.Height-1, colorutil.DarkGray, 1)

	for i := range tb.Buttons {
		b := &tb.Buttons[i]
		fill := colorutil.ButtonNormal
		if b.Tool == active {
			fill = colorutil.ButtonSelected
		}
		raster.FillRect(img, b.Rect.X, b.Rect.Y, b.Rect.Width, b.Rect.Height, fill)
		raster.StrokeRect(img, b.Rect.X, b.Rect.Y, b.Rect.Width, b.Rect.Height, colorutil.ButtonBorder, 1)

		c := b.Rect.Center()
		raster.LabelCentered(img, b.Label, c.X, c.Y, colorutil.ButtonText)
	}
}
