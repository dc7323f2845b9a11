package component

import (
	"image"

	"circuit-maker/internal/grid"
	"circuit-maker/pkg/colorutil"
	"circuit-maker/pkg/raster"
)

// Wire is a straight conductor spanning one cell.
type Wire struct {
	base
}

// NewWire creates a wire at the cell, facing East.
func NewWire(name string, cell grid.Cell) *Wire {
	return &Wire{base: base{name: name, cell: cell, orient: East}}
}

func (w *Wire) Type() Type { return TypeWire }

func (w *Wire) Terminals() []Side { return axisTerminals(w.orient) }

// Draw renders the wire as a line through the cell center, horizontal for
// East/West and vertical for North/South.
func (w *Wire) Draw(img *image.RGBA, px, py int, cellW, cellH float64) {
	half := int(minf(cellW, cellH) * 0.35)

	if w.orient == East || w.orient == West {
		raster.Line(img, px-half, py, px+half, py, colorutil.Red, 2)
	} else {
		raster.Line(img, px, py-half, px, py+half, colorutil.Red, 2)
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
