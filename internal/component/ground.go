package component

import (
	"image"
	"image/color"

	"circuit-maker/internal/grid"
	"circuit-maker/pkg/colorutil"
	"circuit-maker/pkg/raster"
)

// Ground is the single-terminal 0V reference. The symbol points in the
// orientation direction; the terminal is on the opposite cell edge.
type Ground struct {
	base
}

// NewGround creates a ground at the cell, facing South (symbol bars at the
// bottom, terminal on the North edge).
func NewGround(name string, cell grid.Cell) *Ground {
	return &Ground{base: base{name: name, cell: cell, orient: South}}
}

func (g *Ground) Type() Type { return TypeGround }

func (g *Ground) Terminals() []Side {
	return []Side{g.orient.facing().Opposite()}
}

// Draw renders the traditional ground symbol: a lead from the terminal edge
// to the center, then three parallel bars of decreasing width.
func (g *Ground) Draw(img *image.RGBA, px, py int, cellW, cellH float64) {
	size := minf(cellW, cellH) * 0.7
	half := int(size / 2)
	spacing := int(size / 8)
	col := colorutil.Blue

	switch g.orient {
	case South:
		raster.Line(img, px, py-half, px, py, col, 2)
		drawBars(img, px, py, half, spacing, false, 1, col)
	case North:
		raster.Line(img, px, py+half, px, py, col, 2)
		drawBars(img, px, py, half, spacing, false, -1, col)
	case East:
		raster.Line(img, px-half, py, px, py, col, 2)
		drawBars(img, px, py, half, spacing, true, 1, col)
	default: // West
		raster.Line(img, px+half, py, px, py, col, 2)
		drawBars(img, px, py, half, spacing, true, -1, col)
	}
}

// drawBars draws the three shortening ground bars. vertical selects bar
// direction; step is +1 or -1 along the symbol axis.
func drawBars(img *image.RGBA, px, py, half, spacing int, vertical bool, step int, col color.Color) {
	widths := []float64{1.0, 0.7, 0.4}
	for i, f := range widths {
		reach := int(float64(half) * f)
		offset := step * i * spacing
		if vertical {
			x := px + offset
			raster.Line(img, x, py-reach, x, py+reach, col, 2)
		} else {
			y := py + offset
			raster.Line(img, px-reach, y, px+reach, y, col, 2)
		}
	}
}
