package component

import (
	"image"

	"circuit-maker/internal/grid"
	"circuit-maker/pkg/colorutil"
	"circuit-maker/pkg/raster"
)

// DefaultVoltage is the voltage assigned to newly placed power supplies.
const DefaultVoltage = 5.0

// PowerSupply is a two-terminal voltage source. The positive terminal is on
// the edge the orientation points at, the negative on the opposite edge.
type PowerSupply struct {
	base
	Voltage float64
}

// NewPowerSupply creates a power supply at the cell, facing East, with the
// default voltage.
func NewPowerSupply(name string, cell grid.Cell) *PowerSupply {
	return &PowerSupply{
		base:    base{name: name, cell: cell, orient: East},
		Voltage: DefaultVoltage,
	}
}

func (p *PowerSupply) Type() Type { return TypePower }

// Terminals lists the positive terminal first.
func (p *PowerSupply) Terminals() []Side {
	f := p.orient.facing()
	return []Side{f, f.Opposite()}
}

// Draw renders a circle with + and - polarity marks.
func (p *PowerSupply) Draw(img *image.RGBA, px, py int, cellW, cellH float64) {
	radius := int(minf(cellW, cellH) * 0.35)
	col := colorutil.Red

	raster.Circle(img, px, py, radius, col, 2)

	offset := radius / 2
	switch p.orient {
	case East:
		raster.LabelCentered(img, "+", px+offset, py, col)
		raster.LabelCentered(img, "-", px-offset, py, col)
	case West:
		raster.LabelCentered(img, "+", px-offset, py, col)
		raster.LabelCentered(img, "-", px+offset, py, col)
	case North:
		raster.LabelCentered(img, "+", px, py-offset, col)
		raster.LabelCentered(img, "-", px, py+offset, col)
	default: // South
		raster.LabelCentered(img, "+", px, py+offset, col)
		raster.LabelCentered(img, "-", px, py-offset, col)
	}
}
