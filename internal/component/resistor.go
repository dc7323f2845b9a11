package component

import (
	"image"

	"circuit-maker/internal/grid"
	"circuit-maker/pkg/colorutil"
	"circuit-maker/pkg/raster"
)

// DefaultResistance is the resistance assigned to newly placed resistors.
const DefaultResistance = 100.0

// zigzagSegments is the number of segments in the resistor body.
const zigzagSegments = 6

// Resistor is a two-terminal resistor with a zigzag body.
type Resistor struct {
	base
	Resistance float64
}

// NewResistor creates a resistor at the cell, facing East, with the default
// resistance value.
func NewResistor(name string, cell grid.Cell) *Resistor {
	return &Resistor{
		base:       base{name: name, cell: cell, orient: East},
		Resistance: DefaultResistance,
	}
}

func (r *Resistor) Type() Type { return TypeResistor }

func (r *Resistor) Terminals() []Side { return axisTerminals(r.orient) }

// Draw renders terminal stubs and the zigzag body along the orientation axis.
// The zigzag phase flips for South/West so the symbol mirrors visually.
func (r *Resistor) Draw(img *image.RGBA, px, py int, cellW, cellH float64) {
	size := minf(cellW, cellH)
	half := int(size * 0.35)
	amp := size * 0.12
	termLen := int(size * 0.15)
	if termLen < 4 {
		termLen = 4
	}

	phase := 1.0
	if r.orient == South || r.orient == West {
		phase = -1
	}

	vertical := r.orient == North || r.orient == South

	pts := make([]image.Point, 0, zigzagSegments+1)
	for i := 0; i <= zigzagSegments; i++ {
		t := float64(i) / zigzagSegments
		sign := amp
		if i%2 != 0 {
			sign = -amp
		}
		along := float64(-half) + t*float64(2*half)
		if vertical {
			pts = append(pts, image.Pt(px+int(phase*sign), py+int(along)))
		} else {
			pts = append(pts, image.Pt(px+int(along), py+int(phase*sign)))
		}
	}

	if vertical {
		raster.Line(img, px, py-half-termLen, px, py-half, colorutil.Black, 2)
		raster.Line(img, px, py+half, px, py+half+termLen, colorutil.Black, 2)
	} else {
		raster.Line(img, px-half-termLen, py, px-half, py, colorutil.Black, 2)
		raster.Line(img, px+half, py, px+half+termLen, py, colorutil.Black, 2)
	}
	raster.Polyline(img, pts, colorutil.Black, 2)
}
