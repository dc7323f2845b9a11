// Package component provides the placeable circuit component variants and
// their drawing behavior.
package component

import (
	"image"

	"circuit-maker/internal/grid"
)

// Type identifies a component variant.
type Type int

const (
	TypeWire Type = iota
	TypeResistor
	TypeGround
	TypePower
)

func (t Type) String() string {
	switch t {
	case TypeWire:
		return "Wire"
	case TypeResistor:
		return "Resistor"
	case TypeGround:
		return "Ground"
	case TypePower:
		return "PowerSupply"
	default:
		return "Unknown"
	}
}

// NamePrefix returns the prefix used when generating unique component names.
func (t Type) NamePrefix() string {
	switch t {
	case TypeWire:
		return "W"
	case TypeResistor:
		return "R"
	case TypeGround:
		return "GND"
	case TypePower:
		return "V"
	default:
		return "X"
	}
}

// Orientation is the direction a component faces on the grid.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

func (o Orientation) String() string {
	switch o {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Side identifies one edge of a grid cell. Component terminals sit on cell
// edges, so two components in adjacent cells meet at the same edge.
type Side int

const (
	SideNorth Side = iota
	SideEast
	SideSouth
	SideWest
)

// Opposite returns the facing side.
func (s Side) Opposite() Side {
	switch s {
	case SideNorth:
		return SideSouth
	case SideEast:
		return SideWest
	case SideSouth:
		return SideNorth
	default:
		return SideEast
	}
}

// facing returns the cell side the orientation points at.
func (o Orientation) facing() Side {
	switch o {
	case North:
		return SideNorth
	case East:
		return SideEast
	case South:
		return SideSouth
	default:
		return SideWest
	}
}

// Component is a placed circuit element occupying exactly one cell.
//
// Terminals returns the cell edges the component connects to, in node order.
// Nodes holds the electrical node IDs assigned to those terminals by the
// netlist assigner; it is display/bookkeeping state, not user-edited.
type Component interface {
	Type() Type
	Name() string
	Cell() grid.Cell
	Orientation() Orientation
	SetOrientation(o Orientation)
	Terminals() []Side
	Nodes() []int
	SetNodes(nodes []int)

	// Draw renders the component centered on pixel (px, py). cellW and cellH
	// give the pixel size of one grid cell so the symbol sizes itself.
	Draw(img *image.RGBA, px, py int, cellW, cellH float64)
}

// New creates a component of the given type at the cell with default
// orientation and visual parameters.
func New(t Type, name string, cell grid.Cell) Component {
	switch t {
	case TypeWire:
		return NewWire(name, cell)
	case TypeResistor:
		return NewResistor(name, cell)
	case TypeGround:
		return NewGround(name, cell)
	case TypePower:
		return NewPowerSupply(name, cell)
	default:
		return nil
	}
}

// base carries the state shared by all component variants.
type base struct {
	name   string
	cell   grid.Cell
	orient Orientation
	nodes  []int
}

func (b *base) Name() string                 { return b.name }
func (b *base) Cell() grid.Cell              { return b.cell }
func (b *base) Orientation() Orientation     { return b.orient }
func (b *base) SetOrientation(o Orientation) { b.orient = o }
func (b *base) Nodes() []int                 { return b.nodes }
func (b *base) SetNodes(nodes []int)         { b.nodes = nodes }

// axisTerminals returns the two cell edges of a two-terminal component laid
// along its orientation axis: first the trailing edge, then the edge the
// orientation points at.
func axisTerminals(o Orientation) []Side {
	f := o.facing()
	return []Side{f.Opposite(), f}
}
