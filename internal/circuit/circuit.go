// Package circuit provides the in-memory store of placed components.
package circuit

import (
	"fmt"

	"circuit-maker/internal/component"
	"circuit-maker/internal/grid"
)

// Circuit is an ordered collection of components keyed by grid cell.
// At most one component occupies a cell. The store does pure data mutation;
// occupancy policy (place vs. toggle-delete) belongs to the click handler.
//
// The store is confined to the UI event goroutine and is not synchronized.
type Circuit struct {
	order  []component.Component
	byCell map[grid.Cell]component.Component
	seq    map[component.Type]int
}

// New creates an empty circuit.
func New() *Circuit {
	return &Circuit{
		byCell: make(map[grid.Cell]component.Component),
		seq:    make(map[component.Type]int),
	}
}

// Add inserts the component. It is a no-op returning false if the target
// cell is already occupied.
func (c *Circuit) Add(comp component.Component) bool {
	cell := comp.Cell()
	if _, occupied := c.byCell[cell]; occupied {
		return false
	}
	c.byCell[cell] = comp
	c.order = append(c.order, comp)
	return true
}

// RemoveAt removes and returns the component occupying the cell, or nil if
// the cell is empty.
func (c *Circuit) RemoveAt(cell grid.Cell) component.Component {
	comp, ok := c.byCell[cell]
	if !ok {
		return nil
	}
	delete(c.byCell, cell)
	for i, cc := range c.order {
		if cc == comp {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return comp
}

// OccupantAt returns the component at the cell, or nil.
func (c *Circuit) OccupantAt(cell grid.Cell) component.Component {
	return c.byCell[cell]
}

// All returns the components in insertion order. The returned slice is a
// snapshot; later mutations do not affect it.
func (c *Circuit) All() []component.Component {
	out := make([]component.Component, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of placed components.
func (c *Circuit) Len() int {
	return len(c.order)
}

// NextName generates a unique name for a component of the given type,
// e.g. "W1", "R2", "V1", "GND1". Counters never reset, so names are unique
// for the lifetime of the store even after removals.
func (c *Circuit) NextName(t component.Type) string {
	c.seq[t]++
	return fmt.Sprintf("%s%d", t.NamePrefix(), c.seq[t])
}
