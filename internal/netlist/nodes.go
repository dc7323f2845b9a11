// Package netlist derives electrical nodes from component placement and
// validates circuit connectivity.
package netlist

import (
	"circuit-maker/internal/component"
	"circuit-maker/internal/grid"
)

// edge canonically identifies one boundary between two adjacent cells.
// A horizontal edge separates (col,row) from (col+1,row); a vertical edge
// separates (col,row) from (col,row+1).
type edge struct {
	col, row   int
	horizontal bool
}

// edgeFor maps a terminal on one side of a cell to its canonical edge, so a
// terminal on the East side of (2,2) and one on the West side of (3,2)
// resolve to the same edge.
func edgeFor(c grid.Cell, s component.Side) edge {
	switch s {
	case component.SideEast:
		return edge{col: c.Col, row: c.Row, horizontal: true}
	case component.SideWest:
		return edge{col: c.Col - 1, row: c.Row, horizontal: true}
	case component.SideSouth:
		return edge{col: c.Col, row: c.Row, horizontal: false}
	default: // SideNorth
		return edge{col: c.Col, row: c.Row - 1, horizontal: false}
	}
}

// AssignNodes numbers every distinct cell edge touched by a terminal,
// starting from 1 in component insertion order, and stores the resulting
// node IDs on each component. Components in adjacent cells therefore share
// the node of the edge between them. Returns the number of distinct nodes.
//
// Assignment is rebuilt from scratch; call after every store mutation.
func AssignNodes(comps []component.Component) int {
	ids := make(map[edge]int)
	next := 1

	for _, comp := range comps {
		terminals := comp.Terminals()
		nodes := make([]int, len(terminals))
		for i, side := range terminals {
			e := edgeFor(comp.Cell(), side)
			id, ok := ids[e]
			if !ok {
				id = next
				ids[e] = id
				next++
			}
			nodes[i] = id
		}
		comp.SetNodes(nodes)
	}
	return next - 1
}
