package netlist

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"circuit-maker/internal/component"
)

// Network is one electrically connected group of nodes.
type Network struct {
	Nodes      []int    // Sorted node IDs in this network
	Components []string // Names of components touching these nodes
}

// Report holds the result of connectivity validation.
type Report struct {
	// Valid is false when the circuit splits into multiple isolated networks.
	Valid    bool
	Networks []Network
	Warnings []string
}

// Validate checks circuit connectivity. It builds an undirected graph over
// the assigned node IDs, with an edge per multi-terminal component, and finds
// its connected components. More than one network means floating nodes.
//
// This is graph validation only; no voltages or currents are computed.
func Validate(comps []component.Component) *Report {
	r := &Report{Valid: true}
	if len(comps) == 0 {
		return r
	}

	g := simple.NewUndirectedGraph()
	ensure := func(id int) {
		if g.Node(int64(id)) == nil {
			g.AddNode(simple.Node(id))
		}
	}

	for _, comp := range comps {
		nodes := comp.Nodes()
		for _, n := range nodes {
			ensure(n)
		}
		if len(nodes) >= 2 && nodes[0] != nodes[1] {
			g.SetEdge(g.NewEdge(simple.Node(nodes[0]), simple.Node(nodes[1])))
		}
	}

	for _, cc := range topo.ConnectedComponents(g) {
		ids := make([]int, len(cc))
		for i, n := range cc {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		r.Networks = append(r.Networks, Network{
			Nodes:      ids,
			Components: componentsTouching(comps, ids),
		})
	}
	sort.Slice(r.Networks, func(i, j int) bool {
		return r.Networks[i].Nodes[0] < r.Networks[j].Nodes[0]
	})

	r.Valid = len(r.Networks) <= 1
	r.Warnings = checkWarnings(comps)
	return r
}

// componentsTouching returns names of components with a node in ids.
func componentsTouching(comps []component.Component, ids []int) []string {
	member := make(map[int]bool, len(ids))
	for _, id := range ids {
		member[id] = true
	}
	var names []string
	for _, comp := range comps {
		for _, n := range comp.Nodes() {
			if member[n] {
				names = append(names, comp.Name())
				break
			}
		}
	}
	return names
}

// checkWarnings reports circuit-level advisory issues: a voltage source with
// no ground reference, and a voltage source with no load resistor.
func checkWarnings(comps []component.Component) []string {
	var hasPower, hasGround, hasResistor bool
	for _, comp := range comps {
		switch comp.Type() {
		case component.TypePower:
			hasPower = true
		case component.TypeGround:
			hasGround = true
		case component.TypeResistor:
			hasResistor = true
		}
	}

	var warnings []string
	if hasPower && !hasGround {
		warnings = append(warnings,
			"circuit has a voltage source but no ground reference; add a ground component")
	}
	if hasPower && !hasResistor {
		warnings = append(warnings,
			"circuit has a voltage source but no load resistor; add a resistor to complete the current path")
	}
	return warnings
}

// String formats the report for display.
func (r *Report) String() string {
	var b strings.Builder

	if len(r.Networks) == 0 {
		b.WriteString("Empty circuit.\n")
		return b.String()
	}

	if r.Valid {
		b.WriteString("Connectivity OK: single network.\n")
	} else {
		fmt.Fprintf(&b, "Floating nodes: %d isolated networks detected.\n", len(r.Networks))
	}

	for i, net := range r.Networks {
		fmt.Fprintf(&b, "  Network %d: nodes %v (%s)\n",
			i+1, net.Nodes, strings.Join(net.Components, ", "))
	}

	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}
	return b.String()
}
