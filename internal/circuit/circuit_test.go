package circuit

import (
	"testing"

	"circuit-maker/internal/component"
	"circuit-maker/internal/grid"
)

func TestAddAndOccupantAt(t *testing.T) {
	c := New()
	cell := grid.Cell{Col: 3, Row: 2}

	w := component.NewWire("W1", cell)
	if !c.Add(w) {
		t.Fatal("expected Add to succeed on empty cell")
	}
	if got := c.OccupantAt(cell); got != w {
		t.Fatal("expected to find the added wire")
	}

	// Second add on the same cell is a silent no-op.
	r := component.NewResistor("R1", cell)
	if c.Add(r) {
		t.Fatal("expected Add to fail on occupied cell")
	}
	if got := c.OccupantAt(cell); got != w {
		t.Fatal("occupant should still be the original wire")
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 component, got %d", c.Len())
	}
}

func TestRemoveAt(t *testing.T) {
	c := New()
	cell := grid.Cell{Col: 1, Row: 1}

	if got := c.RemoveAt(cell); got != nil {
		t.Fatal("RemoveAt on empty cell should return nil")
	}

	w := component.NewWire("W1", cell)
	c.Add(w)
	if got := c.RemoveAt(cell); got != w {
		t.Fatal("RemoveAt should return the removed component")
	}
	if c.OccupantAt(cell) != nil || c.Len() != 0 {
		t.Fatal("cell should be empty after removal")
	}
}

func TestAllIsOrderedSnapshot(t *testing.T) {
	c := New()
	w := component.NewWire("W1", grid.Cell{Col: 0, Row: 0})
	r := component.NewResistor("R1", grid.Cell{Col: 1, Row: 0})
	g := component.NewGround("GND1", grid.Cell{Col: 2, Row: 0})
	c.Add(w)
	c.Add(r)
	c.Add(g)

	all := c.All()
	if len(all) != 3 || all[0] != w || all[1] != r || all[2] != g {
		t.Fatal("All should return components in insertion order")
	}

	// Mutations after the snapshot do not affect it.
	c.RemoveAt(grid.Cell{Col: 1, Row: 0})
	if len(all) != 3 {
		t.Fatal("snapshot should be unaffected by later removal")
	}
	if len(c.All()) != 2 {
		t.Fatal("store should have 2 components after removal")
	}
}

func TestAtMostOnePerCell(t *testing.T) {
	c := New()
	cells := []grid.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 0, Row: 0}, {Col: 1, Row: 0}}
	for i, cell := range cells {
		c.Add(component.NewWire(c.NextName(component.TypeWire), cell))
		_ = i
	}

	seen := make(map[grid.Cell]bool)
	for _, comp := range c.All() {
		if seen[comp.Cell()] {
			t.Fatalf("two components occupy cell %v", comp.Cell())
		}
		seen[comp.Cell()] = true
	}
}

func TestNextName(t *testing.T) {
	c := New()

	tests := []struct {
		typ  component.Type
		want string
	}{
		{component.TypeWire, "W1"},
		{component.TypeWire, "W2"},
		{component.TypeResistor, "R1"},
		{component.TypePower, "V1"},
		{component.TypeGround, "GND1"},
		{component.TypeResistor, "R2"},
	}
	for _, tt := range tests {
		if got := c.NextName(tt.typ); got != tt.want {
			t.Errorf("NextName(%v) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestNamesStayUniqueAfterRemoval(t *testing.T) {
	c := New()
	cell := grid.Cell{Col: 5, Row: 5}

	first := c.NextName(component.TypeResistor)
	c.Add(component.NewResistor(first, cell))
	c.RemoveAt(cell)

	second := c.NextName(component.TypeResistor)
	if first == second {
		t.Fatalf("name %q reused after removal", first)
	}
}
