package grid

import "testing"

func TestPixelToCell(t *testing.T) {
	g := New(40, 20, 14)

	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"Origin", 0, 0, Cell{0, 0}},
		{"Inside first cell", 39, 39, Cell{0, 0}},
		{"Cell boundary", 40, 0, Cell{1, 0}},
		{"Mid grid", 140, 95, Cell{3, 2}},
		{"Negative pixels", -1, -1, Cell{-1, -1}},
		{"Far negative", -41, -80, Cell{-2, -2}},
		{"Outside nominal bounds", 2000, 1000, Cell{50, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.PixelToCell(tt.x, tt.y); got != tt.want {
				t.Errorf("PixelToCell(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBucketingIsIdempotent(t *testing.T) {
	g := New(40, 20, 14)

	// Every pixel inside a cell's bounds must map to that cell, and the
	// cell's origin must map back to the same cell.
	pixels := [][2]int{{0, 0}, {7, 33}, {39, 39}, {41, 82}, {-3, -3}, {-40, 19}, {555, 123}}
	for _, p := range pixels {
		cell := g.PixelToCell(p[0], p[1])
		ox, oy := g.CellOrigin(cell)

		if got := g.PixelToCell(ox, oy); got != cell {
			t.Errorf("origin (%d,%d) of cell %v maps to %v", ox, oy, cell, got)
		}
		if p[0] < ox || p[0] >= ox+g.CellSize || p[1] < oy || p[1] >= oy+g.CellSize {
			t.Errorf("pixel (%d,%d) outside bounds of its cell %v (origin %d,%d)",
				p[0], p[1], cell, ox, oy)
		}

		// All four corners of the cell interior bucket identically.
		for _, q := range [][2]int{{ox, oy}, {ox + g.CellSize - 1, oy}, {ox, oy + g.CellSize - 1}, {ox + g.CellSize - 1, oy + g.CellSize - 1}} {
			if got := g.PixelToCell(q[0], q[1]); got != cell {
				t.Errorf("corner (%d,%d) of cell %v maps to %v", q[0], q[1], cell, got)
			}
		}
	}
}

func TestCellCenter(t *testing.T) {
	g := New(40, 20, 14)

	x, y := g.CellCenter(Cell{0, 0})
	if x != 20 || y != 20 {
		t.Errorf("CellCenter(0,0) = (%d,%d), want (20,20)", x, y)
	}
	x, y = g.CellCenter(Cell{3, 2})
	if x != 140 || y != 100 {
		t.Errorf("CellCenter(3,2) = (%d,%d), want (140,100)", x, y)
	}
}

func TestContains(t *testing.T) {
	g := New(40, 20, 14)

	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{19, 13}, true},
		{Cell{20, 0}, false},
		{Cell{0, 14}, false},
		{Cell{-1, 0}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.cell); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestPixelSize(t *testing.T) {
	g := New(40, 20, 14)
	w, h := g.PixelSize()
	if w != 800 || h != 560 {
		t.Errorf("PixelSize() = (%d,%d), want (800,560)", w, h)
	}
}
