package editor

import (
	"testing"

	"circuit-maker/internal/app"
	"circuit-maker/internal/component"
	"circuit-maker/internal/grid"
)

func newTestRouter() *router {
	g := grid.New(40, 20, 14)
	return &router{
		toolbar: NewToolbar(),
		state:   app.NewState(g),
	}
}

// Button centers for the standard toolbar layout: Wire starts at x=10,
// buttons are 110 wide with 5px spacing, all 32 tall starting at y=10.
const (
	wireButtonX     = 65
	resistorButtonX = 180
	groundButtonX   = 295
	powerButtonX    = 410
	buttonY         = 26
)

// gridClick returns editor pixel coordinates for the center of a cell.
func gridClick(g *grid.Grid, cell grid.Cell) (int, int) {
	x, y := g.CellCenter(cell)
	return x, y + ToolbarHeight
}

func TestToolbarClickActivatesTool(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Tool
	}{
		{"Wire", wireButtonX, buttonY, ToolWire},
		{"Resistor", resistorButtonX, buttonY, ToolResistor},
		{"Ground", groundButtonX, buttonY, ToolGround},
		{"Power", powerButtonX, buttonY, ToolPower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()
			r.click(tt.x, tt.y)
			if r.activeTool() != tt.want {
				t.Errorf("active tool = %v, want %v", r.activeTool(), tt.want)
			}
		})
	}
}

func TestToolbarClickNeverMutatesCircuit(t *testing.T) {
	r := newTestRouter()
	r.click(wireButtonX, buttonY)
	// Clicking another button while a tool is active switches tools without
	// placing anything, even though the pixel maps to a grid cell number.
	r.click(resistorButtonX, buttonY)

	if r.state.Circuit().Len() != 0 {
		t.Fatalf("toolbar clicks placed %d components", r.state.Circuit().Len())
	}
	if r.activeTool() != ToolResistor {
		t.Errorf("active tool = %v, want %v", r.activeTool(), ToolResistor)
	}
}

func TestToolbarStripMissIsIgnored(t *testing.T) {
	r := newTestRouter()
	r.click(wireButtonX, buttonY)

	// Right of the last button but still inside the strip.
	r.click(900, buttonY)

	if r.state.Circuit().Len() != 0 {
		t.Fatal("strip click outside buttons should not place a component")
	}
	if r.activeTool() != ToolWire {
		t.Errorf("active tool = %v, want %v", r.activeTool(), ToolWire)
	}
}

func TestGridClickWithoutToolIsIgnored(t *testing.T) {
	r := newTestRouter()
	x, y := gridClick(r.state.Grid(), grid.Cell{Col: 3, Row: 2})
	r.click(x, y)

	if r.state.Circuit().Len() != 0 {
		t.Fatal("click with no active tool should not place a component")
	}
}

func TestGridClickTogglesCell(t *testing.T) {
	r := newTestRouter()
	cell := grid.Cell{Col: 3, Row: 2}
	x, y := gridClick(r.state.Grid(), cell)

	r.click(wireButtonX, buttonY)
	r.click(x, y)
	occ := r.state.Circuit().OccupantAt(cell)
	if occ == nil || occ.Type() != component.TypeWire {
		t.Fatalf("expected a wire at %v, got %v", cell, occ)
	}

	// Second click on the same cell removes it.
	r.click(x, y)
	if r.state.Circuit().OccupantAt(cell) != nil {
		t.Fatal("second click should remove the occupant")
	}
}

func TestDeleteIgnoresActiveToolType(t *testing.T) {
	r := newTestRouter()
	cell := grid.Cell{Col: 5, Row: 4}
	x, y := gridClick(r.state.Grid(), cell)

	r.click(wireButtonX, buttonY)
	r.click(x, y)

	// Switch tools, then click the occupied cell. The wire is removed, not
	// replaced by a resistor.
	r.click(resistorButtonX, buttonY)
	r.click(x, y)

	if r.state.Circuit().OccupantAt(cell) != nil {
		t.Fatal("occupied cell should be cleared regardless of the active tool")
	}
	if r.state.Circuit().Len() != 0 {
		t.Fatalf("expected empty circuit, got %d components", r.state.Circuit().Len())
	}
}

func TestReactivatingToolSkipsCallback(t *testing.T) {
	r := newTestRouter()
	calls := 0
	r.onToolChange = func(Tool) { calls++ }

	r.click(wireButtonX, buttonY)
	r.click(wireButtonX, buttonY)

	if calls != 1 {
		t.Errorf("onToolChange fired %d times, want 1", calls)
	}
	if r.activeTool() != ToolWire {
		t.Errorf("active tool = %v, want %v", r.activeTool(), ToolWire)
	}
}

func TestClickSequence(t *testing.T) {
	// A short editing session: select Wire, place two wires, select
	// Resistor, place one, then delete the first wire by clicking it again.
	r := newTestRouter()
	g := r.state.Grid()

	a := grid.Cell{Col: 2, Row: 2}
	b := grid.Cell{Col: 3, Row: 2}
	c := grid.Cell{Col: 4, Row: 2}

	r.click(wireButtonX, buttonY)
	ax, ay := gridClick(g, a)
	r.click(ax, ay)
	bx, by := gridClick(g, b)
	r.click(bx, by)

	r.click(resistorButtonX, buttonY)
	cx, cy := gridClick(g, c)
	r.click(cx, cy)

	r.click(ax, ay)

	store := r.state.Circuit()
	if store.Len() != 2 {
		t.Fatalf("expected 2 components, got %d", store.Len())
	}
	if store.OccupantAt(a) != nil {
		t.Error("cell a should be empty after toggle-delete")
	}
	if occ := store.OccupantAt(b); occ == nil || occ.Type() != component.TypeWire || occ.Name() != "W2" {
		t.Errorf("cell b: got %v", occ)
	}
	if occ := store.OccupantAt(c); occ == nil || occ.Type() != component.TypeResistor || occ.Name() != "R1" {
		t.Errorf("cell c: got %v", occ)
	}
}

func TestClearTool(t *testing.T) {
	r := newTestRouter()
	r.click(wireButtonX, buttonY)
	r.setTool(ToolNone)

	x, y := gridClick(r.state.Grid(), grid.Cell{Col: 1, Row: 1})
	r.click(x, y)

	if r.state.Circuit().Len() != 0 {
		t.Fatal("cleared tool should not place components")
	}
}
