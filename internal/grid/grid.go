// Package grid provides the grid model: a fixed cell size and the mapping
// between pixel coordinates and grid cells.
package grid

// Cell identifies one grid-aligned slot by integer column and row.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Grid converts between pixel coordinates and cells. Cell (0,0) has its
// top-left corner at pixel (0,0); callers that draw the grid below other UI
// (e.g. a toolbar strip) subtract that offset before converting.
type Grid struct {
	CellSize int
	Cols     int
	Rows     int
}

// New creates a grid with the given cell size in pixels and nominal extent.
func New(cellSize, cols, rows int) *Grid {
	return &Grid{CellSize: cellSize, Cols: cols, Rows: rows}
}

// PixelToCell maps a pixel coordinate to the enclosing cell. Every pixel maps
// to exactly one cell, including pixels outside the nominal extent; bounds
// filtering is the caller's responsibility.
func (g *Grid) PixelToCell(x, y int) Cell {
	return Cell{
		Col: floorDiv(x, g.CellSize),
		Row: floorDiv(y, g.CellSize),
	}
}

// CellOrigin returns the top-left pixel of the cell, the canonical origin
// produced by inverting PixelToCell.
func (g *Grid) CellOrigin(c Cell) (x, y int) {
	return c.Col * g.CellSize, c.Row * g.CellSize
}

// CellCenter returns the center pixel of the cell, where components draw.
func (g *Grid) CellCenter(c Cell) (x, y int) {
	return c.Col*g.CellSize + g.CellSize/2, c.Row*g.CellSize + g.CellSize/2
}

// Contains reports whether the cell lies within the nominal extent.
func (g *Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// PixelSize returns the pixel dimensions of the nominal extent.
func (g *Grid) PixelSize() (w, h int) {
	return g.Cols * g.CellSize, g.Rows * g.CellSize
}

// floorDiv divides rounding toward negative infinity, so pixels left of or
// above the origin still bucket consistently into one cell.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
