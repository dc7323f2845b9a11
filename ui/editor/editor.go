// Package editor provides the schematic canvas widget: the grid, the placed
// components, and the tool selection toolbar, redrawn as one raster.
package editor

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"circuit-maker/internal/app"
	"circuit-maker/pkg/colorutil"
	"circuit-maker/pkg/raster"
)

// Editor is the schematic editing widget. Clicks route through the embedded
// router; every refresh redraws the full scene into the raster.
type Editor struct {
	widget.BaseWidget
	router

	raster   *fynecanvas.Raster
	showGrid bool
}

// New creates an editor over the given application state.
func New(state *app.State) *Editor {
	e := &Editor{
		router: router{
			toolbar: NewToolbar(),
			state:   state,
			active:  ToolNone,
		},
		showGrid: true,
	}

	e.raster = fynecanvas.NewRaster(e.draw)
	e.raster.ScaleMode = fynecanvas.ImageScalePixels

	w, h := state.Grid().PixelSize()
	e.raster.SetMinSize(fyne.NewSize(float32(w), float32(h+e.toolbar.Height)))

	e.ExtendBaseWidget(e)

	state.On(app.EventComponentsChanged, func(interface{}) {
		e.Refresh()
	})

	return e
}

// Tapped handles a left click on the canvas.
func (e *Editor) Tapped(ev *fyne.PointEvent) {
	e.click(int(ev.Position.X), int(ev.Position.Y))
	e.Refresh()
}

// ActiveTool returns the currently active tool.
func (e *Editor) ActiveTool() Tool {
	return e.activeTool()
}

// SetActiveTool activates a tool programmatically.
func (e *Editor) SetActiveTool(t Tool) {
	e.setTool(t)
	e.Refresh()
}

// ClearTool deactivates the current tool (bound to the Escape key).
func (e *Editor) ClearTool() {
	e.SetActiveTool(ToolNone)
}

// OnToolChange sets a callback invoked when the active tool changes.
func (e *Editor) OnToolChange(callback func(Tool)) {
	e.onToolChange = callback
}

// SetShowGrid toggles grid line rendering.
func (e *Editor) SetShowGrid(show bool) {
	e.showGrid = show
	e.Refresh()
}

// Refresh redraws the canvas.
func (e *Editor) Refresh() {
	e.raster.Refresh()
	e.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (e *Editor) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(e.raster)
}

// draw renders one frame: background, grid lines, every stored component in
// insertion order, then the toolbar with the active button highlighted.
func (e *Editor) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	raster.FillRect(img, 0, 0, w, h, colorutil.White)

	g := e.state.Grid()
	top := e.toolbar.Height

	if e.showGrid {
		for x := 0; x <= w; x += g.CellSize {
			raster.Line(img, x, top, x, h-1, colorutil.LightGray, 1)
		}
		for y := top; y <= h; y += g.CellSize {
			raster.Line(img, 0, y, w-1, y, colorutil.LightGray, 1)
		}
	}

	cellW := float64(g.CellSize)
	for _, comp := range e.state.Circuit().All() {
		px, py := g.CellCenter(comp.Cell())
		py += top
		comp.Draw(img, px, py, cellW, cellW)

		ox, oy := g.CellOrigin(comp.Cell())
		raster.Label(img, comp.Name(), ox+3, oy+top+11, colorutil.DarkGray)
	}

	e.toolbar.Draw(img, w, e.activeTool())
	return img
}
