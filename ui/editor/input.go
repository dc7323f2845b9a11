package editor

import (
	"circuit-maker/internal/app"
)

// router dispatches pointer clicks. This is the whole placement state
// machine: the active tool plus the toolbar-first click rules. It has no
// rendering dependencies so the dispatch rules are testable headlessly.
type router struct {
	toolbar *Toolbar
	state   *app.State

	active       Tool
	onToolChange func(Tool)
}

// click handles one pointer click at editor pixel (x, y):
//
//  1. Toolbar buttons are hit-tested in order; the first match activates its
//     tool and consumes the click. Button clicks never touch the store.
//  2. Clicks inside the toolbar strip that miss every button are ignored.
//  3. With no active tool, grid clicks are ignored.
//  4. Otherwise the click resolves to a cell and toggles it: an occupant is
//     removed (regardless of the active tool), an empty cell gets a new
//     component of the active tool's type.
func (r *router) click(x, y int) {
	if b := r.toolbar.HitTest(x, y); b != nil {
		r.setTool(b.Tool)
		return
	}
	if y < r.toolbar.Height {
		return
	}
	if r.active == ToolNone {
		return
	}

	cell := r.state.Grid().PixelToCell(x, y-r.toolbar.Height)
	r.state.ToggleComponent(cell, r.active.ComponentType())
}

// setTool activates a tool. Re-activating the current tool is a no-op.
func (r *router) setTool(t Tool) {
	if r.active == t {
		return
	}
	r.active = t
	if r.onToolChange != nil {
		r.onToolChange(t)
	}
}

// activeTool returns the currently active tool.
func (r *router) activeTool() Tool {
	return r.active
}
