// Package panels provides the side panel widgets of the main window.
package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"circuit-maker/internal/app"
	"circuit-maker/internal/component"
	"circuit-maker/internal/netlist"
)

// CircuitPanel shows the placed components and the connectivity report.
// It is read-only; all editing happens on the canvas.
type CircuitPanel struct {
	state *app.State

	components []component.Component
	list       *widget.List
	report     *widget.Label

	content fyne.CanvasObject
}

// NewCircuitPanel creates the panel and subscribes it to state events.
func NewCircuitPanel(state *app.State) *CircuitPanel {
	p := &CircuitPanel{state: state}

	p.list = widget.NewList(
		func() int {
			return len(p.components)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(p.components) {
				return
			}
			c := p.components[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s  %s  (%d,%d)  nodes %v",
				c.Name(), c.Type(), c.Cell().Col, c.Cell().Row, c.Nodes()))
		},
	)

	p.report = widget.NewLabel("Empty circuit.")
	p.report.Wrapping = fyne.TextWrapWord

	reportBox := container.NewVBox(
		widget.NewLabelWithStyle("Connectivity", fyne.TextAlignLeading,
			fyne.TextStyle{Bold: true}),
		p.report,
	)

	split := container.NewVSplit(
		container.NewBorder(
			widget.NewLabelWithStyle("Components", fyne.TextAlignLeading,
				fyne.TextStyle{Bold: true}),
			nil, nil, nil,
			p.list,
		),
		container.NewVScroll(reportBox),
	)
	split.SetOffset(0.6)
	p.content = split

	state.On(app.EventComponentsChanged, func(data interface{}) {
		if comps, ok := data.([]component.Component); ok {
			p.components = comps
		}
		p.list.Refresh()
	})
	state.On(app.EventValidationChanged, func(data interface{}) {
		if report, ok := data.(*netlist.Report); ok {
			p.report.SetText(report.String())
		}
	})

	return p
}

// Container returns the panel's root object for embedding in layouts.
func (p *CircuitPanel) Container() fyne.CanvasObject {
	return p.content
}
