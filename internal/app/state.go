// Package app provides application state, lifecycle events, and theming.
package app

import (
	"sync"

	"circuit-maker/internal/circuit"
	"circuit-maker/internal/component"
	"circuit-maker/internal/grid"
	"circuit-maker/internal/netlist"
)

// EventType identifies application events.
type EventType int

const (
	// EventComponentsChanged fires after any placement or removal. The data
	// payload is the insertion-ordered component snapshot.
	EventComponentsChanged EventType = iota

	// EventValidationChanged fires after the connectivity report is rebuilt.
	// The data payload is the *netlist.Report.
	EventValidationChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the circuit being edited, its grid,
// and the latest validation report. All editing happens on the UI event
// goroutine; the mutex guards listener registration and report reads.
type State struct {
	mu sync.RWMutex

	circuit *circuit.Circuit
	grid    *grid.Grid

	nodeCount int
	report    *netlist.Report

	listeners map[EventType][]EventListener
}

// NewState creates application state around an empty circuit.
func NewState(g *grid.Grid) *State {
	return &State{
		circuit:   circuit.New(),
		grid:      g,
		report:    &netlist.Report{Valid: true},
		listeners: make(map[EventType][]EventListener),
	}
}

// Circuit returns the component store.
func (s *State) Circuit() *circuit.Circuit {
	return s.circuit
}

// Grid returns the grid model.
func (s *State) Grid() *grid.Grid {
	return s.grid
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// ToggleComponent applies the placement rule for a grid click: if the cell is
// occupied, the occupant is removed regardless of the requested type;
// otherwise a new component of that type is placed. Returns true when a
// component was added, false when one was removed.
//
// Node assignment and connectivity validation are rebuilt afterwards.
func (s *State) ToggleComponent(cell grid.Cell, t component.Type) bool {
	added := false
	if s.circuit.OccupantAt(cell) != nil {
		s.circuit.RemoveAt(cell)
	} else {
		s.circuit.Add(component.New(t, s.circuit.NextName(t), cell))
		added = true
	}
	s.refresh()
	return added
}

// refresh reassigns nodes, revalidates, and notifies listeners.
func (s *State) refresh() {
	comps := s.circuit.All()

	nodeCount := netlist.AssignNodes(comps)
	report := netlist.Validate(comps)

	s.mu.Lock()
	s.nodeCount = nodeCount
	s.report = report
	s.mu.Unlock()

	s.Emit(EventComponentsChanged, comps)
	s.Emit(EventValidationChanged, report)
}

// Report returns the latest connectivity report.
func (s *State) Report() *netlist.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// NodeCount returns the number of distinct electrical nodes.
func (s *State) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nodeCount
}
