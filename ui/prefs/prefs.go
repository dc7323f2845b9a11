// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const prefsFile = "preferences.json"

// Prefs stores application preferences. Only UI settings are persisted;
// the circuit itself never is.
type Prefs struct {
	WindowWidth  int  `json:"window_width"`
	WindowHeight int  `json:"window_height"`
	CellSize     int  `json:"cell_size"`
	GridCols     int  `json:"grid_cols"`
	GridRows     int  `json:"grid_rows"`
	ShowGrid     bool `json:"show_grid"`

	path string
}

// defaults returns a Prefs with default values.
func defaults() *Prefs {
	return &Prefs{
		WindowWidth:  1100,
		WindowHeight: 640,
		CellSize:     40,
		GridCols:     20,
		GridRows:     14,
		ShowGrid:     true,
	}
}

// Load reads preferences from ~/.config/circuit-maker/preferences.json.
// Returns defaults if the file doesn't exist or can't be parsed.
func Load() *Prefs {
	p := defaults()

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	dir := filepath.Join(configDir, "circuit-maker")
	p.path = filepath.Join(dir, prefsFile)

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, p); err != nil {
		d := defaults()
		d.path = p.path
		return d
	}
	p.sanitize()
	return p
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// sanitize clamps loaded values to usable ranges.
func (p *Prefs) sanitize() {
	d := defaults()
	if p.WindowWidth < 400 {
		p.WindowWidth = d.WindowWidth
	}
	if p.WindowHeight < 300 {
		p.WindowHeight = d.WindowHeight
	}
	if p.CellSize < 16 || p.CellSize > 200 {
		p.CellSize = d.CellSize
	}
	if p.GridCols < 1 {
		p.GridCols = d.GridCols
	}
	if p.GridRows < 1 {
		p.GridRows = d.GridRows
	}
}
