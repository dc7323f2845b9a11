// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"circuit-maker/internal/app"
	"circuit-maker/internal/version"
	"circuit-maker/ui/editor"
	"circuit-maker/ui/panels"
	"circuit-maker/ui/prefs"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	editor    *editor.Editor
	sidePanel *panels.CircuitPanel
	statusBar *widget.Label

	showGridItem *fyne.MenuItem
}

// New creates the main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Circuit Maker")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupKeys()
	mw.setupEventHandlers()

	win.Resize(fyne.NewSize(float32(p.WindowWidth), float32(p.WindowHeight)))
	win.SetCloseIntercept(func() {
		mw.SavePreferences()
		win.Close()
	})

	return mw
}

// setupUI creates the main layout: side panel | canvas, status bar below.
func (mw *MainWindow) setupUI() {
	mw.editor = editor.New(mw.state)
	mw.editor.SetShowGrid(mw.prefs.ShowGrid)

	mw.sidePanel = panels.NewCircuitPanel(mw.state)
	mw.statusBar = widget.NewLabel("")
	mw.updateStatus()

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		container.NewScroll(mw.editor),
	)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil,
		nil,
		split,
	)
	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	mw.showGridItem = fyne.NewMenuItem("Show Grid", mw.onToggleGrid)
	mw.showGridItem.Checked = mw.prefs.ShowGrid
	viewMenu := fyne.NewMenu("View", mw.showGridItem)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupKeys binds Escape to clearing the active tool.
func (mw *MainWindow) setupKeys() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			mw.editor.ClearTool()
			mw.updateStatus()
		}
	})
}

// setupEventHandlers wires state and editor events to the status bar.
func (mw *MainWindow) setupEventHandlers() {
	mw.editor.OnToolChange(func(editor.Tool) {
		mw.updateStatus()
	})
	mw.state.On(app.EventComponentsChanged, func(interface{}) {
		mw.updateStatus()
	})
}

// updateStatus refreshes the status bar text.
func (mw *MainWindow) updateStatus() {
	mw.statusBar.SetText(fmt.Sprintf("Tool: %s    |    %d components, %d nodes",
		mw.editor.ActiveTool(), mw.state.Circuit().Len(), mw.state.NodeCount()))
}

// onToggleGrid flips grid line rendering and remembers the choice.
func (mw *MainWindow) onToggleGrid() {
	mw.prefs.ShowGrid = !mw.prefs.ShowGrid
	mw.showGridItem.Checked = mw.prefs.ShowGrid
	mw.editor.SetShowGrid(mw.prefs.ShowGrid)
	mw.MainMenu().Refresh()
}

// onAbout shows a short about message in the status bar.
func (mw *MainWindow) onAbout() {
	mw.statusBar.SetText(fmt.Sprintf("Circuit Maker v%s", version.Version))
}

// SavePreferences persists window geometry and view settings.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		mw.prefs.WindowWidth = int(size.Width)
		mw.prefs.WindowHeight = int(size.Height)
	}
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}
