// Package main provides the entry point for the Circuit Maker application.
package main

import (
	"log"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"circuit-maker/internal/app"
	"circuit-maker/internal/grid"
	"circuit-maker/internal/version"
	"circuit-maker/ui/mainwindow"
	"circuit-maker/ui/prefs"
)

const appTitle = "Circuit Maker"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	a := fyneapp.NewWithID("io.circuit-maker")
	a.Settings().SetTheme(&app.CircuitMakerTheme{})

	p := prefs.Load()
	g := grid.New(p.CellSize, p.GridCols, p.GridRows)
	state := app.NewState(g)

	win := mainwindow.New(a, state, p)
	win.SetTitle(appTitle)

	setupHotReload(win)

	win.ShowAndRun()
}

// setupHotReload offers a restart when the binary is rebuilt under the
// running application.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}
	log.Printf("Hot reload: watching %s", reloader.ExecPath())

	reloader.OnUpdate(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					reloader.Start()
					return
				}
				win.SavePreferences()
				log.Println("Hot reload: restarting...")
				if err := reloader.Restart(); err != nil {
					log.Printf("Hot reload: restart failed: %v", err)
				}
			}, win)
	})
	reloader.Start()
}
