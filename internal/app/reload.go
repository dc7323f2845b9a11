package app

import (
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// Reloader polls the running binary's modification time and fires a callback
// once a rebuilt binary appears on disk. Development convenience: edit, go
// build, and the running editor offers to restart itself.
type Reloader struct {
	execPath string
	baseline time.Time
	interval time.Duration
	stop     chan struct{}
	onUpdate func()
}

// NewReloader watches the current executable. Returns nil when the executable
// path cannot be resolved, which callers treat as "hot reload unavailable".
func NewReloader(interval time.Duration) *Reloader {
	path, err := os.Executable()
	if err != nil {
		return nil
	}
	// go build writes a new file behind the symlink, so resolve it first.
	if real, err := filepath.EvalSymlinks(path); err == nil {
		path = real
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return &Reloader{
		execPath: path,
		baseline: info.ModTime(),
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// OnUpdate sets the callback fired when a newer binary is detected. It runs
// on a background goroutine.
func (r *Reloader) OnUpdate(fn func()) {
	r.onUpdate = fn
}

// Start begins polling in a background goroutine.
func (r *Reloader) Start() {
	r.stop = make(chan struct{})
	go r.loop()
}

// Stop halts polling.
func (r *Reloader) Stop() {
	close(r.stop)
}

func (r *Reloader) loop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			if r.updated() {
				if r.onUpdate != nil {
					r.onUpdate()
				}
				return
			}
		}
	}
}

func (r *Reloader) updated() bool {
	info, err := os.Stat(r.execPath)
	if err != nil {
		return false
	}
	return info.ModTime().After(r.baseline)
}

// ExecPath returns the path of the watched binary.
func (r *Reloader) ExecPath() string {
	return r.execPath
}

// ResetBaseline accepts the current binary as the baseline. Called when the
// user declines a restart so they are not prompted again for the same build.
func (r *Reloader) ResetBaseline() {
	if info, err := os.Stat(r.execPath); err == nil {
		r.baseline = info.ModTime()
	}
}

// Restart replaces the current process with a fresh instance of the binary,
// preserving arguments and environment. Does not return on success.
func (r *Reloader) Restart() error {
	return syscall.Exec(r.execPath, os.Args, os.Environ())
}
