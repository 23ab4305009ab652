// ABOUTME: Polling-based file watcher for config hot-reload
// ABOUTME: Run blocks until its context is cancelled so it can sit in an errgroup

package config

import (
	"context"
	"os"
	"sync"
	"time"
)

// DefaultWatchInterval is the polling interval when none is set.
const DefaultWatchInterval = time.Second

// Watcher monitors files for changes by polling mtime at regular intervals.
type Watcher struct {
	paths    []string
	onChange func()
	interval time.Duration
	mu       sync.Mutex
	mtimes   map[string]time.Time
}

// NewWatcher creates a watcher that calls onChange when any monitored file
// is created, modified or removed.
func NewWatcher(paths []string, onChange func()) *Watcher {
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		interval: DefaultWatchInterval,
		mtimes:   make(map[string]time.Time),
	}
}

// SetInterval overrides the polling interval. Call before Run.
func (w *Watcher) SetInterval(d time.Duration) {
	if d > 0 {
		w.interval = d
	}
}

// Run records the current state of every path and polls until ctx is done.
// onChange runs on the polling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	w.snapshotLocked()
	w.mu.Unlock()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check compares the files against the last snapshot and calls onChange
// synchronously when anything differs. It reports whether it did.
func (w *Watcher) Check() bool {
	w.mu.Lock()
	changed := w.changedLocked()
	if changed {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange()
	}
	return changed
}

// changedLocked compares current mtimes with stored snapshots. Must hold mu.
func (w *Watcher) changedLocked() bool {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		prev, existed := w.mtimes[path]
		if err != nil {
			if existed {
				return true
			}
			continue
		}
		if !existed || !info.ModTime().Equal(prev) {
			return true
		}
	}
	return false
}

// snapshotLocked records current mtimes. Must hold mu.
func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}
