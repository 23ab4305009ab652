// ABOUTME: ProcessTerminal implements Terminal over os.Stdin/os.Stderr using golang.org/x/term
// ABOUTME: Tracks raw mode state; resize notifications are platform-specific

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by the process's stdin and
// stderr. Stdout stays free for the chosen value.
type ProcessTerminal struct {
	mu       sync.Mutex
	oldState *term.State
	resizeFn func(width, height int)
	watching bool
}

// NewProcessTerminal returns a ProcessTerminal ready for use.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{}
}

// IsTerminal reports whether both stdin and stderr are TTYs.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// EnterRawMode switches stdin to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(os.Stdin.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Read reads raw input from stdin.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

// Write sends bytes to stderr.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := os.Stderr.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stderr: %w", err)
	}
	return n, nil
}

// OnResize registers a callback invoked when the terminal is resized.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	start := !t.watching
	t.watching = true
	t.mu.Unlock()

	if start {
		t.startResizeListener()
	}
}
