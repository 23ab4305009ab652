// ABOUTME: SIGWINCH listener feeding ProcessTerminal resize callbacks on unix
// ABOUTME: One goroutine per terminal; re-reads the size on every signal

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

func (t *ProcessTerminal) startResizeListener() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		for range sigCh {
			t.mu.Lock()
			fn := t.resizeFn
			t.mu.Unlock()

			if fn == nil {
				continue
			}

			w, h, err := t.Size()
			if err != nil {
				continue
			}
			fn(w, h)
		}
	}()
}
