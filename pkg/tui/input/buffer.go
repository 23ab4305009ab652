// ABOUTME: StdinBuffer reads raw bytes from an io.Reader and dispatches complete input events
// ABOUTME: Handles escape sequence buffering, lone-ESC timeout (~50ms) and bracketed paste skipping

package input

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/mauromedda/segswitch-go/pkg/tui/key"
)

const (
	readBufSize  = 256
	escTimeout   = 50 * time.Millisecond
	bracketStart = "\x1b[200~"
	bracketEnd   = "\x1b[201~"
	// maxPending bounds an unterminated escape sequence before it is dropped.
	maxPending = 64
)

// StdinBuffer reads from a reader and calls onEvent with each complete event
// (a key, an escape sequence or a mouse report), ready for key.ParseKey or
// key.ParseMouse.
type StdinBuffer struct {
	reader  io.Reader
	onEvent func(string)
	mu      sync.Mutex
	buf     string
}

// NewStdinBuffer creates a StdinBuffer that reads from r and calls onEvent
// for each event. onEvent runs on the goroutine that called Start.
func NewStdinBuffer(r io.Reader, onEvent func(string)) *StdinBuffer {
	return &StdinBuffer{reader: r, onEvent: onEvent}
}

// Start reads until ctx is cancelled or the reader fails. It returns nil on
// cancellation and at EOF, and the read error otherwise.
func (b *StdinBuffer) Start(ctx context.Context) error {
	readCh := make(chan readResult)
	done := make(chan struct{})

	go b.readLoop(readCh, done)
	defer close(done)

	// timeout fires when an incomplete sequence has waited long enough.
	var timeout <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timeout:
			timeout = nil
			b.flushRemaining()
		case result, ok := <-readCh:
			if !ok {
				b.flushRemaining()
				return nil
			}
			if result.err != nil {
				b.flushRemaining()
				if errors.Is(result.err, io.EOF) {
					return nil
				}
				return result.err
			}
			timeout = nil
			if b.process(ctx, result.data) {
				timeout = time.After(escTimeout)
			}
		}
	}
}

// readResult holds the outcome of a single Read call.
type readResult struct {
	data []byte
	err  error
}

// readLoop continuously reads from the reader and sends data on ch.
// It stops when done is closed, preventing goroutine leaks on cancellation.
func (b *StdinBuffer) readLoop(ch chan<- readResult, done <-chan struct{}) {
	defer close(ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := b.reader.Read(tmp)
		if n > 0 {
			select {
			case ch <- readResult{data: append([]byte(nil), tmp[:n]...)}:
			case <-done:
				return
			}
		}
		if err != nil {
			if n == 0 {
				select {
				case ch <- readResult{err: err}:
				case <-done:
				}
			}
			return
		}
	}
}

// process dispatches every complete event and reports whether an incomplete
// one is left waiting for more bytes.
func (b *StdinBuffer) process(ctx context.Context, data []byte) bool {
	b.mu.Lock()
	b.buf += string(data)
	b.mu.Unlock()

	for ctx.Err() == nil {
		ev, wait := b.next(false)
		if wait {
			return true
		}
		if ev == "" {
			return false
		}
		b.onEvent(ev)
	}
	return false
}

// next pops one event from the buffer. wait reports that the buffer holds
// only an incomplete event; with final set it is flushed instead.
func (b *StdinBuffer) next(final bool) (ev string, wait bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for strings.HasPrefix(b.buf, bracketStart) {
		end := strings.Index(b.buf, bracketEnd)
		if end < 0 {
			if final {
				b.buf = ""
			}
			return "", !final
		}
		b.buf = b.buf[end+len(bracketEnd):]
	}
	if b.buf == "" {
		return "", false
	}

	ev, complete := key.Next(b.buf)
	if !complete && !final && len(b.buf) < maxPending {
		return "", true
	}
	if !complete && b.buf[0] == 0x1b && len(ev) > 1 {
		// Unterminated sequence: emit the ESC and re-parse the rest.
		ev = "\x1b"
	}
	b.buf = b.buf[len(ev):]
	return ev, false
}

// flushRemaining dispatches whatever is left, incomplete or not.
func (b *StdinBuffer) flushRemaining() {
	for {
		ev, _ := b.next(true)
		if ev == "" {
			return
		}
		b.onEvent(ev)
	}
}
