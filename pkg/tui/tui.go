// ABOUTME: Line engine with differential rendering and overlay compositing
// ABOUTME: Coalesces render requests through a buffered channel; wraps frames in CSI 2026 synchronized output

package tui

import (
	"io"
	"strconv"
	"strings"
	"sync"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	syncBegin  = "\x1b[?2026h"
	syncEnd    = "\x1b[?2026l"
	eraseLine  = "\r\x1b[2K"
)

// TUI renders a Container into an inline region of the terminal, rewriting
// only the lines that changed since the previous frame.
type TUI struct {
	container *Container
	writer    io.Writer
	width     int
	height    int

	mu       sync.Mutex
	prev     []string
	overlays []Overlay
	state    regionState

	renderCh chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	running  bool
}

// regionState tracks where the terminal cursor sits inside our region.
type regionState struct {
	cursorRow   int // 0-based row within the region
	maxRendered int
	firstRender bool
	prevWidth   int
}

// New creates an engine writing to w with the given dimensions.
func New(w io.Writer, termWidth, termHeight int) *TUI {
	return &TUI{
		container: NewContainer(),
		writer:    w,
		width:     termWidth,
		height:    termHeight,
		state:     regionState{firstRender: true},
		renderCh:  make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

// Container returns the root container for adding components.
func (t *TUI) Container() *Container {
	return t.container
}

// Size returns the current dimensions.
func (t *TUI) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// SetSize updates the terminal dimensions and triggers a full redraw.
func (t *TUI) SetSize(w, h int) {
	t.mu.Lock()
	t.width = w
	t.height = h
	t.prev = nil
	t.mu.Unlock()
	t.container.Invalidate()
	t.RequestRender()
}

// PushOverlay adds a component drawn on top of the content.
func (t *TUI) PushOverlay(o Overlay) {
	t.mu.Lock()
	t.overlays = append(t.overlays, o)
	t.mu.Unlock()
	t.RequestRender()
}

// PopOverlay removes the topmost overlay and reports whether one was removed.
func (t *TUI) PopOverlay() bool {
	t.mu.Lock()
	n := len(t.overlays)
	if n > 0 {
		t.overlays = t.overlays[:n-1]
	}
	t.mu.Unlock()
	t.RequestRender()
	return n > 0
}

// HasOverlay reports whether any overlay is shown.
func (t *TUI) HasOverlay() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.overlays) > 0
}

// RequestRender signals that a render is needed. Multiple calls coalesce
// into a single render.
func (t *TUI) RequestRender() {
	select {
	case t.renderCh <- struct{}{}:
	default:
	}
}

// Start begins the render loop in a goroutine. Call Stop to terminate.
func (t *TUI) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.mu.Unlock()

	go t.renderLoop()
}

// Stop terminates the render loop, moves the cursor below the region and
// shows it again. Safe to call multiple times.
func (t *TUI) Stop() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		wasRunning := t.running
		t.running = false
		var b strings.Builder
		moveRows(&b, t.state.cursorRow, t.state.maxRendered-1)
		if t.state.maxRendered > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(showCursor)
		t.mu.Unlock()

		_, _ = io.WriteString(t.writer, b.String())
		if wasRunning {
			close(t.stopCh)
		}
	})
}

// RenderOnce performs a single synchronous render.
func (t *TUI) RenderOnce() {
	t.render()
}

func (t *TUI) renderLoop() {
	for {
		select {
		case <-t.stopCh:
			return
		case <-t.renderCh:
			t.render()
		}
	}
}

func (t *TUI) render() {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.width, t.height
	if w <= 0 || h <= 0 {
		return
	}

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	t.container.Render(buf, w)
	compositeOverlays(buf, t.overlays, w)

	lines := buf.Lines
	if len(lines) > h {
		lines = lines[len(lines)-h:]
	}

	out := diffRegion(&t.state, t.prev, lines, w)
	if out != "" {
		_, _ = io.WriteString(t.writer, syncBegin+hideCursor+out+syncEnd)
	}
	t.prev = append(t.prev[:0], lines...)
}

// compositeOverlays replaces content lines from each overlay's anchor row.
func compositeOverlays(buf *RenderBuffer, overlays []Overlay, w int) {
	for _, o := range overlays {
		ob := AcquireBuffer()
		ow := o.Width
		if ow <= 0 || ow > w {
			ow = w
		}
		o.Component.Render(ob, ow)

		start := 0
		switch o.Position {
		case OverlayCenter:
			start = max((buf.Len()-ob.Len())/2, 0)
		case OverlayBottom:
			start = max(buf.Len()-ob.Len(), 0)
		}
		for buf.Len() < start+ob.Len() {
			buf.WriteLine("")
		}
		copy(buf.Lines[start:], ob.Lines)
		ReleaseBuffer(ob)
	}
}

// diffRegion produces the escape sequences that turn prev into curr using
// relative cursor movement only, so the region scrolls with the terminal.
func diffRegion(st *regionState, prev, curr []string, width int) string {
	var b strings.Builder

	resized := st.prevWidth != 0 && st.prevWidth != width
	if st.firstRender || resized || (prev == nil && st.maxRendered > 0) {
		if !st.firstRender {
			moveRows(&b, st.cursorRow, 0)
			b.WriteString("\r\x1b[J")
		}
		for i, line := range curr {
			if i > 0 {
				b.WriteString("\r\n")
			}
			b.WriteString(line)
		}
		st.cursorRow = max(len(curr)-1, 0)
		st.maxRendered = len(curr)
		st.firstRender = false
		st.prevWidth = width
		return b.String()
	}
	st.prevWidth = width

	common := min(len(prev), len(curr))
	for i := range common {
		if prev[i] == curr[i] {
			continue
		}
		moveRows(&b, st.cursorRow, i)
		st.cursorRow = i
		b.WriteString(eraseLine)
		b.WriteString(curr[i])
	}

	if len(curr) > len(prev) {
		last := max(len(prev)-1, 0)
		moveRows(&b, st.cursorRow, last)
		st.cursorRow = last
		for i := len(prev); i < len(curr); i++ {
			if i > 0 {
				b.WriteString("\r\n")
			}
			b.WriteString(curr[i])
			st.cursorRow = i
		}
	}

	if len(curr) < st.maxRendered {
		for i := len(curr); i < st.maxRendered; i++ {
			moveRows(&b, st.cursorRow, i)
			st.cursorRow = i
			b.WriteString(eraseLine)
		}
		if len(curr) > 0 {
			moveRows(&b, st.cursorRow, len(curr)-1)
			st.cursorRow = len(curr) - 1
		}
	}
	st.maxRendered = len(curr)

	return b.String()
}

// moveRows emits a relative vertical cursor movement.
func moveRows(b *strings.Builder, from, to int) {
	if from == to || to < 0 {
		return
	}
	var num [20]byte
	b.WriteString("\x1b[")
	if to < from {
		b.Write(strconv.AppendInt(num[:0], int64(from-to), 10))
		b.WriteByte('A')
		return
	}
	b.Write(strconv.AppendInt(num[:0], int64(to-from), 10))
	b.WriteByte('B')
}
