// ABOUTME: Segment is the terminal component for an animated switch
// ABOUTME: Implements tui.Component, InputHandler, Ticker and Focusable over a toggle.Switch

package segment

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mauromedda/segswitch-go/pkg/toggle"
	"github.com/mauromedda/segswitch-go/pkg/tui"
	"github.com/mauromedda/segswitch-go/pkg/tui/theme"
)

var (
	_ tui.Component    = (*Segment[string])(nil)
	_ tui.InputHandler = (*Segment[string])(nil)
	_ tui.Ticker       = (*Segment[string])(nil)
	_ tui.Focusable    = (*Segment[string])(nil)
)

// Segment draws a toggle.Switch and feeds it keys, mouse events and ticks.
// Like the switch it wraps, it must be used from a single goroutine.
type Segment[T comparable] struct {
	sw      *toggle.Switch[T]
	content content[T]
	opts    Options[T]

	focused  bool
	onChange func(T)

	// jump-to-value
	query     string
	sinceKey  time.Duration
	lastMatch int

	// pointer, relative to the origin set with SetOrigin
	originX int
	originY int
	pressed bool
	pressX  int
	lastX   int

	spinner  int
	spinTime time.Duration

	cached      []string
	cachedWidth int
}

// New builds the switch described by cfg and the renderer described by opts.
// When cfg has no ColorFor, indicator colors come from the theme palette.
func New[T comparable](cfg toggle.Config[T], opts Options[T]) (*Segment[T], error) {
	c, err := opts.content()
	if err != nil {
		return nil, err
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = defaultQueryTimeout
	}
	s := &Segment[T]{content: c, opts: opts, lastMatch: -1}
	sw, err := toggle.New(s.themed(cfg))
	if err != nil {
		return nil, err
	}
	s.sw = sw
	return s, nil
}

// themed wires palette colors into cfg where the caller left them unset.
// The value index belongs to cfg alone, so a config the switch rejects
// leaves the live colors untouched.
func (s *Segment[T]) themed(cfg toggle.Config[T]) toggle.Config[T] {
	index := make(map[T]int, len(cfg.Values))
	for i, v := range cfg.Values {
		index[v] = i
	}
	if cfg.ColorFor == nil {
		cfg.ColorFor = func(v T) colorful.Color {
			i, ok := index[v]
			if !ok {
				i = -1
			}
			return s.palette().ValueColor(i).Color
		}
	}
	if cfg.IndicatorColor == nil {
		c := s.palette().Indicator.Color
		cfg.IndicatorColor = &c
	}
	return cfg
}

// Switch exposes the underlying switch.
func (s *Segment[T]) Switch() *toggle.Switch[T] { return s.sw }

// Current returns the selected value.
func (s *Segment[T]) Current() T { return s.sw.Current() }

// OnChange registers a callback for selection changes made through input.
func (s *Segment[T]) OnChange(fn func(T)) { s.onChange = fn }

// SetCurrent selects v programmatically. OnChange is not called.
func (s *Segment[T]) SetCurrent(v T) error {
	s.Invalidate()
	return s.sw.SetCurrent(v)
}

// Reconfigure swaps the switch configuration, keeping the renderer options.
// A switch dimmed with SetInactive stays dimmed.
func (s *Segment[T]) Reconfigure(cfg toggle.Config[T]) error {
	s.Invalidate()
	cfg.Inactive = cfg.Inactive || s.sw.Config().Inactive
	return s.sw.Reconfigure(s.themed(cfg))
}

// SetLoading toggles the spinner inside the indicator.
func (s *Segment[T]) SetLoading(loading bool) {
	s.sw.SetLoading(loading)
	s.Invalidate()
}

// SetInactive dims the switch.
func (s *Segment[T]) SetInactive(inactive bool) {
	s.sw.SetInactive(inactive)
	s.Invalidate()
}

// Query returns the pending jump-to-value text.
func (s *Segment[T]) Query() string { return s.query }

// Width returns the number of columns the track occupies.
func (s *Segment[T]) Width() int {
	return trackCells(s.sw.Layout())
}

// Height returns the number of rows Render produces.
func (s *Segment[T]) Height() int {
	return len(rowKinds(s.sw.Config().Geometry, s.opts.Compact))
}

// Tick advances the animation and the loading spinner. It reports whether
// another frame is needed.
func (s *Segment[T]) Tick(dt time.Duration) bool {
	s.sinceKey += dt
	if s.query != "" && s.sinceKey >= s.opts.QueryTimeout {
		s.query = ""
	}
	wasAnimating := s.sw.Animating()
	more := s.sw.Tick(dt)
	if s.sw.Loading() {
		s.spinTime += dt
		for s.spinTime >= spinnerInterval {
			s.spinTime -= spinnerInterval
			s.spinner = (s.spinner + 1) % len(spinnerFrames)
		}
		more = true
	}
	if wasAnimating || more {
		s.Invalidate()
	}
	return more
}

// SetFocused implements tui.Focusable.
func (s *Segment[T]) SetFocused(focused bool) {
	s.focused = focused
	s.Invalidate()
}

// IsFocused implements tui.Focusable.
func (s *Segment[T]) IsFocused() bool { return s.focused }

// Invalidate drops the cached lines.
func (s *Segment[T]) Invalidate() { s.cached = nil }

// Render implements tui.Component.
func (s *Segment[T]) Render(out *tui.RenderBuffer, width int) {
	out.WriteLines(s.Lines(width))
}

// Lines renders the current frame clipped to width columns.
func (s *Segment[T]) Lines(width int) []string {
	if s.cached != nil && s.cachedWidth == width {
		return s.cached
	}
	g := s.paint()
	lines := g.encode(s.renderer(), width)
	s.cached, s.cachedWidth = lines, width
	return lines
}

// View renders the switch at its natural width.
func (s *Segment[T]) View() string {
	return strings.Join(s.Lines(s.Width()), "\n")
}

// String describes the selection for logs.
func (s *Segment[T]) String() string {
	return fmt.Sprintf("segment(%s, pos=%.3f)", s.content.label(s.sw.Current()), s.sw.Position().Value())
}

func (s *Segment[T]) palette() theme.Palette {
	if s.opts.Theme != nil {
		return s.opts.Theme.Palette
	}
	return theme.Current().Palette
}

func (s *Segment[T]) renderer() *lipgloss.Renderer {
	if s.opts.Renderer != nil {
		return s.opts.Renderer
	}
	return lipgloss.DefaultRenderer()
}

func (s *Segment[T]) changed(v T) {
	s.Invalidate()
	if s.onChange != nil {
		s.onChange(v)
	}
}
