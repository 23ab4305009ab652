// ABOUTME: Switch owns the per-frame pipeline: driver tick, position resolve, property projection
// ABOUTME: Selection changes, drag gestures and reconfiguration go through here; not goroutine-safe

package toggle

import (
	"fmt"
	"slices"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame is everything a renderer needs to draw one frame.
type Frame[T comparable] struct {
	Position  Position
	Layout    Layout
	Icons     []IconProperties[T]
	Indicator IndicatorProperties[T]
	Style     Style
	Current   T
	Inactive  bool
}

// Switch is an animated multi-value toggle. All methods must be called from
// a single goroutine, typically the host's update loop.
type Switch[T comparable] struct {
	cfg    Config[T]
	index  int
	driver *Driver
	layout Layout
}

// New validates cfg and returns a switch resting on cfg.Current.
func New[T comparable](cfg Config[T]) (*Switch[T], error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid switch config: %w", err)
	}
	s := &Switch[T]{cfg: cfg}
	s.index = max(cfg.IndexOf(cfg.Current), 0)
	s.layout = NewLayout(len(cfg.Values), cfg.Geometry, cfg.Direction)
	s.driver = NewDriver(len(cfg.Values), s.index, s.restColor(), s.timing())
	return s, nil
}

// Config returns the normalised configuration.
func (s *Switch[T]) Config() Config[T] { return s.cfg }

// Values returns the value list.
func (s *Switch[T]) Values() []T { return s.cfg.Values }

// Current returns the selected value.
func (s *Switch[T]) Current() T { return s.cfg.Current }

// CurrentIndex returns the index of the selected value.
func (s *Switch[T]) CurrentIndex() int { return s.index }

// Layout returns the slot geometry.
func (s *Switch[T]) Layout() Layout { return s.layout }

// Position returns the indicator position for the current frame.
func (s *Switch[T]) Position() Position { return s.driver.Position() }

// SetCurrent selects v, animating from the current position. Selecting the
// value that is already current is a no-op.
func (s *Switch[T]) SetCurrent(v T) error {
	i := s.cfg.IndexOf(v)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrCurrentNotInValues, v)
	}
	s.selectIndex(i, false)
	return nil
}

// SelectIndex selects the value at index i.
func (s *Switch[T]) SelectIndex(i int) error {
	if i < 0 || i >= len(s.cfg.Values) {
		return fmt.Errorf("%w: index %d of %d", ErrCurrentNotInValues, i, len(s.cfg.Values))
	}
	s.selectIndex(i, false)
	return nil
}

// Step moves the selection by delta slots, clamped to the ends of the list.
// It reports whether the selection changed.
func (s *Switch[T]) Step(delta int) (T, bool) {
	if len(s.cfg.Values) == 0 {
		return s.cfg.Current, false
	}
	i := min(max(s.index+delta, 0), len(s.cfg.Values)-1)
	changed := i != s.index
	s.selectIndex(i, false)
	return s.cfg.Current, changed
}

func (s *Switch[T]) selectIndex(i int, force bool) {
	if len(s.cfg.Values) == 0 {
		return
	}
	if i == s.index && !force && !s.driver.Dragging() {
		return
	}
	s.index = i
	s.cfg.Current = s.cfg.Values[i]
	s.driver.Select(i, s.cfg.colorFor(s.cfg.Current))
}

// Tick advances the animation by dt. It reports whether another frame is
// needed.
func (s *Switch[T]) Tick(dt time.Duration) bool {
	return s.driver.Tick(dt)
}

// Animating reports whether any timeline is running or a drag is active.
func (s *Switch[T]) Animating() bool {
	return s.driver.Animating()
}

// Dragging reports whether a drag gesture is in progress.
func (s *Switch[T]) Dragging() bool { return s.driver.Dragging() }

// DragStart begins a drag gesture at the current indicator position.
func (s *Switch[T]) DragStart() { s.driver.DragStart() }

// DragBy moves the indicator by dx track units.
func (s *Switch[T]) DragBy(dx float64) {
	s.driver.DragBy(s.layout.IndexDelta(dx))
}

// DragEnd releases the indicator. It snaps to the nearest value and reports
// whether the selection changed.
func (s *Switch[T]) DragEnd() (T, bool) {
	if !s.driver.Dragging() {
		return s.cfg.Current, false
	}
	i := s.driver.DragEnd()
	changed := i != s.index
	s.selectIndex(i, true)
	return s.cfg.Current, changed
}

// SetInactive dims the switch.
func (s *Switch[T]) SetInactive(inactive bool) { s.cfg.Inactive = inactive }

// SetLoading toggles the loading state shown in the indicator.
func (s *Switch[T]) SetLoading(loading bool) { s.cfg.Loading = loading }

// Loading reports the loading state.
func (s *Switch[T]) Loading() bool { return s.cfg.Loading }

// Reconfigure applies a new configuration. When the value list is unchanged
// a different Current animates like SetCurrent and a new color for the same
// Current fades in; otherwise the switch jumps to rest on the new Current.
func (s *Switch[T]) Reconfigure(cfg Config[T]) error {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid switch config: %w", err)
	}
	sameValues := slices.Equal(cfg.Values, s.cfg.Values)
	next := max(cfg.IndexOf(cfg.Current), 0)

	s.cfg = cfg
	s.layout = NewLayout(len(cfg.Values), cfg.Geometry, cfg.Direction)
	s.driver.SetTiming(s.timing())

	if !sameValues {
		s.index = next
		s.driver.Reset(len(cfg.Values), next, s.restColor())
		return nil
	}
	// Keep the old selection until selectIndex animates away from it.
	if len(cfg.Values) > 0 {
		s.cfg.Current = cfg.Values[s.index]
	}
	s.selectIndex(next, false)
	s.driver.Recolor(s.restColor())
	return nil
}

// Frame projects the animated properties of the current instant.
func (s *Switch[T]) Frame() Frame[T] {
	pos := s.driver.Position()
	geom := IndicatorGeometry(s.layout, pos, s.cfg.Fitting)

	ind := IndicatorProperties[T]{
		Geometry: geom,
		Loading:  s.cfg.Loading,
	}
	if s.cfg.IndicatorAnimation == OnHover {
		ind.Color = hoverColor(s.cfg, pos)
	} else {
		ind.Color = s.driver.Color()
	}
	if s.cfg.Style == StyleRolling {
		ind.Rolling = rollingContents(s.cfg, s.layout, pos, geom)
	}

	return Frame[T]{
		Position:  pos,
		Layout:    s.layout,
		Icons:     projectIcons(s.cfg, pos, s.index, s.driver.IconValue),
		Indicator: ind,
		Style:     s.cfg.Style,
		Current:   s.cfg.Current,
		Inactive:  s.cfg.Inactive,
	}
}

func (s *Switch[T]) timing() Timing {
	return Timing{
		Duration:     s.cfg.Duration,
		Curve:        s.cfg.Curve,
		IconDuration: s.cfg.IconDuration,
		IconCurve:    s.cfg.IconCurve,
	}
}

func (s *Switch[T]) restColor() colorful.Color {
	if len(s.cfg.Values) == 0 {
		return s.cfg.fallbackColor()
	}
	return s.cfg.colorFor(s.cfg.Values[s.index])
}
