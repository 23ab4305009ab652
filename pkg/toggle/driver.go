// ABOUTME: Timeline driver: selection timeline, per-icon timelines, color timeline, hover/drag state
// ABOUTME: Restarts from the current interpolated state so a new selection never snaps

package toggle

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Timing holds durations and curves for the driver.
type Timing struct {
	Duration     time.Duration
	Curve        Curve
	IconDuration time.Duration
	IconCurve    Curve
}

// colorTimeline blends from one color to another along a 0→1 timeline.
type colorTimeline struct {
	from, to colorful.Color
	tl       *Timeline
}

func (c colorTimeline) value() colorful.Color {
	return c.from.BlendRgb(c.to, c.tl.Eased())
}

// Driver turns discrete selection changes and pointer drags into
// continuous values. It is not safe for concurrent use.
type Driver struct {
	n      int
	timing Timing

	selection *Timeline
	icons     []*Timeline
	color     colorTimeline

	dragging bool
	hover    float64
}

// NewDriver returns a driver resting on index with the given indicator color.
func NewDriver(n, index int, color colorful.Color, timing Timing) *Driver {
	d := &Driver{timing: timing}
	d.Reset(n, index, color)
	return d
}

// Reset jumps to rest on index, dropping every running timeline.
func (d *Driver) Reset(n, index int, color colorful.Color) {
	d.n = n
	d.dragging = false
	d.selection = RestingTimeline(float64(index))
	d.icons = make([]*Timeline, max(n, 0))
	for i := range d.icons {
		v := 0.0
		if i == index {
			v = 1
		}
		d.icons[i] = RestingTimeline(v)
	}
	d.color = colorTimeline{from: color, to: color, tl: RestingTimeline(1)}
}

// SetTiming replaces durations and curves for subsequent selections.
func (d *Driver) SetTiming(t Timing) {
	d.timing = t
}

// Len returns the number of values driven.
func (d *Driver) Len() int { return d.n }

// Position returns the current indicator position: the hover position while
// dragging, otherwise the selection timeline's value.
func (d *Driver) Position() Position {
	if d.dragging {
		return NewPosition(d.hover, d.n)
	}
	return NewPosition(d.selection.Value(), d.n)
}

// Target returns the index the selection timeline is heading to.
func (d *Driver) Target() int {
	return NewPosition(d.selection.To(), d.n).Index()
}

// Select starts a selection timeline from the current position to index.
// Icon and color timelines restart from their current values as well.
func (d *Driver) Select(index int, color colorful.Color) {
	if d.n <= 0 {
		return
	}
	index = min(max(index, 0), d.n-1)
	from := d.Position().Value()
	d.dragging = false
	d.selection = NewTimeline(from, float64(index), d.timing.Duration, d.timing.Curve)

	for i, tl := range d.icons {
		cur := tl.Value()
		target := 0.0
		if i == index {
			target = 1
		}
		if cur == target {
			d.icons[i] = RestingTimeline(target)
			continue
		}
		d.icons[i] = NewTimeline(cur, target, d.timing.IconDuration, d.timing.IconCurve)
	}

	d.color = colorTimeline{
		from: d.Color(),
		to:   color,
		tl:   NewTimeline(0, 1, d.timing.Duration, d.timing.Curve),
	}
}

// Recolor retargets the color timeline to c, blending from the color on
// screen. It does nothing when c is already the target.
func (d *Driver) Recolor(c colorful.Color) {
	if d.color.to == c {
		return
	}
	d.color = colorTimeline{
		from: d.Color(),
		to:   c,
		tl:   NewTimeline(0, 1, d.timing.Duration, d.timing.Curve),
	}
}

// Tick advances every timeline by dt and reports whether anything is still
// animating afterwards.
func (d *Driver) Tick(dt time.Duration) bool {
	d.selection.Advance(dt)
	for _, tl := range d.icons {
		tl.Advance(dt)
	}
	d.color.tl.Advance(dt)
	return d.Animating()
}

// Animating reports whether a re-render is needed on the next frame.
func (d *Driver) Animating() bool {
	if d.dragging || !d.selection.Done() || !d.color.tl.Done() {
		return true
	}
	for _, tl := range d.icons {
		if !tl.Done() {
			return true
		}
	}
	return false
}

// Progress returns the linear progress of the selection timeline.
func (d *Driver) Progress() float64 {
	return d.selection.Progress()
}

// IconValue returns element i's own 0..1 animation value.
func (d *Driver) IconValue(i int) float64 {
	if i < 0 || i >= len(d.icons) {
		return 0
	}
	return clamp01(d.icons[i].Value())
}

// Color returns the indicator color of the color timeline.
func (d *Driver) Color() colorful.Color {
	return d.color.value()
}

// Dragging reports whether a drag is in progress.
func (d *Driver) Dragging() bool { return d.dragging }

// DragStart freezes the indicator at its current position and hands control
// to the hover timeline.
func (d *Driver) DragStart() {
	if d.n <= 0 {
		return
	}
	d.hover = d.Position().Value()
	d.dragging = true
}

// DragBy moves the hover position by delta index units, clamped to [0, N-1].
func (d *Driver) DragBy(delta float64) {
	if !d.dragging {
		return
	}
	d.hover = min(max(d.hover+delta, 0), float64(d.n-1))
}

// DragEnd ends the drag and returns the nearest index. The caller is
// expected to Select it so the indicator settles from the hover position.
func (d *Driver) DragEnd() int {
	if !d.dragging {
		return d.Target()
	}
	return NewPosition(d.hover, d.n).Index()
}
