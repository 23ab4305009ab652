// ABOUTME: Timeline is a one-shot scalar animation run: from, to, duration, curve, elapsed
// ABOUTME: Advanced by frame deltas; Value applies the curve to the linear progress

package toggle

import "time"

// Timeline animates a scalar from one value to another over a fixed duration.
// The zero value is a finished timeline resting at 0.
type Timeline struct {
	from     float64
	to       float64
	duration time.Duration
	curve    Curve
	elapsed  time.Duration
}

// NewTimeline returns a timeline at t=0. A nil curve is Linear.
func NewTimeline(from, to float64, duration time.Duration, curve Curve) *Timeline {
	if curve == nil {
		curve = Linear
	}
	return &Timeline{
		from:     from,
		to:       to,
		duration: max(duration, 0),
		curve:    curve,
	}
}

// RestingTimeline returns a finished timeline holding value.
func RestingTimeline(value float64) *Timeline {
	return &Timeline{from: value, to: value, curve: Linear}
}

// Advance moves the timeline forward by dt. It reports whether the timeline
// is still running after the step.
func (t *Timeline) Advance(dt time.Duration) bool {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
	return !t.Done()
}

// Seek places the timeline at linear progress p ∈ [0,1].
func (t *Timeline) Seek(p float64) {
	t.elapsed = time.Duration(clamp01(p) * float64(t.duration))
}

// Progress returns linear progress in [0,1]. A zero-length timeline is at 1.
func (t *Timeline) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return clamp01(float64(t.elapsed) / float64(t.duration))
}

// Eased returns the curve applied to Progress.
func (t *Timeline) Eased() float64 {
	p := t.Progress()
	switch p {
	case 0:
		return 0
	case 1:
		return 1
	}
	if t.curve == nil {
		return p
	}
	return t.curve(p)
}

// Value returns from + (to - from) * Eased().
func (t *Timeline) Value() float64 {
	return lerp(t.from, t.to, t.Eased())
}

// From returns the start value.
func (t *Timeline) From() float64 { return t.from }

// To returns the end value.
func (t *Timeline) To() float64 { return t.to }

// Done reports whether the timeline reached its end.
func (t *Timeline) Done() bool {
	return t.elapsed >= t.duration
}
