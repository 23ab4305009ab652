// ABOUTME: Horizontal track layout: one slot rect per value, spacing and borders, LTR or RTL
// ABOUTME: Hit-testing and pointer-delta conversion from track units to index units

package toggle

import (
	"fmt"
	"math"
	"strings"
)

// Direction is the text direction of the track.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// Sign returns +1 for LeftToRight and -1 for RightToLeft.
func (d Direction) Sign() float64 {
	if d == RightToLeft {
		return -1
	}
	return 1
}

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection accepts "ltr" and "rtl" in any case; empty is LeftToRight.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr":
		return LeftToRight, nil
	case "rtl":
		return RightToLeft, nil
	}
	return LeftToRight, fmt.Errorf("unknown direction %q", s)
}

// Geometry is the static sizing of a switch in track units
// (terminal columns for the terminal renderer).
type Geometry struct {
	SlotWidth      float64 // width of one value slot
	Spacing        float64 // gap between adjacent slots
	BorderWidth    float64 // inset on both ends of the track
	IndicatorWidth float64 // 0 means SlotWidth
	Height         float64 // rows; used by renderers, not by the layout
}

func (g Geometry) validate() error {
	for _, v := range []float64{g.SlotWidth, g.Spacing, g.BorderWidth, g.IndicatorWidth, g.Height} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidGeometry
		}
	}
	return nil
}

func (g Geometry) indicatorWidth() float64 {
	if g.IndicatorWidth > 0 {
		return g.IndicatorWidth
	}
	return g.SlotWidth
}

// Rect is a horizontal span on the track.
type Rect struct {
	Left  float64
	Width float64
}

// Right returns Left + Width.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Center returns the midpoint of the span.
func (r Rect) Center() float64 { return r.Left + r.Width/2 }

// Layout is the geometry of a track with one slot per value.
type Layout struct {
	Track     Rect
	Slots     []Rect
	Border    float64
	Indicator float64 // configured indicator width
	Direction Direction
	pitch     float64
}

// NewLayout lays out n slots left to right (or mirrored for RightToLeft).
func NewLayout(n int, g Geometry, dir Direction) Layout {
	l := Layout{
		Border:    g.BorderWidth,
		Indicator: g.indicatorWidth(),
		Direction: dir,
		pitch:     g.SlotWidth + g.Spacing,
	}
	if n <= 0 {
		l.Track = Rect{Width: 2 * g.BorderWidth}
		return l
	}
	inner := float64(n)*g.SlotWidth + float64(n-1)*g.Spacing
	l.Track = Rect{Width: inner + 2*g.BorderWidth}
	l.Slots = make([]Rect, n)
	for i := range n {
		k := i
		if dir == RightToLeft {
			k = n - 1 - i
		}
		l.Slots[i] = Rect{Left: g.BorderWidth + float64(k)*l.pitch, Width: g.SlotWidth}
	}
	return l
}

// Len returns the number of slots.
func (l Layout) Len() int { return len(l.Slots) }

// Pitch returns the distance between the left edges of adjacent slots.
func (l Layout) Pitch() float64 { return l.pitch }

// IndexDelta converts a pointer movement along the track into a change of
// fractional index, honoring the text direction.
func (l Layout) IndexDelta(dx float64) float64 {
	if l.pitch <= 0 {
		return 0
	}
	return dx / l.pitch * l.Direction.Sign()
}

// SlotAt returns the index of the slot nearest to track coordinate x.
// Points outside the track report false.
func (l Layout) SlotAt(x float64) (int, bool) {
	if len(l.Slots) == 0 || x < l.Track.Left || x >= l.Track.Right() {
		return 0, false
	}
	best, bestDist := 0, math.Inf(1)
	for i, s := range l.Slots {
		if x >= s.Left && x < s.Right() {
			return i, true
		}
		if d := math.Abs(x - s.Center()); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, true
}
