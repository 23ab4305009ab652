// ABOUTME: Indicator projection: geometry interpolated between flanking slots, fitting, color blend
// ABOUTME: Zero-size tracks and empty value lists yield a zero-size indicator

package toggle

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// IndicatorProperties describes the indicator for one frame.
type IndicatorProperties[T comparable] struct {
	Geometry Rect
	Color    colorful.Color
	// Rolling holds the embedded content of a StyleRolling switch: one entry
	// at rest, two entries (lower then upper) during a transition.
	Rolling []RollingContent[T]
	Loading bool
}

// IndicatorGeometry interpolates the indicator span between the slots of
// floor(pos) and ceil(pos) and applies the fitting mode.
func IndicatorGeometry(l Layout, pos Position, fit FittingMode) Rect {
	if pos.Empty() || l.Len() == 0 {
		return Rect{Left: l.Track.Left + l.Border}
	}
	lo, hi := l.Slots[min(pos.Floor(), l.Len()-1)], l.Slots[min(pos.Ceil(), l.Len()-1)]
	f := pos.Fraction()
	center := lerp(lo.Center(), hi.Center(), f)
	width := l.Indicator

	if fit == FitPreventOverlap {
		avail := l.Track.Width - 2*l.Border
		if avail <= 0 || width <= 0 {
			return Rect{Left: l.Track.Left + l.Border}
		}
		width = math.Min(width, avail)
		left := center - width/2
		lower := l.Track.Left + l.Border
		upper := l.Track.Right() - l.Border - width
		return Rect{Left: math.Max(lower, math.Min(left, upper)), Width: width}
	}
	if width <= 0 {
		return Rect{Left: center}
	}
	return Rect{Left: center - width/2, Width: width}
}

// BlendColor blends a toward b by t in RGB space. t is clamped to [0,1].
func BlendColor(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, clamp01(t)).Clamped()
}

// hoverColor blends the colors of the two values flanking pos by fraction.
func hoverColor[T comparable](cfg Config[T], pos Position) colorful.Color {
	if pos.Empty() || len(cfg.Values) == 0 {
		return cfg.fallbackColor()
	}
	lo := cfg.colorFor(cfg.Values[pos.Floor()])
	if pos.Integral() {
		return lo
	}
	return BlendColor(lo, cfg.colorFor(cfg.Values[pos.Ceil()]), pos.Fraction())
}
