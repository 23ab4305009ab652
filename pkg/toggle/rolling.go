// ABOUTME: Rolling transition: indicator carries floor/ceil content with opposed rotation and cross-fade
// ABOUTME: Keyed purely on pos; angle = 2·fraction·distance/size·direction (a wheel of diameter size)

package toggle

import "math"

// RollingContent is one value's content embedded in the indicator.
type RollingContent[T comparable] struct {
	Value   T
	Index   int
	Opacity float64
	// Angle is the rotation in radians. Positive rolls toward the end of the
	// track in reading direction.
	Angle float64
	// Upper marks the content of ceil(pos) during a transition.
	Upper bool
}

// RollingRatio returns distance/size for the wheel formed by the indicator:
// the centre distance between the flanking slots over the indicator width.
func RollingRatio(l Layout, pos Position, indicator Rect) float64 {
	if pos.Empty() || l.Len() == 0 || indicator.Width <= 0 {
		return 0
	}
	lo, hi := l.Slots[min(pos.Floor(), l.Len()-1)], l.Slots[min(pos.Ceil(), l.Len()-1)]
	return math.Abs(hi.Center()-lo.Center()) / indicator.Width
}

func rollingContents[T comparable](cfg Config[T], l Layout, pos Position, indicator Rect) []RollingContent[T] {
	if pos.Empty() || len(cfg.Values) == 0 {
		return nil
	}
	lo, hi := pos.Floor(), pos.Ceil()
	alpha := 1.0
	if cfg.Inactive {
		alpha = cfg.InactiveOpacity
	}
	if lo == hi {
		return []RollingContent[T]{{Value: cfg.Values[lo], Index: lo, Opacity: alpha}}
	}

	f := pos.Fraction()
	k := 2 * RollingRatio(l, pos, indicator) * l.Direction.Sign()
	return []RollingContent[T]{
		{
			Value:   cfg.Values[lo],
			Index:   lo,
			Opacity: (1 - f) * alpha,
			Angle:   f * k,
		},
		{
			Value:   cfg.Values[hi],
			Index:   hi,
			Opacity: f * alpha,
			Angle:   -(1 - f) * k,
			Upper:   true,
		},
	}
}
