// ABOUTME: Position resolver: fractional index of the indicator between two discrete values
// ABOUTME: Floor/Ceil/Fraction helpers; Ceil clamps to the last index, empty sets resolve to zero

package toggle

import "math"

// fractionEpsilon absorbs float noise so a resting position is integral.
const fractionEpsilon = 1e-9

// contractTolerance is how far outside [0, n-1] a raw position may drift
// before it counts as a contract violation rather than rounding error.
const contractTolerance = 1e-6

// Position is a fractional index into a value list of length N.
// The zero value is the resting position on the first element of an empty list.
type Position struct {
	value float64
	n     int
}

// NewPosition returns the position at value for a list of n elements,
// clamped into [0, n-1].
func NewPosition(value float64, n int) Position {
	return Position{value: clampPos(value, n), n: n}
}

// Resolve interpolates between start and end by eased progress:
// pos = start + (end - start) * eased. The result is clamped into [0, n-1].
func Resolve(eased, start, end float64, n int) Position {
	return NewPosition(lerp(start, end, eased), n)
}

// Value returns the fractional index.
func (p Position) Value() float64 { return p.value }

// Len returns the length of the value list the position refers to.
func (p Position) Len() int { return p.n }

// Empty reports whether the value list has no elements.
func (p Position) Empty() bool { return p.n <= 0 }

// Floor returns the index of the element at or before the position.
func (p Position) Floor() int {
	if p.n <= 0 {
		return 0
	}
	f := int(math.Floor(p.value))
	if p.value-float64(f) > 1-fractionEpsilon {
		f++
	}
	return min(max(f, 0), p.n-1)
}

// Ceil returns the index of the element at or after the position.
// It never exceeds the last index.
func (p Position) Ceil() int {
	if p.n <= 0 {
		return 0
	}
	if p.Integral() {
		return p.Floor()
	}
	return min(p.Floor()+1, p.n-1)
}

// Fraction returns pos - floor(pos), the blend weight toward Ceil.
// It is exactly 0 when the position is integral.
func (p Position) Fraction() float64 {
	if p.n <= 0 {
		return 0
	}
	f := p.value - float64(p.Floor())
	if f < fractionEpsilon {
		return 0
	}
	return f
}

// Integral reports whether the position rests on a single element.
func (p Position) Integral() bool {
	return p.Fraction() == 0
}

// Index returns the nearest element index.
func (p Position) Index() int {
	if p.n <= 0 {
		return 0
	}
	return min(max(int(math.Round(p.value)), 0), p.n-1)
}

func clampPos(v float64, n int) float64 {
	if n <= 0 || math.IsNaN(v) {
		return 0
	}
	hi := float64(n - 1)
	if v < -contractTolerance || v > hi+contractTolerance {
		contractViolation("position %.4f outside [0, %d]", v, n-1)
	}
	return math.Max(0, math.Min(v, hi))
}
