// ABOUTME: Named factory functions producing configuration bundles for common switch variants
// ABOUTME: Standard, Rolling, Dual, Size (fit a width) and ByHeight (fit a row height)

package toggle

import "math"

// CellAspect is the height/width ratio of a terminal cell, used to turn a
// row height into a visually square slot.
const CellAspect = 2.0

// Standard returns a switch with a sliding indicator and icons that animate
// when selected.
func Standard[T comparable](values []T, current T) Config[T] {
	return Config[T]{
		Values:             values,
		Current:            current,
		Duration:           DefaultDuration,
		Curve:              EaseInOutCubic,
		IconAnimation:      OnSelected,
		IndicatorAnimation: OnSelected,
		Geometry: Geometry{
			SlotWidth:   7,
			Spacing:     1,
			BorderWidth: 1,
			Height:      3,
		},
		Fitting: FitPreventOverlap,
		Style:   StyleStandard,
	}
}

// Rolling returns a switch whose indicator carries the selected value's
// content and rolls it to the next slot. Icons and color follow the position.
func Rolling[T comparable](values []T, current T) Config[T] {
	c := Standard(values, current)
	c.Style = StyleRolling
	c.IconAnimation = OnHover
	c.IndicatorAnimation = OnHover
	c.Geometry.SlotWidth = 5
	c.Geometry.Spacing = 2
	return c
}

// Dual returns a two-value switch.
func Dual[T comparable](first, second, current T) Config[T] {
	c := Standard([]T{first, second}, current)
	c.Style = StyleDual
	c.Geometry.SlotWidth = 9
	c.Geometry.Spacing = 3
	return c
}

// Size returns a standard switch whose slots share totalWidth evenly.
// Slots never get narrower than one column.
func Size[T comparable](values []T, current T, totalWidth float64) Config[T] {
	c := Standard(values, current)
	n := float64(len(values))
	if n == 0 {
		return c
	}
	inner := totalWidth - 2*c.Geometry.BorderWidth - c.Geometry.Spacing*(n-1)
	c.Geometry.SlotWidth = math.Max(1, math.Floor(inner/n))
	return c
}

// ByHeight returns a standard switch with square-looking slots for a track
// of the given row height.
func ByHeight[T comparable](values []T, current T, height float64) Config[T] {
	c := Standard(values, current)
	if height < 1 {
		height = 1
	}
	c.Geometry.Height = height
	c.Geometry.SlotWidth = math.Max(1, math.Round(height*CellAspect)+1)
	return c
}
