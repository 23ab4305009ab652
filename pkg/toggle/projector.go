// ABOUTME: Property projector for value icons: animation value, size, opacity, foreground role
// ABOUTME: OnSelected reads per-icon timelines; OnHover splits weight between floor and ceil of pos

package toggle

// IconProperties is the animated snapshot of one value's content for a frame.
type IconProperties[T comparable] struct {
	Value T
	Index int

	// AnimationValue is 1 when fully selected and 0 when fully deselected.
	AnimationValue float64
	Size           float64 // scale, lerp(IconScale, SelectedIconScale, AnimationValue)
	Opacity        float64
	// Foreground is set for the elements the indicator currently covers.
	Foreground bool
	// Selected is set for the current value, regardless of animation state.
	Selected bool
}

// HoverWeight returns element i's animation value derived from pos alone:
// 1-fraction for floor(pos), fraction for ceil(pos), 0 for every other element.
// At an integral position floor == ceil and that element gets 1.
func HoverWeight(pos Position, i int) float64 {
	if pos.Empty() {
		return 0
	}
	lo, hi := pos.Floor(), pos.Ceil()
	f := pos.Fraction()
	switch {
	case lo == hi && i == lo:
		return 1
	case i == lo:
		return 1 - f
	case i == hi:
		return f
	}
	return 0
}

// projectIcons derives IconProperties for every value. selectedValue supplies
// the per-element timeline values used in OnSelected mode.
func projectIcons[T comparable](cfg Config[T], pos Position, current int, selectedValue func(i int) float64) []IconProperties[T] {
	out := make([]IconProperties[T], len(cfg.Values))
	for i, v := range cfg.Values {
		av := HoverWeight(pos, i)
		if cfg.IconAnimation == OnSelected && selectedValue != nil {
			av = selectedValue(i)
		}
		av = clamp01(av)

		opacity := lerp(cfg.IconOpacity, cfg.SelectedIconOpacity, av)
		if cfg.Inactive {
			opacity *= cfg.InactiveOpacity
		}
		out[i] = IconProperties[T]{
			Value:          v,
			Index:          i,
			AnimationValue: av,
			Size:           lerp(cfg.IconScale, cfg.SelectedIconScale, av),
			Opacity:        clamp01(opacity),
			Foreground:     HoverWeight(pos, i) > 0,
			Selected:       i == current,
		}
	}
	return out
}
