// ABOUTME: Switch configuration: values, selection, timing, geometry, animation modes, colors
// ABOUTME: Validate fails fast on precondition violations; zero-valued scales/opacities get defaults

package toggle

import (
	"fmt"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// AnimationType selects what drives an animated aspect of the switch.
type AnimationType int

const (
	// OnSelected runs a discrete timeline whenever the selection changes.
	OnSelected AnimationType = iota
	// OnHover derives the animation directly from the indicator position.
	OnHover
)

// String returns "on-selected" or "on-hover".
func (a AnimationType) String() string {
	if a == OnHover {
		return "on-hover"
	}
	return "on-selected"
}

// ParseAnimationType accepts "on-selected"/"selected" and "on-hover"/"hover".
func ParseAnimationType(s string) (AnimationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "on-selected", "onselected", "selected":
		return OnSelected, nil
	case "on-hover", "onhover", "hover":
		return OnHover, nil
	}
	return OnSelected, fmt.Errorf("unknown animation type %q", s)
}

// FittingMode controls how the indicator is kept inside the track.
type FittingMode int

const (
	// FitPreventOverlap clamps the indicator to the track minus its borders.
	FitPreventOverlap FittingMode = iota
	// FitNone places the indicator at the interpolated slot centre unclamped.
	FitNone
)

// String returns "prevent-overlap" or "none".
func (f FittingMode) String() string {
	if f == FitNone {
		return "none"
	}
	return "prevent-overlap"
}

// ParseFitting accepts "prevent-overlap" (the default) and "none".
func ParseFitting(s string) (FittingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prevent-overlap", "preventoverlap", "clamp":
		return FitPreventOverlap, nil
	case "none", "off":
		return FitNone, nil
	}
	return FitPreventOverlap, fmt.Errorf("unknown fitting mode %q", s)
}

// Style selects the rendering variant of the switch.
type Style int

const (
	StyleStandard Style = iota
	// StyleRolling embeds the flanking values' content in the indicator.
	StyleRolling
	// StyleDual is a two-value switch.
	StyleDual
)

// String returns the lower-case style name.
func (s Style) String() string {
	switch s {
	case StyleRolling:
		return "rolling"
	case StyleDual:
		return "dual"
	default:
		return "standard"
	}
}

// ParseStyle parses a style name as produced by String.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return StyleStandard, nil
	case "rolling":
		return StyleRolling, nil
	case "dual":
		return StyleDual, nil
	}
	return StyleStandard, fmt.Errorf("unknown style %q", s)
}

// Defaults applied by Normalize to zero-valued fields.
const (
	DefaultDuration            = 350 * time.Millisecond
	DefaultIconScale           = 1.0
	DefaultSelectedIconScale   = 1.25
	DefaultIconOpacity         = 0.55
	DefaultSelectedIconOpacity = 1.0
	DefaultInactiveOpacity     = 0.5
)

// DefaultIndicatorColor is used when neither ColorFor nor IndicatorColor is set.
var DefaultIndicatorColor = colorful.Color{R: 0.49, G: 0.23, B: 0.93}

// Config is the complete static configuration of a switch.
// Colors and geometry are fully resolved; theme fallback is the caller's job.
type Config[T comparable] struct {
	Values  []T
	Current T

	Duration     time.Duration // indicator movement and color
	Curve        Curve
	IconDuration time.Duration // per-icon timelines in OnSelected mode
	IconCurve    Curve

	IconAnimation      AnimationType
	IndicatorAnimation AnimationType

	Geometry  Geometry
	Fitting   FittingMode
	Direction Direction
	Style     Style

	// ColorFor returns the indicator color for a value. Nil uses IndicatorColor.
	ColorFor func(T) colorful.Color
	// IndicatorColor is the fallback indicator color. Nil means
	// DefaultIndicatorColor; any color, black included, is honored.
	IndicatorColor *colorful.Color

	IconScale           float64
	SelectedIconScale   float64
	IconOpacity         float64
	SelectedIconOpacity float64
	InactiveOpacity     float64

	Inactive bool // dims the whole switch
	Loading  bool
}

// Normalize returns a copy with defaults filled into unset fields.
func (c Config[T]) Normalize() Config[T] {
	if c.Curve == nil {
		c.Curve = Linear
	}
	if c.IconCurve == nil {
		c.IconCurve = c.Curve
	}
	if c.IconDuration == 0 {
		c.IconDuration = c.Duration
	}
	if c.IconScale == 0 {
		c.IconScale = DefaultIconScale
	}
	if c.SelectedIconScale == 0 {
		c.SelectedIconScale = DefaultSelectedIconScale
	}
	if c.IconOpacity == 0 {
		c.IconOpacity = DefaultIconOpacity
	}
	if c.SelectedIconOpacity == 0 {
		c.SelectedIconOpacity = DefaultSelectedIconOpacity
	}
	if c.InactiveOpacity == 0 {
		c.InactiveOpacity = DefaultInactiveOpacity
	}
	if c.IndicatorColor == nil {
		def := DefaultIndicatorColor
		c.IndicatorColor = &def
	}
	return c
}

// Validate checks the configuration preconditions.
func (c Config[T]) Validate() error {
	if c.Duration < 0 {
		return fmt.Errorf("%w: duration %v", ErrInvalidDuration, c.Duration)
	}
	if c.IconDuration < 0 {
		return fmt.Errorf("%w: icon duration %v", ErrInvalidDuration, c.IconDuration)
	}
	if err := c.Geometry.validate(); err != nil {
		return fmt.Errorf("%w: %+v", err, c.Geometry)
	}
	if c.Style == StyleDual && len(c.Values) != 2 {
		return fmt.Errorf("%w: got %d", ErrDualRequiresTwoValues, len(c.Values))
	}
	seen := make(map[T]int, len(c.Values))
	for i, v := range c.Values {
		if j, dup := seen[v]; dup {
			return fmt.Errorf("%w: %v at %d and %d", ErrDuplicateValue, v, j, i)
		}
		seen[v] = i
	}
	if len(c.Values) > 0 {
		if _, ok := seen[c.Current]; !ok {
			return fmt.Errorf("%w: %v", ErrCurrentNotInValues, c.Current)
		}
	}
	return nil
}

// IndexOf returns the index of v in Values, or -1.
func (c Config[T]) IndexOf(v T) int {
	for i, x := range c.Values {
		if x == v {
			return i
		}
	}
	return -1
}

func (c Config[T]) colorFor(v T) colorful.Color {
	if c.ColorFor == nil {
		return c.fallbackColor()
	}
	return c.ColorFor(v)
}

func (c Config[T]) fallbackColor() colorful.Color {
	if c.IndicatorColor == nil {
		return DefaultIndicatorColor
	}
	return *c.IndicatorColor
}
