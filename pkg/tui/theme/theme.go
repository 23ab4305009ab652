// ABOUTME: Switch color themes: Color (hex-backed, go-colorful), Palette of semantic roles, Theme
// ABOUTME: Palette.ValueColor cycles per-value indicator colors and falls back to Indicator

package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color parsed from a hex string.
type Color struct {
	colorful.Color
}

// Hex parses "#rrggbb" or "#rgb".
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{c}, nil
}

// MustHex is Hex for compile-time constants; it panics on malformed input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend mixes c toward o by t in RGB space.
// t at or beyond either end returns that endpoint unchanged.
func (c Color) Blend(o Color, t float64) Color {
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return o
	}
	return Color{c.BlendRgb(o.Color, t).Clamped()}
}

// Palette holds the semantic colors of a switch and its surrounding chrome.
type Palette struct {
	// Track
	Background    Color
	Track         Color
	Border        Color
	BorderFocused Color

	// Indicator and icons
	Indicator    Color
	Icon         Color
	IconSelected Color

	// Chrome
	Text   Color
	Muted  Color
	Accent Color
	Error  Color

	// Values are per-value indicator colors, cycled by index. Empty means
	// every value uses Indicator.
	Values []Color
}

// ValueColor returns the indicator color for the value at index i.
func (p Palette) ValueColor(i int) Color {
	if len(p.Values) == 0 || i < 0 {
		return p.Indicator
	}
	return p.Values[i%len(p.Values)]
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns the palette of the "default" theme.
func DefaultPalette() Palette {
	return Palette{
		Background:    MustHex("#1e1e2e"),
		Track:         MustHex("#313244"),
		Border:        MustHex("#585b70"),
		BorderFocused: MustHex("#b4befe"),

		Indicator:    MustHex("#7c3aed"),
		Icon:         MustHex("#a6adc8"),
		IconSelected: MustHex("#ffffff"),

		Text:   MustHex("#cdd6f4"),
		Muted:  MustHex("#6c7086"),
		Accent: MustHex("#f5c2e7"),
		Error:  MustHex("#f38ba8"),
	}
}
