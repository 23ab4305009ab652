// ABOUTME: Tests for built-in themes
// ABOUTME: Verifies each theme is registered under its name and every palette role is set

package theme

import (
	"reflect"
	"testing"
)

func TestBuiltinThemes_AllExist(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"dark", "default", "light", "monochrome", "rainbow"} {
		th := Builtin(name)
		if th == nil {
			t.Errorf("Builtin(%q) returned nil", name)
			continue
		}
		if th.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, th.Name)
		}
	}
	if got := len(BuiltinNames()); got != 5 {
		t.Errorf("BuiltinNames() has %d entries, want 5", got)
	}
}

func TestBuiltinThemes_UnknownReturnsNil(t *testing.T) {
	t.Parallel()
	if th := Builtin("nonexistent"); th != nil {
		t.Errorf("Builtin(nonexistent) should return nil, got %v", th)
	}
}

func TestBuiltinThemes_IndicatorContrastsWithIcons(t *testing.T) {
	t.Parallel()
	for _, name := range BuiltinNames() {
		p := Builtin(name).Palette
		if p.Indicator.Color.DistanceRgb(p.IconSelected.Color) < 0.2 {
			t.Errorf("theme %q: selected icon is unreadable on the indicator", name)
		}
		if p.Track == p.Indicator {
			t.Errorf("theme %q: indicator invisible on track", name)
		}
	}
}

func TestBuiltinThemes_AllRolesSet(t *testing.T) {
	t.Parallel()
	black := MustHex("#000000")
	for _, name := range BuiltinNames() {
		p := Builtin(name).Palette
		v := reflect.ValueOf(p)
		set := 0
		for i := range v.NumField() {
			if c, ok := v.Field(i).Interface().(Color); ok && c != black {
				set++
			}
		}
		// Dark backgrounds may legitimately be black; everything else must be set.
		if set < 9 {
			t.Errorf("theme %q: only %d roles set", name, set)
		}
	}
}

func TestValueColor(t *testing.T) {
	t.Parallel()

	p := Builtin("rainbow").Palette
	if p.ValueColor(0) != p.Values[0] {
		t.Error("index 0 should use the first value color")
	}
	if p.ValueColor(len(p.Values)) != p.Values[0] {
		t.Error("value colors should cycle")
	}
	d := DefaultPalette()
	if d.ValueColor(3) != d.Indicator {
		t.Error("without value colors the indicator color is used")
	}
}

func TestHex(t *testing.T) {
	t.Parallel()

	c, err := Hex("#ff0000")
	if err != nil || c.R != 1 || c.G != 0 {
		t.Errorf("Hex(#ff0000) = %+v, %v", c, err)
	}
	if _, err := Hex("red"); err == nil {
		t.Error("Hex(red) should fail")
	}
	mid := MustHex("#000000").Blend(MustHex("#ffffff"), 0.5)
	if mid.Hex() != "#808080" {
		t.Errorf("Blend midpoint = %s", mid.Hex())
	}
}
