// ABOUTME: Built-in themes: default, dark, light, monochrome, rainbow
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "slices"

var builtins = map[string]*Theme{
	"default": {Name: "default", Palette: DefaultPalette()},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Background:    MustHex("#000000"),
			Track:         MustHex("#1c1c1c"),
			Border:        MustHex("#444444"),
			BorderFocused: MustHex("#ffaf00"),
			Indicator:     MustHex("#005fd7"),
			Icon:          MustHex("#8a8a8a"),
			IconSelected:  MustHex("#ffffff"),
			Text:          MustHex("#eeeeee"),
			Muted:         MustHex("#626262"),
			Accent:        MustHex("#ffaf00"),
			Error:         MustHex("#ff5f5f"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Background:    MustHex("#ffffff"),
			Track:         MustHex("#e4e4e4"),
			Border:        MustHex("#b2b2b2"),
			BorderFocused: MustHex("#005faf"),
			Indicator:     MustHex("#0087d7"),
			Icon:          MustHex("#585858"),
			IconSelected:  MustHex("#ffffff"),
			Text:          MustHex("#1c1c1c"),
			Muted:         MustHex("#8a8a8a"),
			Accent:        MustHex("#d75f00"),
			Error:         MustHex("#d70000"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Background:    MustHex("#000000"),
			Track:         MustHex("#262626"),
			Border:        MustHex("#808080"),
			BorderFocused: MustHex("#ffffff"),
			Indicator:     MustHex("#d0d0d0"),
			Icon:          MustHex("#9e9e9e"),
			IconSelected:  MustHex("#000000"),
			Text:          MustHex("#ffffff"),
			Muted:         MustHex("#767676"),
			Accent:        MustHex("#ffffff"),
			Error:         MustHex("#ffffff"),
		},
	},
	"rainbow": {
		Name: "rainbow",
		Palette: func() Palette {
			p := DefaultPalette()
			p.Values = []Color{
				MustHex("#e53935"),
				MustHex("#fb8c00"),
				MustHex("#fdd835"),
				MustHex("#43a047"),
				MustHex("#1e88e5"),
				MustHex("#8e24aa"),
			}
			return p
		}(),
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
