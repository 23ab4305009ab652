// ABOUTME: JSON theme file loading and name-or-path resolution
// ABOUTME: Unset palette fields inherit from DefaultPalette; malformed hex colors are errors

package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// ErrUnknownTheme is returned by Resolve for a name that is neither a
// built-in theme nor a readable file.
var ErrUnknownTheme = errors.New("unknown theme")

// jsonPalette mirrors Palette with hex strings. Field names must match.
type jsonPalette struct {
	Background    string `json:"background"`
	Track         string `json:"track"`
	Border        string `json:"border"`
	BorderFocused string `json:"border_focused"`

	Indicator    string `json:"indicator"`
	Icon         string `json:"icon"`
	IconSelected string `json:"icon_selected"`

	Text   string `json:"text"`
	Muted  string `json:"muted"`
	Accent string `json:"accent"`
	Error  string `json:"error"`

	Values []string `json:"values"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file and returns a Theme.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	p, err := convertPalette(jt.Palette, DefaultPalette())
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	name := jt.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &Theme{Name: name, Palette: p}, nil
}

// Resolve returns the built-in theme called nameOrPath, or loads it as a
// JSON file. The empty string resolves to the default theme.
func Resolve(nameOrPath string) (*Theme, error) {
	if nameOrPath == "" {
		return Builtin("default"), nil
	}
	if t := Builtin(nameOrPath); t != nil {
		return t, nil
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return nil, fmt.Errorf("%w: %q (built-ins: %s)", ErrUnknownTheme, nameOrPath, strings.Join(BuiltinNames(), ", "))
	}
	return LoadFile(nameOrPath)
}

// convertPalette copies every non-empty hex field of jp onto base, matching
// fields by name.
func convertPalette(jp jsonPalette, base Palette) (Palette, error) {
	p := base
	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()
	colorType := reflect.TypeFor[Color]()

	for i := range jpt.NumField() {
		f := jpv.Field(i)
		if f.Kind() != reflect.String || f.String() == "" {
			continue
		}
		name := jpt.Field(i).Name
		pf := pv.FieldByName(name)
		if !pf.IsValid() || pf.Type() != colorType {
			continue
		}
		c, err := Hex(f.String())
		if err != nil {
			return base, fmt.Errorf("%s: %w", jpt.Field(i).Tag.Get("json"), err)
		}
		pf.Set(reflect.ValueOf(c))
	}

	if len(jp.Values) > 0 {
		p.Values = make([]Color, len(jp.Values))
		for i, s := range jp.Values {
			c, err := Hex(s)
			if err != nil {
				return base, fmt.Errorf("values[%d]: %w", i, err)
			}
			p.Values[i] = c
		}
	}
	return p, nil
}
