// ABOUTME: Settings loading with global + project YAML config merge
// ABOUTME: Settings convert to a toggle.Config[string] through the style presets

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/segswitch-go/pkg/toggle"
)

// Settings holds the merged configuration.
type Settings struct {
	Values  []string `yaml:"values,omitempty"`
	Current string   `yaml:"current,omitempty"`
	Style   string   `yaml:"style,omitempty"`

	Curve              string `yaml:"curve,omitempty"`
	Duration           string `yaml:"duration,omitempty"`
	IconCurve          string `yaml:"icon_curve,omitempty"`
	IconDuration       string `yaml:"icon_duration,omitempty"`
	IconAnimation      string `yaml:"icon_animation,omitempty"`
	IndicatorAnimation string `yaml:"indicator_animation,omitempty"`
	Direction          string `yaml:"direction,omitempty"`
	Fitting            string `yaml:"fitting,omitempty"`

	// FitWidth and FitHeight size the slots of the standard style from a
	// track width or a row height. At most one may be set.
	FitWidth  float64           `yaml:"fit_width,omitempty"`
	FitHeight float64           `yaml:"fit_height,omitempty"`
	Geometry  *GeometrySettings `yaml:"geometry,omitempty"`

	Theme   string `yaml:"theme,omitempty"`
	Engine  string `yaml:"engine,omitempty"`
	FPS     int    `yaml:"fps,omitempty"`
	Compact bool   `yaml:"compact,omitempty"`
	Mouse   *bool  `yaml:"mouse,omitempty"`

	LogLevel string `yaml:"log_level,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
}

// GeometrySettings overrides the preset geometry. Nil fields keep the
// preset; an explicit 0 is honored.
type GeometrySettings struct {
	SlotWidth      *float64 `yaml:"slot_width,omitempty"`
	Spacing        *float64 `yaml:"spacing,omitempty"`
	BorderWidth    *float64 `yaml:"border_width,omitempty"`
	IndicatorWidth *float64 `yaml:"indicator_width,omitempty"`
	Height         *float64 `yaml:"height,omitempty"`
}

// ErrConflictingFit is returned when both fit_width and fit_height are set.
var ErrConflictingFit = errors.New("fit_width and fit_height are mutually exclusive")

// MouseEnabled reports whether mouse reporting should be turned on. Unset means yes.
func (s *Settings) MouseEnabled() bool {
	return s.Mouse == nil || *s.Mouse
}

// Load reads and merges global and project-local settings, then applies
// SEGSWITCH_* environment overrides. Project settings override global ones.
func Load(projectRoot string) (*Settings, error) {
	global, err := LoadFile(GlobalConfigFile())
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := LoadFile(ProjectConfigFile(projectRoot))
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := Merge(global, project)
	ApplyEnv(merged, os.Getenv)
	ResolveEnvVars(merged)
	return merged, nil
}

// LoadFile reads Settings from a YAML file. A missing file yields empty
// Settings and no error.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// Merge overlays project settings onto global settings.
// Non-zero project values override global values; the value list is replaced
// as a whole.
func Merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		out := *global
		return &out
	}

	result := *global

	if len(project.Values) > 0 {
		result.Values = append([]string(nil), project.Values...)
	}
	overrideString(&result.Current, project.Current)
	overrideString(&result.Style, project.Style)
	overrideString(&result.Curve, project.Curve)
	overrideString(&result.Duration, project.Duration)
	overrideString(&result.IconCurve, project.IconCurve)
	overrideString(&result.IconDuration, project.IconDuration)
	overrideString(&result.IconAnimation, project.IconAnimation)
	overrideString(&result.IndicatorAnimation, project.IndicatorAnimation)
	overrideString(&result.Direction, project.Direction)
	overrideString(&result.Fitting, project.Fitting)
	overrideString(&result.Theme, project.Theme)
	overrideString(&result.Engine, project.Engine)
	overrideString(&result.LogLevel, project.LogLevel)
	overrideString(&result.LogFile, project.LogFile)
	if project.FitWidth != 0 || project.FitHeight != 0 {
		result.FitWidth, result.FitHeight = project.FitWidth, project.FitHeight
	}
	if project.FPS != 0 {
		result.FPS = project.FPS
	}
	if project.Compact {
		result.Compact = true
	}
	if project.Mouse != nil {
		m := *project.Mouse
		result.Mouse = &m
	}

	if project.Geometry != nil {
		g := GeometrySettings{}
		if global.Geometry != nil {
			g = *global.Geometry
		}
		mergeFloat(&g.SlotWidth, project.Geometry.SlotWidth)
		mergeFloat(&g.Spacing, project.Geometry.Spacing)
		mergeFloat(&g.BorderWidth, project.Geometry.BorderWidth)
		mergeFloat(&g.IndicatorWidth, project.Geometry.IndicatorWidth)
		mergeFloat(&g.Height, project.Geometry.Height)
		result.Geometry = &g
	}

	return &result
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeFloat(dst **float64, v *float64) {
	if v != nil {
		f := *v
		*dst = &f
	}
}

func overrideFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// ToggleConfig builds the switch configuration described by s. The style
// picks the preset, and for the standard style fit_width or fit_height pick
// the sized presets; every other non-empty field overrides it.
func (s *Settings) ToggleConfig() (toggle.Config[string], error) {
	style, err := toggle.ParseStyle(s.Style)
	if err != nil {
		return toggle.Config[string]{}, err
	}
	current := s.Current
	if current == "" && len(s.Values) > 0 {
		current = s.Values[0]
	}

	var cfg toggle.Config[string]
	if s.FitWidth > 0 && s.FitHeight > 0 {
		return cfg, ErrConflictingFit
	}
	switch {
	case style == toggle.StyleRolling:
		cfg = toggle.Rolling(s.Values, current)
	case style == toggle.StyleDual:
		if len(s.Values) != 2 {
			return cfg, fmt.Errorf("%w: got %d", toggle.ErrDualRequiresTwoValues, len(s.Values))
		}
		cfg = toggle.Dual(s.Values[0], s.Values[1], current)
	case s.FitWidth > 0:
		cfg = toggle.Size(s.Values, current, s.FitWidth)
	case s.FitHeight > 0:
		cfg = toggle.ByHeight(s.Values, current, s.FitHeight)
	default:
		cfg = toggle.Standard(s.Values, current)
	}

	if s.Curve != "" {
		if cfg.Curve, err = toggle.CurveByName(s.Curve); err != nil {
			return cfg, err
		}
	}
	if s.IconCurve != "" {
		if cfg.IconCurve, err = toggle.CurveByName(s.IconCurve); err != nil {
			return cfg, err
		}
	}
	if cfg.Duration, err = parseDuration(s.Duration, cfg.Duration); err != nil {
		return cfg, err
	}
	if cfg.IconDuration, err = parseDuration(s.IconDuration, cfg.IconDuration); err != nil {
		return cfg, err
	}
	if s.IconAnimation != "" {
		if cfg.IconAnimation, err = toggle.ParseAnimationType(s.IconAnimation); err != nil {
			return cfg, err
		}
	}
	if s.IndicatorAnimation != "" {
		if cfg.IndicatorAnimation, err = toggle.ParseAnimationType(s.IndicatorAnimation); err != nil {
			return cfg, err
		}
	}
	if cfg.Direction, err = toggle.ParseDirection(s.Direction); err != nil {
		return cfg, err
	}
	if cfg.Fitting, err = toggle.ParseFitting(s.Fitting); err != nil {
		return cfg, err
	}
	if g := s.Geometry; g != nil {
		overrideFloat(&cfg.Geometry.SlotWidth, g.SlotWidth)
		overrideFloat(&cfg.Geometry.Spacing, g.Spacing)
		overrideFloat(&cfg.Geometry.BorderWidth, g.BorderWidth)
		overrideFloat(&cfg.Geometry.IndicatorWidth, g.IndicatorWidth)
		overrideFloat(&cfg.Geometry.Height, g.Height)
	}
	return cfg, nil
}

func parseDuration(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", toggle.ErrInvalidDuration, s)
	}
	return d, nil
}
