// ABOUTME: Tests for settings loading, merging, env overrides and conversion to a switch config
// ABOUTME: Uses temp dirs and a fake getenv; no real home directory is touched

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/segswitch-go/pkg/toggle"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile_MissingIsEmpty(t *testing.T) {
	t.Parallel()

	s, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Values) != 0 || s.Theme != "" {
		t.Errorf("expected empty settings, got %+v", s)
	}
}

func TestLoadFile_ParsesYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `values: [day, night, auto]
current: night
style: rolling
duration: 200ms
geometry:
  slot_width: 9
mouse: false
`)
	s, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(s.Values, ","); got != "day,night,auto" {
		t.Errorf("values = %q", got)
	}
	if s.Current != "night" || s.Style != "rolling" || s.Duration != "200ms" {
		t.Errorf("unexpected settings %+v", s)
	}
	if s.Geometry == nil || s.Geometry.SlotWidth == nil || *s.Geometry.SlotWidth != 9 {
		t.Errorf("geometry = %+v", s.Geometry)
	}
	if s.MouseEnabled() {
		t.Error("mouse should be disabled")
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "values: [unclosed\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SEGSWITCH_THEME", "")

	writeFile(t, filepath.Join(home, ".segswitch", "config.yaml"), "values: [a, b]\ntheme: dark\nfps: 30\n")
	writeFile(t, filepath.Join(project, ".segswitch", "config.yaml"), "values: [x, y, z]\nfps: 60\n")

	s, err := Load(project)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(s.Values, ","); got != "x,y,z" {
		t.Errorf("values = %q, want project list", got)
	}
	if s.Theme != "dark" {
		t.Errorf("theme = %q, want global value", s.Theme)
	}
	if s.FPS != 60 {
		t.Errorf("fps = %d, want 60", s.FPS)
	}
}

func TestMerge_Geometry(t *testing.T) {
	t.Parallel()

	global := &Settings{Geometry: &GeometrySettings{SlotWidth: ptr(5), Spacing: ptr(2)}}
	project := &Settings{Geometry: &GeometrySettings{Spacing: ptr(0)}}
	m := Merge(global, project)
	if *m.Geometry.SlotWidth != 5 || *m.Geometry.Spacing != 0 {
		t.Errorf("geometry = %+v", m.Geometry)
	}
	if *global.Geometry.Spacing != 2 {
		t.Error("merge must not mutate the global settings")
	}
}

func TestMerge_FitAndFitting(t *testing.T) {
	t.Parallel()

	global := &Settings{FitWidth: 40, Fitting: "none"}
	m := Merge(global, &Settings{FitHeight: 3})
	if m.FitWidth != 0 || m.FitHeight != 3 {
		t.Errorf("project fit should replace the global one: %v/%v", m.FitWidth, m.FitHeight)
	}
	if m.Fitting != "none" {
		t.Errorf("fitting = %q", m.Fitting)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"SEGSWITCH_VALUES": " on, off ,,",
		"SEGSWITCH_STYLE":  "dual",
		"SEGSWITCH_FPS":    "24",
		"SEGSWITCH_MOUSE":  "false",
	}
	s := &Settings{Style: "standard", FPS: 60}
	ApplyEnv(s, func(k string) string { return env[k] })

	if got := strings.Join(s.Values, ","); got != "on,off" {
		t.Errorf("values = %q", got)
	}
	if s.Style != "dual" || s.FPS != 24 || s.MouseEnabled() {
		t.Errorf("unexpected settings %+v", s)
	}
}

func TestApplyEnv_BadNumberIgnored(t *testing.T) {
	t.Parallel()

	s := &Settings{FPS: 60}
	ApplyEnv(s, func(k string) string {
		if k == "SEGSWITCH_FPS" {
			return "fast"
		}
		return ""
	})
	if s.FPS != 60 {
		t.Errorf("fps = %d, want unchanged", s.FPS)
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("SEGSWITCH_TEST_LABEL", "cloudy")

	s := &Settings{Values: []string{"sunny", "${SEGSWITCH_TEST_LABEL}"}, Current: "${SEGSWITCH_TEST_LABEL}"}
	ResolveEnvVars(s)
	if s.Values[1] != "cloudy" || s.Current != "cloudy" {
		t.Errorf("unexpected expansion %+v", s)
	}
}

func TestToggleConfig(t *testing.T) {
	t.Parallel()

	s := &Settings{
		Values:        []string{"a", "b", "c"},
		Style:         "rolling",
		Curve:         "ease-out",
		Duration:      "120ms",
		IconAnimation: "selected",
		Direction:     "rtl",
		Geometry:      &GeometrySettings{Spacing: ptr(3)},
	}
	cfg, err := s.ToggleConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Current != "a" {
		t.Errorf("current = %q, want first value", cfg.Current)
	}
	if cfg.Style != toggle.StyleRolling || cfg.Duration != 120*time.Millisecond {
		t.Errorf("style/duration = %v/%v", cfg.Style, cfg.Duration)
	}
	if cfg.IconAnimation != toggle.OnSelected || cfg.IndicatorAnimation != toggle.OnHover {
		t.Errorf("animations = %v/%v", cfg.IconAnimation, cfg.IndicatorAnimation)
	}
	if cfg.Direction != toggle.RightToLeft || cfg.Geometry.Spacing != 3 {
		t.Errorf("direction/spacing = %v/%v", cfg.Direction, cfg.Geometry.Spacing)
	}
	if _, err := toggle.New(cfg); err != nil {
		t.Errorf("config should validate: %v", err)
	}
}

func TestToggleConfig_ZeroGeometry(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `values: [a, b]
geometry:
  spacing: 0
  border_width: 0
`)
	s, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := s.ToggleConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Geometry.Spacing != 0 || cfg.Geometry.BorderWidth != 0 {
		t.Errorf("explicit zeros should win over the preset: %+v", cfg.Geometry)
	}
	if cfg.Geometry.SlotWidth != toggle.Standard([]string{"a"}, "a").Geometry.SlotWidth {
		t.Errorf("unset slot width should keep the preset: %v", cfg.Geometry.SlotWidth)
	}
}

func TestToggleConfig_Sizing(t *testing.T) {
	t.Parallel()

	values := []string{"a", "b", "c"}

	cfg, err := (&Settings{Values: values, FitWidth: 40}).ToggleConfig()
	if err != nil {
		t.Fatal(err)
	}
	if want := toggle.Size(values, "a", 40).Geometry; cfg.Geometry != want {
		t.Errorf("fit_width geometry = %+v, want %+v", cfg.Geometry, want)
	}

	cfg, err = (&Settings{Values: values, FitHeight: 5, Fitting: "none"}).ToggleConfig()
	if err != nil {
		t.Fatal(err)
	}
	if want := toggle.ByHeight(values, "a", 5).Geometry; cfg.Geometry != want {
		t.Errorf("fit_height geometry = %+v, want %+v", cfg.Geometry, want)
	}
	if cfg.Fitting != toggle.FitNone {
		t.Errorf("fitting = %v, want none", cfg.Fitting)
	}

	if _, err := (&Settings{Values: values, FitWidth: 40, FitHeight: 5}).ToggleConfig(); !errors.Is(err, ErrConflictingFit) {
		t.Errorf("err = %v, want ErrConflictingFit", err)
	}
	if _, err := (&Settings{Values: values, Fitting: "squeeze"}).ToggleConfig(); err == nil {
		t.Error("unknown fitting mode should fail")
	}
}

func TestToggleConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    Settings
		want error
	}{
		{"unknown curve", Settings{Values: []string{"a"}, Curve: "wobbly"}, toggle.ErrUnknownCurve},
		{"bad duration", Settings{Values: []string{"a"}, Duration: "soon"}, toggle.ErrInvalidDuration},
		{"dual needs two", Settings{Values: []string{"a", "b", "c"}, Style: "dual"}, toggle.ErrDualRequiresTwoValues},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.s.ToggleConfig()
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := (&Settings{Style: "diagonal"}).ToggleConfig(); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestExplain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	present := filepath.Join(dir, "config.yaml")
	writeFile(t, present, "{}")

	out := Explain(&Settings{Values: []string{"a", "b"}, Theme: "light", FPS: 30}, []string{present, filepath.Join(dir, "other.yaml")})
	for _, want := range []string{"## Switch", "- **Values:** a, b", "- **Theme:** light", "- **FPS:** 30", "(loaded)", "(missing)"} {
		if !strings.Contains(out, want) {
			t.Errorf("explain output missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(Explain(nil, nil), "## Terminal") {
		t.Error("nil settings should still render sections")
	}
}

func ptr(f float64) *float64 { return &f }
