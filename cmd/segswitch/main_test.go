// ABOUTME: Tests for CLI flag parsing, settings layering, theme lookup and reloads
// ABOUTME: HOME points at a temp dir so real user config never leaks in

package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/segswitch-go/pkg/toggle"
	"github.com/mauromedda/segswitch-go/pkg/tui/theme"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{"--style", "rolling", "--duration", "200ms", "--rtl", "--no-mouse", "a", "b"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(args.values, []string{"a", "b"}) {
		t.Errorf("values = %v; want the arguments", args.values)
	}

	s := args.overrides()
	if s.Style != "rolling" || s.Duration != "200ms" || s.Direction != "rtl" {
		t.Errorf("overrides = %+v", s)
	}
	if s.MouseEnabled() {
		t.Error("--no-mouse should disable the mouse")
	}
}

func TestParseFlags_Sizing(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{"--fit-width", "40", "--fitting", "none", "a", "b", "c"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	s := args.overrides()
	if s.FitWidth != 40 || s.Fitting != "none" {
		t.Errorf("overrides = %+v", s)
	}
	cfg, err := s.ToggleConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Fitting != toggle.FitNone {
		t.Errorf("fitting = %v; want none", cfg.Fitting)
	}
	if want := toggle.Size(args.values, "a", 40).Geometry.SlotWidth; cfg.Geometry.SlotWidth != want {
		t.Errorf("slot width = %v; want %v", cfg.Geometry.SlotWidth, want)
	}
}

func TestParseFlags_ValuesFlagWins(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{"--values", " x, ,y ", "ignored"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(args.values, []string{"x", "y"}) {
		t.Errorf("values = %v; want [x y]", args.values)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"--duration", "soon"}, io.Discard); err == nil {
		t.Error("bad duration should fail")
	}
	if _, err := parseFlags([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h: got %v; want flag.ErrHelp", err)
	}
}

func TestOverrides_Empty(t *testing.T) {
	t.Parallel()

	s := cliArgs{}.overrides()
	if s.Duration != "" || s.Direction != "" || s.Mouse != nil || s.LogLevel != "" {
		t.Errorf("zero flags should override nothing: %+v", s)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSettings_Layering(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SEGSWITCH_CURVE", "linear")

	writeFile(t, filepath.Join(home, ".segswitch", "config.yaml"), "values: [a, b, c]\nstyle: rolling\ncurve: ease-in\n")
	writeFile(t, filepath.Join(project, ".segswitch", "config.yaml"), "current: b\n")
	extra := filepath.Join(t.TempDir(), "extra.yaml")
	writeFile(t, extra, "duration: 1s\n")

	args := cliArgs{config: extra, current: "c"}
	s, err := loadSettings(project, args)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(s.Values, []string{"a", "b", "c"}) {
		t.Errorf("values = %v", s.Values)
	}
	if s.Style != "rolling" || s.Curve != "linear" || s.Duration != "1s" || s.Current != "c" {
		t.Errorf("settings = %+v", s)
	}

	files := watchedFiles(project, args)
	if len(files) != 3 || files[2] != extra {
		t.Errorf("watchedFiles = %v", files)
	}
}

func TestReload(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, filepath.Join(project, ".segswitch", "config.yaml"), "values: [x, y]\ntheme: light\nduration: 120ms\n")
	msg := reload(project, cliArgs{})
	if msg.Err != nil {
		t.Fatal(msg.Err)
	}
	if !slices.Equal(msg.Config.Values, []string{"x", "y"}) || msg.Config.Duration != 120*time.Millisecond {
		t.Errorf("config = %+v", msg.Config)
	}
	if msg.Theme == nil || msg.Theme.Name != "light" {
		t.Errorf("theme = %v; want light", msg.Theme)
	}

	writeFile(t, filepath.Join(project, ".segswitch", "config.yaml"), "values: [x, y]\ncurve: wobbly\n")
	msg = reload(project, cliArgs{})
	if !errors.Is(msg.Err, toggle.ErrUnknownCurve) {
		t.Errorf("err = %v; want ErrUnknownCurve", msg.Err)
	}
}

func TestResolveTheme(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	th, err := resolveTheme("")
	if err != nil || th == nil {
		t.Fatalf("default theme: %v", err)
	}

	writeFile(t, filepath.Join(home, ".segswitch", "themes", "mine.json"), `{"name": "mine", "palette": {"indicator": "#ff0000"}}`)
	th, err = resolveTheme("mine")
	if err != nil {
		t.Fatal(err)
	}
	if got := th.Palette.Indicator.Hex(); got != "#ff0000" {
		t.Errorf("indicator = %s; want #ff0000", got)
	}

	if _, err := resolveTheme("nope"); !errors.Is(err, theme.ErrUnknownTheme) {
		t.Errorf("err = %v; want ErrUnknownTheme", err)
	}
}

func TestEngineName(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"": "btea", "btea": "btea", "plain": "plain", "other": "btea"} {
		if got := engineName(in); got != want {
			t.Errorf("engineName(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestExplainStyle(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"light": "light", "dark": "dark", "": "dark", "mine": "dark"} {
		if got := explainStyle(in); got != want {
			t.Errorf("explainStyle(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestRenderExplain(t *testing.T) {
	t.Parallel()

	md := "## Switch\n\n- **Values:** a, b\n"
	out := renderExplain(md, "notty", 60)
	for _, want := range []string{"Switch", "Values:", "a, b"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered explain missing %q:\n%s", want, out)
		}
	}
	if strings.HasSuffix(out, "\n\n") {
		t.Errorf("trailing blank lines should be trimmed:\n%q", out)
	}

	if got := renderExplain(md, "no-such-style", 60); got != md {
		t.Errorf("unknown style should fall back to raw markdown, got:\n%s", got)
	}
}
