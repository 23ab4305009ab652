// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Flags override config files and SEGSWITCH_* variables; bare arguments become values

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mauromedda/segswitch-go/internal/config"
)

type cliArgs struct {
	config        string
	values        []string
	current       string
	style         string
	curve         string
	duration      time.Duration
	iconAnim      string
	indicatorAnim string
	rtl           bool
	fitting       string
	fitWidth      float64
	fitHeight     float64
	compact       bool
	noMouse       bool
	theme         string
	engine        string
	fps           int
	title         string

	print  bool
	frames int
	format string
	from   string
	to     string

	verbose       bool
	version       bool
	explainConfig bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	var values string

	fs := flag.NewFlagSet("segswitch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: segswitch [flags] [value ...]")
		fs.PrintDefaults()
	}

	fs.StringVar(&args.config, "config", "", "Extra YAML config file, applied over the global and project files")
	fs.StringVar(&values, "values", "", "Comma-separated values (default: the arguments)")
	fs.StringVar(&args.current, "current", "", "Initially selected value")
	fs.StringVar(&args.style, "style", "", "Switch style: standard, rolling or dual")
	fs.StringVar(&args.curve, "curve", "", "Animation curve (e.g. ease-in-out-cubic, spring)")
	fs.DurationVar(&args.duration, "duration", 0, "Animation duration (e.g. 350ms)")
	fs.StringVar(&args.iconAnim, "icon-anim", "", "Icon animation: on-selected or on-hover")
	fs.StringVar(&args.indicatorAnim, "indicator-anim", "", "Indicator color animation: on-selected or on-hover")
	fs.BoolVar(&args.rtl, "rtl", false, "Lay values out right to left")
	fs.StringVar(&args.fitting, "fitting", "", "Indicator fitting: prevent-overlap (default) or none")
	fs.Float64Var(&args.fitWidth, "fit-width", 0, "Size slots so the standard switch spans this many columns")
	fs.Float64Var(&args.fitHeight, "fit-height", 0, "Size slots for a standard switch this many rows tall")
	fs.BoolVar(&args.compact, "compact", false, "Single row without borders")
	fs.BoolVar(&args.noMouse, "no-mouse", false, "Disable mouse reporting")
	fs.StringVar(&args.theme, "theme", "", "Built-in theme name or JSON theme file")
	fs.StringVar(&args.engine, "engine", "", "Interactive engine: btea (default) or plain")
	fs.IntVar(&args.fps, "fps", 0, "Frames per second while animating")
	fs.StringVar(&args.title, "title", "", "Title shown above the switch")

	fs.BoolVar(&args.print, "print", false, "Non-interactive: print the frames of one transition")
	fs.IntVar(&args.frames, "frames", 0, "Frames to print (default 5)")
	fs.StringVar(&args.format, "format", "text", "Print format: text, json or stream-json")
	fs.StringVar(&args.from, "from", "", "Print: starting value (default: current)")
	fs.StringVar(&args.to, "to", "", "Print: target value (default: the next value)")

	fs.BoolVar(&args.verbose, "verbose", false, "Debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.BoolVar(&args.explainConfig, "explain-config", false, "Show the effective configuration and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	args.values = splitValues(values)
	if len(args.values) == 0 {
		args.values = fs.Args()
	}
	return args, nil
}

// splitValues splits a comma-separated list, dropping empty entries.
func splitValues(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// overrides turns the flags into Settings layered over every config source.
func (a cliArgs) overrides() *config.Settings {
	s := &config.Settings{
		Values:             a.values,
		Current:            a.current,
		Style:              a.style,
		Curve:              a.curve,
		IconAnimation:      a.iconAnim,
		IndicatorAnimation: a.indicatorAnim,
		Theme:              a.theme,
		Engine:             a.engine,
		FPS:                a.fps,
		Compact:            a.compact,
		Fitting:            a.fitting,
		FitWidth:           a.fitWidth,
		FitHeight:          a.fitHeight,
	}
	if a.duration > 0 {
		s.Duration = a.duration.String()
	}
	if a.rtl {
		s.Direction = "rtl"
	}
	if a.noMouse {
		off := false
		s.Mouse = &off
	}
	if a.verbose {
		s.LogLevel = "debug"
	}
	return s
}
