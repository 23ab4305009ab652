// ABOUTME: CLI entry point for segswitch with terminal crash recovery
// ABOUTME: Parses flags, loads config, resolves the theme, dispatches to print or an interactive engine

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground(true) in its init(), preventing
	// BubbleTea's tea_init.go from sending OSC 10/11 terminal queries whose
	// async responses leak garbage into the input stream.
	"github.com/mauromedda/segswitch-go/internal/termfix"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/segswitch-go/internal/config"
	"github.com/mauromedda/segswitch-go/internal/log"
	"github.com/mauromedda/segswitch-go/internal/mode/interactive"
	"github.com/mauromedda/segswitch-go/internal/mode/interactive/btea"
	"github.com/mauromedda/segswitch-go/internal/mode/print"
	"github.com/mauromedda/segswitch-go/pkg/toggle"
	"github.com/mauromedda/segswitch-go/pkg/tui/segment"
	"github.com/mauromedda/segswitch-go/pkg/tui/terminal"
	"github.com/mauromedda/segswitch-go/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// exitCancelled is the exit status when the user leaves without choosing.
const exitCancelled = 130

var (
	errNoValues  = errors.New("no values: pass them as arguments, with --values or in config.yaml")
	errNoTTY     = errors.New("interactive mode needs a terminal on stdin and stderr; use --print")
	errCancelled = errors.New("cancelled")
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("segswitch %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	value, err := run(args)
	switch {
	case errors.Is(err, errCancelled):
		os.Exit(exitCancelled)
	case err != nil:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if value != "" {
		fmt.Println(value)
	}
}

// run performs the full initialization sequence and dispatches to the
// selected mode. It returns the chosen value in interactive mode.
func run(args cliArgs) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	s, err := loadSettings(cwd, args)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}

	if args.explainConfig {
		printExplain(config.Explain(s, watchedFiles(cwd, args)), s.Theme)
		return "", nil
	}

	interactiveMode := !args.print
	closeLog, err := setupLogging(s, interactiveMode)
	if err != nil {
		return "", err
	}
	defer closeLog()

	// Print output goes to stdout; the interactive UI draws on stderr.
	out := os.Stdout
	if interactiveMode {
		out = os.Stderr
	}
	renderer := lipgloss.NewRenderer(out)
	lipgloss.SetDefaultRenderer(renderer)

	th, err := resolveTheme(s.Theme)
	if err != nil {
		return "", fmt.Errorf("resolving theme: %w", err)
	}
	theme.Set(th)
	termfix.Follow(th.Palette)

	cfg, err := s.ToggleConfig()
	if err != nil {
		return "", fmt.Errorf("building switch: %w", err)
	}
	if len(cfg.Values) == 0 {
		return "", errNoValues
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if args.print {
		if args.from != "" {
			cfg.Current = args.from
		}
		seg, err := newSegment(cfg, s, renderer)
		if err != nil {
			return "", err
		}
		pc := print.Config{
			OutputFormat: args.format,
			To:           args.to,
			Frames:       args.frames,
		}
		return "", print.Run(ctx, pc, seg, os.Stdout)
	}

	if !terminal.IsTerminal() {
		return "", errNoTTY
	}
	seg, err := newSegment(cfg, s, renderer)
	if err != nil {
		return "", err
	}
	return runInteractive(ctx, cwd, args, s, seg)
}

// loadSettings layers global config, project config, SEGSWITCH_* variables,
// the --config file and finally the flags.
func loadSettings(cwd string, args cliArgs) (*config.Settings, error) {
	s, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	if args.config != "" {
		extra, err := config.LoadFile(args.config)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", args.config, err)
		}
		s = config.Merge(s, extra)
	}
	return config.Merge(s, args.overrides()), nil
}

// watchedFiles lists every config file that feeds the settings.
func watchedFiles(cwd string, args cliArgs) []string {
	files := config.Files(cwd)
	if args.config != "" {
		files = append(files, args.config)
	}
	return files
}

// setupLogging applies the configured level. Interactive sessions log to a
// file so log lines never land on the switch.
func setupLogging(s *config.Settings, toFile bool) (func(), error) {
	if s.LogLevel != "" {
		level, err := log.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, err
		}
		log.SetLevel(level)
	}
	if !toFile {
		return func() {}, nil
	}

	path := s.LogFile
	if path == "" {
		path = config.LogFile()
	}
	if err := config.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}

// resolveTheme finds a theme by built-in name, then in the themes
// directory, then as a path. The empty name is the default theme.
func resolveTheme(name string) (*theme.Theme, error) {
	if name != "" && theme.Builtin(name) == nil {
		path := filepath.Join(config.ThemesDir(), name+".json")
		if _, err := os.Stat(path); err == nil {
			return theme.LoadFile(path)
		}
	}
	return theme.Resolve(name)
}

func newSegment(cfg toggle.Config[string], s *config.Settings, r *lipgloss.Renderer) (*segment.Segment[string], error) {
	seg, err := segment.New(cfg, segment.Options[string]{
		Label:    func(v string) string { return v },
		Compact:  s.Compact,
		Renderer: r,
	})
	if err != nil {
		return nil, fmt.Errorf("building switch: %w", err)
	}
	return seg, nil
}

// runInteractive runs the configured engine next to a config watcher that
// feeds reloads into it.
func runInteractive(ctx context.Context, cwd string, args cliArgs, s *config.Settings, seg *segment.Segment[string]) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reloads := make(chan btea.ConfigReloadedMsg)
	watcher := config.NewWatcher(watchedFiles(cwd, args), func() {
		msg := reload(cwd, args)
		select {
		case reloads <- msg:
		case <-ctx.Done():
		}
	})

	var (
		value  string
		chosen bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		var err error
		value, chosen, err = runEngine(gctx, s, args.title, seg, reloads)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}
	if !chosen {
		return "", errCancelled
	}
	return value, nil
}

func runEngine(ctx context.Context, s *config.Settings, title string, seg *segment.Segment[string], reloads <-chan btea.ConfigReloadedMsg) (string, bool, error) {
	log.Info("segswitch: %s engine, %d values", engineName(s.Engine), len(seg.Switch().Values()))

	if engineName(s.Engine) == "plain" {
		term := terminal.NewProcessTerminal()
		defer terminal.RestoreOnPanic(term)
		app := interactive.NewFromDeps(interactive.AppDeps{
			Terminal: term,
			Segment:  seg,
			Title:    title,
			FPS:      s.FPS,
			Mouse:    s.MouseEnabled(),
			Reloads:  reloads,
		})
		return app.Run(ctx)
	}

	m := btea.NewAppModel(seg, btea.Options{Title: title, FPS: s.FPS})
	final, err := btea.Run(ctx, m, reloads, btea.RunOptions{Mouse: s.MouseEnabled()})
	if err != nil {
		return "", false, err
	}
	v, chosen := final.Selected()
	return v, chosen, nil
}

func engineName(s string) string {
	if s == "plain" {
		return s
	}
	return "btea"
}

// reload re-reads every config source for the watcher.
func reload(cwd string, args cliArgs) btea.ConfigReloadedMsg {
	s, err := loadSettings(cwd, args)
	if err != nil {
		return btea.ConfigReloadedMsg{Err: err}
	}
	th, err := resolveTheme(s.Theme)
	if err != nil {
		return btea.ConfigReloadedMsg{Err: err}
	}
	cfg, err := s.ToggleConfig()
	if err != nil {
		return btea.ConfigReloadedMsg{Err: err}
	}
	log.Debug("segswitch: reloaded %d values", len(cfg.Values))
	return btea.ConfigReloadedMsg{Config: cfg, Theme: th}
}
