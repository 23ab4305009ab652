// ABOUTME: Plain interactive mode: drives the segment with the line engine, no Bubble Tea
// ABOUTME: Single event loop owns the segment; stdin events, reloads, resizes and frame ticks feed it

package interactive

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/segswitch-go/internal/log"
	"github.com/mauromedda/segswitch-go/internal/mode/interactive/btea"
	tuipkg "github.com/mauromedda/segswitch-go/pkg/tui"
	"github.com/mauromedda/segswitch-go/pkg/tui/component"
	"github.com/mauromedda/segswitch-go/pkg/tui/input"
	"github.com/mauromedda/segswitch-go/pkg/tui/key"
	"github.com/mauromedda/segswitch-go/pkg/tui/segment"
	"github.com/mauromedda/segswitch-go/pkg/tui/terminal"
	"github.com/mauromedda/segswitch-go/pkg/tui/theme"
)

// Reload carries a re-read configuration into the running app.
type Reload = btea.ConfigReloadedMsg

// AppDeps bundles all dependencies for the interactive App.
type AppDeps struct {
	Terminal terminal.Terminal
	Segment  *segment.Segment[string]
	Title    string
	FPS      int
	// Mouse switches to the alternate screen and enables SGR mouse reports.
	Mouse   bool
	Reloads <-chan Reload
}

type size struct{ w, h int }

// App is the plain interactive application. Everything that touches the
// segment runs on the goroutine executing Run.
type App struct {
	tui     *tuipkg.TUI
	term    terminal.Terminal
	seg     *segment.Segment[string]
	fps     int
	mouse   bool
	reloads <-chan Reload
	resized chan size

	titleText string
	title     *component.Text
	footer    *component.Text
	help      bool
	err       error

	done   bool
	chosen bool
}

// NewFromDeps creates a fully-wired interactive app from dependencies.
func NewFromDeps(deps AppDeps) *App {
	fps := deps.FPS
	if fps <= 0 {
		fps = btea.DefaultFPS
	}
	a := &App{
		tui:       tuipkg.New(deps.Terminal, 80, 24),
		term:      deps.Terminal,
		seg:       deps.Segment,
		fps:       fps,
		mouse:     deps.Mouse,
		reloads:   deps.Reloads,
		resized:   make(chan size, 1),
		titleText: deps.Title,
		footer:    component.NewText(""),
	}

	c := a.tui.Container()
	if a.titleText != "" {
		a.title = component.NewText(a.titleText).WithStyle(btea.Styles().Title)
		c.Add(a.title)
		c.Add(component.NewSpacer(1))
	}
	c.Add(a.seg)
	c.Add(component.NewSpacer(1))
	c.Add(a.footer)
	a.seg.SetOrigin(0, a.headerRows())
	return a
}

// headerRows is the number of screen rows above the switch.
func (a *App) headerRows() int {
	if a.title == nil {
		return 0
	}
	return 2
}

// Selected returns the current value and whether the user chose it with Enter.
func (a *App) Selected() (string, bool) {
	return a.seg.Current(), a.chosen
}

// Run is the blocking main loop. It enters raw mode, draws the switch and
// processes input until the user chooses, quits, input ends or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) (string, bool, error) {
	if err := a.term.EnterRawMode(); err != nil {
		return "", false, fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() { _ = a.term.ExitRawMode() }()

	if a.mouse {
		if err := terminal.EnterAltScreen(a.term); err != nil {
			return "", false, fmt.Errorf("entering alternate screen: %w", err)
		}
		defer func() { _ = terminal.ExitAltScreen(a.term) }()
		if err := terminal.EnableMouse(a.term); err != nil {
			return "", false, fmt.Errorf("enabling mouse: %w", err)
		}
		defer func() { _ = terminal.DisableMouse(a.term) }()
	}
	if err := terminal.EnableFocusReports(a.term); err != nil {
		return "", false, fmt.Errorf("enabling focus reports: %w", err)
	}
	defer func() { _ = terminal.DisableFocusReports(a.term) }()

	w, h, err := a.term.Size()
	if err != nil {
		w, h = 80, 24
	}
	a.tui.SetSize(w, h)
	a.term.OnResize(func(width, height int) {
		// Keep only the latest size.
		select {
		case <-a.resized:
		default:
		}
		select {
		case a.resized <- size{width, height}:
		default:
		}
	})
	defer a.tui.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan string)
	inputDone := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	buf := input.NewStdinBuffer(a.term, func(ev string) {
		select {
		case events <- ev:
		case <-gctx.Done():
		}
	})
	g.Go(func() error {
		defer close(inputDone)
		return buf.Start(gctx)
	})
	g.Go(func() error {
		defer cancel()
		a.loop(gctx, events, inputDone)
		return nil
	})

	if err := g.Wait(); err != nil {
		return "", false, fmt.Errorf("reading input: %w", err)
	}
	v, chosen := a.Selected()
	return v, chosen, nil
}

// loop owns the segment until the user is done or input stops.
func (a *App) loop(ctx context.Context, events <-chan string, inputDone <-chan struct{}) {
	frame := time.Second / time.Duration(a.fps)
	var ticker *time.Ticker
	var tick <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()
	last := time.Now()

	a.render()
	for !a.done {
		switch need := a.needsFrames(); {
		case need && ticker == nil:
			ticker = time.NewTicker(frame)
			tick = ticker.C
			last = time.Now()
		case !need && ticker != nil:
			ticker.Stop()
			ticker, tick = nil, nil
		}

		select {
		case <-ctx.Done():
			return
		case <-inputDone:
			log.Debug("interactive: input closed")
			return
		case ev := <-events:
			a.handleEvent(ev)
		case r, ok := <-a.reloads:
			if !ok {
				a.reloads = nil
				continue
			}
			a.applyReload(r)
		case s := <-a.resized:
			a.tui.SetSize(s.w, s.h)
		case now := <-tick:
			a.tui.Container().Tick(now.Sub(last))
			last = now
		}
		a.render()
	}
}

func (a *App) needsFrames() bool {
	sw := a.seg.Switch()
	return sw.Animating() || sw.Loading() || a.seg.Query() != ""
}

// handleEvent routes one input event. App keys are handled first; the
// rest goes to the segment.
func (a *App) handleEvent(ev string) {
	if key.IsMouse(ev) {
		if !a.help {
			a.seg.HandleInput(ev)
		}
		return
	}

	k := key.ParseKey(ev)
	switch {
	case k.Type == key.KeyFocusIn || k.Type == key.KeyFocusOut:
		a.seg.SetInactive(k.Type == key.KeyFocusOut)
	case k.Type == key.KeyCtrlC:
		a.done = true
	case k.Type == key.KeyEnter:
		a.done, a.chosen = true, true
	case k.Type == key.KeyCtrlL:
		a.seg.SetLoading(!a.seg.Switch().Loading())
	case k.Type == key.KeyRune && k.Rune == '?' && !k.Alt && a.seg.Query() == "":
		a.toggleHelp()
	case k.Type == key.KeyEscape && a.help:
		a.toggleHelp()
	case k.Type == key.KeyEscape:
		if !a.seg.HandleKey(k) {
			a.done = true
		}
	case a.help:
		// The help box is modal.
	default:
		a.seg.HandleKey(k)
	}
}

func (a *App) toggleHelp() {
	if a.help {
		a.tui.PopOverlay()
		a.help = false
		return
	}
	box := component.NewBox(component.NewText(btea.HelpText)).WithPadding(1)
	box.Style = btea.Styles().Help.UnsetPadding()
	a.tui.PushOverlay(tuipkg.Overlay{Component: box, Position: tuipkg.OverlayTop})
	a.help = true
}

func (a *App) applyReload(r Reload) {
	if r.Err != nil {
		log.Warn("interactive: config reload: %v", r.Err)
		a.err = r.Err
		return
	}
	if r.Theme != nil {
		theme.Set(r.Theme)
		if a.title != nil {
			a.title.WithStyle(btea.Styles().Title)
		}
	}
	if err := a.seg.Reconfigure(r.KeepCurrent(a.seg.Current())); err != nil {
		log.Warn("interactive: reconfigure: %v", err)
		a.err = err
		return
	}
	a.err = nil
	a.tui.Container().Invalidate()
}

// render refreshes the footer and draws one frame.
func (a *App) render() {
	sw := a.seg.Switch()
	a.footer.SetContent(btea.NewFooterModel().
		WithValue(a.seg.Current(), sw.CurrentIndex(), len(sw.Values())).
		WithQuery(a.seg.Query()).
		WithError(a.err).
		View())
	a.tui.RenderOnce()
}
