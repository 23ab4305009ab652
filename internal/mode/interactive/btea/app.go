// ABOUTME: Root AppModel for the Bubble Tea front-end: a titled segment plus footer and help box
// ABOUTME: Frame ticks are scheduled only while the switch animates, drags or shows the spinner

package btea

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/segswitch-go/internal/log"
	"github.com/mauromedda/segswitch-go/pkg/tui/key"
	"github.com/mauromedda/segswitch-go/pkg/tui/segment"
	"github.com/mauromedda/segswitch-go/pkg/tui/theme"
)

// DefaultFPS is the frame rate used when Options.FPS is not positive.
const DefaultFPS = 60

// HelpText lists the key bindings shown by the help box.
const HelpText = `←/→         move the indicator
home/end    first / last value
tab         next value (wraps)
shift+tab   previous value
space       next value
a-z…        jump to the best matching label
backspace   edit the jump query
mouse       click a value or drag the indicator
ctrl+l      toggle the loading spinner
enter       choose and exit
esc         clear the query, then exit`

// Options configures the app model.
type Options struct {
	Title string
	FPS   int
}

// AppModel is the root Bubble Tea model. The segment is a pointer, so every
// copy Bubble Tea makes shares it; Update is single-threaded.
type AppModel struct {
	seg    *segment.Segment[string]
	footer FooterModel
	opts   Options

	width, height int
	ticking       bool
	last          time.Time
	showHelp      bool

	chosen bool
	quit   bool
}

// NewAppModel wraps seg. The segment gets focus.
func NewAppModel(seg *segment.Segment[string], opts Options) AppModel {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	seg.SetFocused(true)
	m := AppModel{seg: seg, opts: opts, footer: NewFooterModel()}
	if m.needsFrames() {
		m.ticking = true
		m.last = time.Now()
	}
	return m.syncFooter()
}

// Selected returns the chosen value and whether the user confirmed it with
// Enter (as opposed to quitting).
func (m AppModel) Selected() (string, bool) {
	return m.seg.Current(), m.chosen
}

// Init schedules the first frame when NewAppModel found the switch already
// in motion.
func (m AppModel) Init() tea.Cmd {
	if m.ticking {
		return m.frame()
	}
	return nil
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		updated, _ := m.footer.Update(msg)
		m.footer = updated.(FooterModel)
		m.seg.Invalidate()
		return m, nil

	case frameMsg:
		return m.handleFrame(msg)

	case ConfigReloadedMsg:
		return m.handleReload(msg)

	case tea.FocusMsg:
		m.seg.SetInactive(false)
		return m, nil

	case tea.BlurMsg:
		m.seg.SetInactive(true)
		return m, nil

	case LoadingMsg:
		m.seg.SetLoading(msg.On)
		return m.animate()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m AppModel) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.last.IsZero() {
		dt = max(msg.at.Sub(m.last), 0)
	}
	m.last = msg.at
	m.seg.Tick(dt)
	m = m.syncFooter()
	if !m.needsFrames() {
		m.ticking = false
		return m, nil
	}
	return m, m.frame()
}

func (m AppModel) handleReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Warn("btea: config reload: %v", msg.Err)
		m.footer = m.footer.WithError(msg.Err)
		return m, nil
	}
	if msg.Theme != nil {
		theme.Set(msg.Theme)
	}
	if err := m.seg.Reconfigure(msg.KeepCurrent(m.seg.Current())); err != nil {
		log.Warn("btea: config reload: %v", err)
		m.footer = m.footer.WithError(err)
		return m, nil
	}
	log.Info("btea: config reloaded (%d values)", len(msg.Config.Values))
	m.footer = m.footer.WithError(nil)
	return m.animate()
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quit = true
		return m, tea.Quit
	case "enter":
		m.chosen = true
		return m, tea.Quit
	case "ctrl+l":
		m.seg.SetLoading(!m.seg.Switch().Loading())
		return m.animate()
	case "?":
		if m.seg.Query() == "" {
			m.showHelp = !m.showHelp
			return m, nil
		}
	case "esc":
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.seg.Query() == "" {
			m.quit = true
			return m, tea.Quit
		}
	}

	handled := false
	for _, k := range keysFor(msg) {
		handled = m.seg.HandleKey(k) || handled
	}
	if !handled {
		return m, nil
	}
	return m.animate()
}

// keysFor maps a Bubble Tea key to the segment's key events. A paste of
// several runes becomes several events.
func keysFor(msg tea.KeyMsg) []key.Key {
	var t key.KeyType
	switch msg.Type {
	case tea.KeyLeft:
		t = key.KeyLeft
	case tea.KeyRight:
		t = key.KeyRight
	case tea.KeyHome:
		t = key.KeyHome
	case tea.KeyEnd:
		t = key.KeyEnd
	case tea.KeyTab:
		t = key.KeyTab
	case tea.KeyShiftTab:
		t = key.KeyBackTab
	case tea.KeyBackspace:
		t = key.KeyBackspace
	case tea.KeyEsc:
		t = key.KeyEscape
	case tea.KeySpace:
		return []key.Key{{Type: key.KeyRune, Rune: ' '}}
	case tea.KeyRunes:
		keys := make([]key.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, key.Key{Type: key.KeyRune, Rune: r, Alt: msg.Alt})
		}
		return keys
	default:
		return nil
	}
	return []key.Key{{Type: t, Alt: msg.Alt}}
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := key.Mouse{X: msg.X, Y: msg.Y - m.headerRows()}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		ev.Action = key.MouseWheelUp
	case msg.Button == tea.MouseButtonWheelDown:
		ev.Action = key.MouseWheelDown
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		ev.Action = key.MousePress
	case msg.Action == tea.MouseActionMotion:
		ev.Action = key.MouseMotion
	case msg.Action == tea.MouseActionRelease:
		ev.Action = key.MouseRelease
	default:
		return m, nil
	}
	if !m.seg.HandleMouse(ev) {
		return m, nil
	}
	return m.animate()
}

// animate refreshes the footer and starts the frame loop if the switch
// needs frames and no tick is already pending.
func (m AppModel) animate() (tea.Model, tea.Cmd) {
	m = m.syncFooter()
	if m.ticking || !m.needsFrames() {
		return m, nil
	}
	m.ticking = true
	m.last = time.Now()
	return m, m.frame()
}

func (m AppModel) needsFrames() bool {
	sw := m.seg.Switch()
	return sw.Animating() || sw.Loading() || m.seg.Query() != ""
}

func (m AppModel) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

func (m AppModel) syncFooter() AppModel {
	sw := m.seg.Switch()
	m.footer = m.footer.
		WithValue(m.seg.Current(), sw.CurrentIndex(), len(sw.Values())).
		WithQuery(m.seg.Query())
	return m
}

func (m AppModel) header() []string {
	if m.opts.Title == "" {
		return nil
	}
	return []string{Styles().Title.Render(m.opts.Title), ""}
}

// headerRows is the number of screen rows above the switch.
func (m AppModel) headerRows() int { return len(m.header()) }

// View renders the header, the switch, the footer and the optional help box.
func (m AppModel) View() string {
	if m.quit || m.chosen {
		return ""
	}
	sections := m.header()
	w := m.width
	if w <= 0 {
		w = m.seg.Width()
	}
	sections = append(sections, m.seg.Lines(w)...)
	sections = append(sections, "", m.footer.View())
	if m.showHelp {
		sections = append(sections, Styles().Help.Render(HelpText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
