// ABOUTME: Lipgloss styles for the header, footer and help box, built from the theme palette
// ABOUTME: Styles() caches per theme pointer so View() does not rebuild styles every frame

package btea

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/segswitch-go/pkg/tui/theme"
)

// themeStylesEntry pairs a theme pointer with its pre-built styles.
type themeStylesEntry struct {
	theme  *theme.Theme
	styles ThemeStyles
}

// cachedStyles is keyed by theme pointer identity; a theme change rebuilds.
var cachedStyles atomic.Pointer[themeStylesEntry]

// ThemeStyles holds the lipgloss styles of the app chrome.
type ThemeStyles struct {
	Title  lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
	Value  lipgloss.Style
	Query  lipgloss.Style
	Help   lipgloss.Style
}

// Styles returns ThemeStyles for the current theme.
func Styles() ThemeStyles {
	t := theme.Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t)
	cachedStyles.Store(&themeStylesEntry{theme: t, styles: s})
	return s
}

func fg(c theme.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// buildStyles constructs ThemeStyles from a theme's palette.
func buildStyles(t *theme.Theme) ThemeStyles {
	p := t.Palette
	return ThemeStyles{
		Title:  lipgloss.NewStyle().Foreground(fg(p.Accent)).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(fg(p.Text)),
		Muted:  lipgloss.NewStyle().Foreground(fg(p.Muted)),
		Accent: lipgloss.NewStyle().Foreground(fg(p.Accent)),
		Error:  lipgloss.NewStyle().Foreground(fg(p.Error)).Bold(true),
		Value:  lipgloss.NewStyle().Foreground(fg(p.Indicator)).Bold(true),
		Query:  lipgloss.NewStyle().Foreground(fg(p.Accent)).Underline(true),
		Help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(fg(p.Border)).
			Foreground(fg(p.Text)).
			Padding(0, 1),
	}
}
