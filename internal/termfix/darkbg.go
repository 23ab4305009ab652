// ABOUTME: Pre-sets lipgloss dark background before BubbleTea's init() sends OSC queries
// ABOUTME: Follow later aligns lipgloss with the switch palette instead of probing the terminal

package termfix

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/segswitch-go/pkg/tui/theme"
)

func init() {
	// Tell lipgloss we have a dark background so it never sends
	// OSC 10/11 terminal queries. BubbleTea's own init() calls
	// lipgloss.HasDarkBackground(); if explicitBackgroundColor is
	// already set, the sync.Once that fires the query is skipped.
	//
	// This package must NOT import bubbletea (directly or transitively)
	// so that Go's init order guarantees this runs first.
	lipgloss.SetHasDarkBackground(true)
}

// Follow tells lipgloss whether the palette's background is dark and
// reports the answer. Adaptive colors then match the switch.
func Follow(p theme.Palette) bool {
	_, _, l := p.Background.Hcl()
	dark := l < 0.5
	lipgloss.SetHasDarkBackground(dark)
	return dark
}
