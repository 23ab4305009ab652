// ABOUTME: Terminal rendering of the --explain-config markdown through glamour
// ABOUTME: Falls back to the raw markdown when stdout is not a terminal or rendering fails

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const explainWidth = 80

// explainStyle picks the glamour standard style for a theme name.
func explainStyle(themeName string) string {
	if themeName == "light" {
		return "light"
	}
	return "dark"
}

// renderExplain styles md with the named glamour style. The raw markdown is
// returned when the renderer cannot be built or fails.
func renderExplain(md, style string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n ") + "\n"
}

func printExplain(md, themeName string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		os.Stdout.WriteString(md)
		return
	}
	width := explainWidth
	if w, _, err := term.GetSize(fd); err == nil && w > 0 && w < width {
		width = w
	}
	os.Stdout.WriteString(renderExplain(md, explainStyle(themeName), width))
}
