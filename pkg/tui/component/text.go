// ABOUTME: Static text display component for the TUI
// ABOUTME: Renders styled lines clipped to the available width

package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/segswitch-go/pkg/tui"
)

// Text renders static text content, one style for every line.
type Text struct {
	content string
	style   lipgloss.Style
	lines   []string
	width   int
	dirty   bool
}

// NewText creates a Text component with the given content.
func NewText(content string) *Text {
	return &Text{content: content, style: lipgloss.NewStyle(), dirty: true}
}

// WithStyle sets the style applied to each line.
func (t *Text) WithStyle(s lipgloss.Style) *Text {
	t.style = s
	t.dirty = true
	return t
}

// SetContent updates the displayed text.
func (t *Text) SetContent(content string) {
	if content == t.content {
		return
	}
	t.content = content
	t.dirty = true
}

// Content returns the unstyled text.
func (t *Text) Content() string { return t.content }

// Render writes the text lines into the buffer.
func (t *Text) Render(out *tui.RenderBuffer, width int) {
	if t.dirty || width != t.width {
		t.lines = t.lines[:0]
		clip := t.style.MaxWidth(width)
		for _, l := range strings.Split(t.content, "\n") {
			t.lines = append(t.lines, clip.Render(l))
		}
		t.width = width
		t.dirty = false
	}
	out.WriteLines(t.lines)
}

// Invalidate marks the component for re-render.
func (t *Text) Invalidate() {
	t.dirty = true
}
