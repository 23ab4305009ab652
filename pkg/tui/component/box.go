// ABOUTME: Box component that frames a child inside a rounded border
// ABOUTME: Used for popups such as the key help overlay

package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/segswitch-go/pkg/tui"
)

// Box wraps a child component with a border and horizontal padding.
type Box struct {
	Child    tui.Component
	PadLeft  int
	PadRight int
	Style    lipgloss.Style
}

// NewBox creates a Box around the given child component.
func NewBox(child tui.Component) *Box {
	return &Box{
		Child: child,
		Style: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
}

// WithPadding sets the left and right padding.
func (b *Box) WithPadding(pad int) *Box {
	b.PadLeft = pad
	b.PadRight = pad
	return b
}

// Render draws the child inside the border.
func (b *Box) Render(out *tui.RenderBuffer, width int) {
	frame := b.Style.GetHorizontalFrameSize()
	inner := width - frame - b.PadLeft - b.PadRight
	if inner <= 0 {
		return
	}

	childBuf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(childBuf)
	b.Child.Render(childBuf, inner)

	body := b.Style.
		PaddingLeft(b.PadLeft).
		PaddingRight(b.PadRight).
		Render(strings.Join(childBuf.Lines, "\n"))
	out.WriteLines(strings.Split(body, "\n"))
}

// Invalidate invalidates the child.
func (b *Box) Invalidate() {
	if b.Child != nil {
		b.Child.Invalidate()
	}
}
