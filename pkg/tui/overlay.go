// ABOUTME: Overlay types for components drawn on top of the main content
// ABOUTME: Supports top-, center- and bottom-anchored placement within the rendered region

package tui

// OverlayPosition defines where an overlay is anchored.
type OverlayPosition int

const (
	OverlayTop OverlayPosition = iota
	OverlayCenter
	OverlayBottom
)

// Overlay is a component rendered over the main container's lines.
type Overlay struct {
	Component Component
	Position  OverlayPosition
	Width     int // 0 means terminal width
}
