// ABOUTME: Core TUI interfaces: Component, InputHandler, Ticker, Focusable
// ABOUTME: Defines the contract for everything the line engine can render or animate

package tui

import "time"

// Component is the base interface for all TUI elements.
// Components render into a pooled RenderBuffer and must not exceed the given width.
type Component interface {
	// Render writes the component's visual lines into out.
	// Lines must not exceed width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate clears any cached render state, forcing a full re-render
	// on the next Render call.
	Invalidate()
}

// InputHandler is implemented by components that process keyboard input.
// HandleInput reports whether the input was consumed.
type InputHandler interface {
	HandleInput(data string) bool
}

// Ticker is implemented by animated components. Tick advances the animation
// by dt and reports whether another frame is needed.
type Ticker interface {
	Tick(dt time.Duration) bool
}

// Focusable is implemented by components that participate in focus management.
type Focusable interface {
	SetFocused(focused bool)
	IsFocused() bool
}
