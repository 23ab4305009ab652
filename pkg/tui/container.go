// ABOUTME: Container is an ordered collection of child Components with focus routing
// ABOUTME: Broadcasts Tick to animated children; guarded by an RWMutex against concurrent mutation

package tui

import (
	"slices"
	"sync"
	"time"
)

// Container holds an ordered list of child components.
// Mutations acquire a write lock, rendering and ticking a read lock.
type Container struct {
	mu       sync.RWMutex
	children []Component
	focus    int // index into children, -1 when nothing is focused
}

// NewContainer creates an empty Container.
func NewContainer() *Container {
	return &Container{focus: -1}
}

// Add appends a component. The first Focusable added receives focus.
func (c *Container) Add(comp Component) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.children = append(c.children, comp)
	if f, ok := comp.(Focusable); ok && c.focus < 0 {
		c.focus = len(c.children) - 1
		f.SetFocused(true)
	}
}

// Remove removes a component. Returns true if it was found.
func (c *Container) Remove(comp Component) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.Index(c.children, comp)
	if i < 0 {
		return false
	}
	if i == c.focus {
		if f, ok := comp.(Focusable); ok {
			f.SetFocused(false)
		}
		c.focus = -1
	} else if i < c.focus {
		c.focus--
	}
	c.children = slices.Delete(c.children, i, i+1)
	return true
}

// Children returns a snapshot of the current children.
func (c *Container) Children() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.children)
}

// Focused returns the focused child, or nil.
func (c *Container) Focused() Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.focus < 0 {
		return nil
	}
	return c.children[c.focus]
}

// FocusNext moves focus to the next Focusable child, wrapping around.
// It reports whether focus moved.
func (c *Container) FocusNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.children)
	for step := 1; step <= n; step++ {
		i := (max(c.focus, 0) + step) % n
		f, ok := c.children[i].(Focusable)
		if !ok || i == c.focus {
			continue
		}
		if c.focus >= 0 {
			if prev, ok := c.children[c.focus].(Focusable); ok {
				prev.SetFocused(false)
			}
		}
		f.SetFocused(true)
		c.focus = i
		return true
	}
	return false
}

// HandleInput routes input to the focused child.
func (c *Container) HandleInput(data string) bool {
	h, ok := c.Focused().(InputHandler)
	if !ok {
		return false
	}
	return h.HandleInput(data)
}

// Tick advances every animated child and reports whether any still needs frames.
func (c *Container) Tick(dt time.Duration) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	more := false
	for _, child := range c.children {
		if t, ok := child.(Ticker); ok && t.Tick(dt) {
			more = true
		}
	}
	return more
}

// Render renders all children sequentially into the buffer.
func (c *Container) Render(out *RenderBuffer, width int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		child.Render(out, width)
	}
}

// Invalidate invalidates all children.
func (c *Container) Invalidate() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		child.Invalidate()
	}
}
