// ABOUTME: Content options for a segment: plain text labels or a custom icon builder
// ABOUTME: The two are mutually exclusive; New turns the pair into a sealed variant once

package segment

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/segswitch-go/pkg/toggle"
	"github.com/mauromedda/segswitch-go/pkg/tui/theme"
)

// IconBuilder renders one value's content for a frame. The result is plain
// text (no escape sequences) that should fit in width cells; the segment
// applies color, opacity and weight from props.
type IconBuilder[T comparable] interface {
	Icon(props toggle.IconProperties[T], width int) string
}

// IconFunc adapts a function to IconBuilder.
type IconFunc[T comparable] func(props toggle.IconProperties[T], width int) string

// Icon calls f.
func (f IconFunc[T]) Icon(props toggle.IconProperties[T], width int) string {
	return f(props, width)
}

// Labeler is optionally implemented by an IconBuilder to give values a
// searchable name for jump-to-value.
type Labeler[T comparable] interface {
	Label(v T) string
}

// Options configures the terminal rendering of a switch.
type Options[T comparable] struct {
	// Label renders each value as centred text. Mutually exclusive with Icon.
	Label func(T) string
	// Icon renders each value with a custom builder. Mutually exclusive with Label.
	Icon IconBuilder[T]

	// Compact draws a single row without top and bottom borders.
	Compact bool
	// Theme overrides the global theme. Nil follows theme.Current.
	Theme *theme.Theme
	// Renderer overrides lipgloss's default renderer (and its color profile).
	Renderer *lipgloss.Renderer
	// QueryTimeout resets the jump-to-value query after this much idle time.
	QueryTimeout time.Duration
}

const (
	defaultQueryTimeout = time.Second
	spinnerInterval     = 80 * time.Millisecond
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// content is the validated variant: exactly one of the two builders.
type content[T comparable] interface {
	text(props toggle.IconProperties[T], width int) string
	label(v T) string
}

type labelContent[T comparable] struct{ fn func(T) string }

func (c labelContent[T]) text(p toggle.IconProperties[T], _ int) string { return c.fn(p.Value) }
func (c labelContent[T]) label(v T) string                               { return c.fn(v) }

type customContent[T comparable] struct{ b IconBuilder[T] }

func (c customContent[T]) text(p toggle.IconProperties[T], width int) string {
	return c.b.Icon(p, width)
}

func (c customContent[T]) label(v T) string {
	if l, ok := c.b.(Labeler[T]); ok {
		return l.Label(v)
	}
	return fmt.Sprint(v)
}

func (o Options[T]) content() (content[T], error) {
	switch {
	case o.Label != nil && o.Icon != nil:
		return nil, fmt.Errorf("%w: Label and Icon are mutually exclusive", toggle.ErrConflictingOptions)
	case o.Label != nil:
		return labelContent[T]{fn: o.Label}, nil
	case o.Icon != nil:
		return customContent[T]{b: o.Icon}, nil
	}
	return nil, fmt.Errorf("%w: set Label or Icon", toggle.ErrNoContent)
}

// Labels is a convenience for Options with only a label function.
func Labels[T comparable](fn func(T) string) Options[T] {
	return Options[T]{Label: fn}
}

// Custom is a convenience for Options with only an icon builder.
func Custom[T comparable](b IconBuilder[T]) Options[T] {
	return Options[T]{Icon: b}
}
