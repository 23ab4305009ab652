// ABOUTME: Tests for basic TUI components: Text, Box, Spacer
// ABOUTME: Verifies rendering output, clipping and state management

package component

import (
	"strings"
	"testing"

	"github.com/mauromedda/segswitch-go/pkg/tui"
	"github.com/mauromedda/segswitch-go/pkg/tui/width"
)

func TestText_Render(t *testing.T) {
	t.Parallel()

	comp := NewText("hello\nworld")
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	comp.Render(buf, 80)

	if buf.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", buf.Len())
	}
	if buf.Lines[0] != "hello" || buf.Lines[1] != "world" {
		t.Errorf("unexpected lines: %v", buf.Lines)
	}
}

func TestText_SetContent(t *testing.T) {
	t.Parallel()

	comp := NewText("old")
	comp.SetContent("new")

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	comp.Render(buf, 80)

	if buf.Len() != 1 || buf.Lines[0] != "new" {
		t.Errorf("expected 'new', got %v", buf.Lines)
	}
	if comp.Content() != "new" {
		t.Errorf("Content() = %q", comp.Content())
	}
}

func TestText_ClipsToWidth(t *testing.T) {
	t.Parallel()

	comp := NewText("abcdefghij")
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	comp.Render(buf, 4)

	if got := buf.Lines[0]; got != "abcd" {
		t.Errorf("got %q; want %q", got, "abcd")
	}

	buf.Reset()
	comp.Render(buf, 6)
	if got := buf.Lines[0]; got != "abcdef" {
		t.Errorf("after resize got %q; want %q", got, "abcdef")
	}
}

func TestSpacer_Render(t *testing.T) {
	t.Parallel()

	sp := NewSpacer(3)
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	sp.Render(buf, 80)

	if buf.Len() != 3 {
		t.Errorf("expected 3 lines, got %d", buf.Len())
	}
}

func TestBox_Render(t *testing.T) {
	t.Parallel()

	box := NewBox(NewText("hi\nthere")).WithPadding(1)
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	box.Render(buf, 40)

	if buf.Len() != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", buf.Len(), buf.Lines)
	}
	top := width.StripANSI(buf.Lines[0])
	if !strings.HasPrefix(top, "╭") || !strings.HasSuffix(top, "╮") {
		t.Errorf("top border = %q", top)
	}
	if got := width.StripANSI(buf.Lines[1]); got != "│ hi    │" {
		t.Errorf("first body line = %q", got)
	}
}

func TestBox_TooNarrow(t *testing.T) {
	t.Parallel()

	box := NewBox(NewText("hi")).WithPadding(2)
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	box.Render(buf, 5)

	if buf.Len() != 0 {
		t.Errorf("expected nothing, got %q", buf.Lines)
	}
}
