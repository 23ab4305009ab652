// ABOUTME: Terminal interface for raw mode, size queries, input, output and mouse reporting
// ABOUTME: Implementations target a real process TTY or an in-memory virtual terminal

package terminal

import "io"

// SGR mouse reporting with button-event tracking (press, drag, release).
const (
	MouseOn  = "\x1b[?1002h\x1b[?1006h"
	MouseOff = "\x1b[?1002l\x1b[?1006l"
)

// Focus reporting: the terminal sends ESC [ I on focus and ESC [ O on blur.
const (
	FocusOn  = "\x1b[?1004h"
	FocusOff = "\x1b[?1004l"
)

// Alternate screen buffer. Entering also homes the cursor.
const (
	AltScreenOn  = "\x1b[?1049h\x1b[H"
	AltScreenOff = "\x1b[?1049l"
)

// Terminal abstracts low-level terminal operations.
type Terminal interface {
	io.ReadWriter
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	OnResize(fn func(width, height int))
}

// EnableMouse turns on mouse reporting.
func EnableMouse(t Terminal) error {
	_, err := io.WriteString(t, MouseOn)
	return err
}

// DisableMouse turns off mouse reporting.
func DisableMouse(t Terminal) error {
	_, err := io.WriteString(t, MouseOff)
	return err
}

// EnableFocusReports asks the terminal to report focus changes.
func EnableFocusReports(t Terminal) error {
	_, err := io.WriteString(t, FocusOn)
	return err
}

// DisableFocusReports turns off focus reporting.
func DisableFocusReports(t Terminal) error {
	_, err := io.WriteString(t, FocusOff)
	return err
}

// EnterAltScreen switches to the alternate screen with the cursor at the top left.
func EnterAltScreen(t Terminal) error {
	_, err := io.WriteString(t, AltScreenOn)
	return err
}

// ExitAltScreen restores the main screen.
func ExitAltScreen(t Terminal) error {
	_, err := io.WriteString(t, AltScreenOff)
	return err
}
