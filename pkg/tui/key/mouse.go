// ABOUTME: SGR (1006) mouse report parsing: ESC [ < b ; x ; y (M|m)
// ABOUTME: Distinguishes press, drag motion and release of the primary button

package key

import (
	"strconv"
	"strings"
)

// MouseAction is what happened to the pointer.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseMotion
	MouseRelease
	MouseWheelUp
	MouseWheelDown
)

// Mouse is a parsed mouse report. X and Y are 0-based cell coordinates.
type Mouse struct {
	Action MouseAction
	Button int
	X, Y   int
}

// IsMouse reports whether data looks like an SGR mouse report.
func IsMouse(data string) bool {
	return strings.HasPrefix(data, "\x1b[<")
}

// ParseMouse parses an SGR mouse report.
func ParseMouse(data string) (Mouse, bool) {
	if !IsMouse(data) || len(data) < 9 {
		return Mouse{}, false
	}
	final := data[len(data)-1]
	if final != 'M' && final != 'm' {
		return Mouse{}, false
	}
	parts := strings.Split(data[3:len(data)-1], ";")
	if len(parts) != 3 {
		return Mouse{}, false
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Mouse{}, false
		}
		nums[i] = n
	}
	b := nums[0]
	m := Mouse{Button: b & 3, X: nums[1] - 1, Y: nums[2] - 1}
	switch {
	case b&64 != 0 && b&1 == 0:
		m.Action = MouseWheelUp
	case b&64 != 0:
		m.Action = MouseWheelDown
	case final == 'm':
		m.Action = MouseRelease
	case b&32 != 0:
		m.Action = MouseMotion
	default:
		m.Action = MousePress
	}
	return m, true
}
