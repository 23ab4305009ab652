// ABOUTME: Key type and ParseKey for raw terminal keyboard input
// ABOUTME: Handles printable runes, control characters and delegates escape sequences to the CSI parsers

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For printable characters
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C
	KeyCtrlD                    // Ctrl+D
	KeyCtrlL                    // Ctrl+L
	KeyFocusIn                  // Terminal gained focus (focus reporting)
	KeyFocusOut                 // Terminal lost focus
	KeyUnknown                  // Unrecognized input
)

var ctrlKeys = map[byte]Key{
	0x03: {Type: KeyCtrlC, Ctrl: true},
	0x04: {Type: KeyCtrlD, Ctrl: true},
	0x0c: {Type: KeyCtrlL, Ctrl: true},
}

// ParseKey parses one input event into a Key.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d || b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f || b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	if k, ok := ctrlKeys[b]; ok {
		return k
	}
	return Key{Type: KeyUnknown}
}

func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}
	if k, ok := parseModified(data); ok {
		return k
	}
	// Alt+letter: ESC followed by a single printable byte
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: KeyUnknown}
}

var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
	KeyCtrlL:     "Ctrl+L",
	KeyFocusIn:   "FocusIn",
	KeyFocusOut:  "FocusOut",
}

// String returns a human-readable representation of the Key.
func (k Key) String() string {
	var name string
	if k.Type == KeyRune {
		name = string(k.Rune)
	} else if n, ok := keyTypeNames[k.Type]; ok {
		name = n
	} else {
		return "Unknown"
	}
	if k.Type != KeyCtrlC && k.Type != KeyCtrlD && k.Type != KeyCtrlL && k.Ctrl {
		name = "Ctrl+" + name
	}
	if k.Type != KeyBackTab && k.Shift {
		name = "Shift+" + name
	}
	if k.Alt {
		name = fmt.Sprintf("Alt+%s", name)
	}
	return name
}
