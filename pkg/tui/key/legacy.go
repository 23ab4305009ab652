// ABOUTME: CSI and SS3 escape sequences for navigation keys, plus xterm modifier variants
// ABOUTME: Covers arrows, Home/End, BackTab and focus reports as sent by common terminal emulators

package key

import (
	"strconv"
	"strings"
)

var legacySequences = map[string]Key{
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[1~": {Type: KeyHome},
	"\x1b[4~": {Type: KeyEnd},
	"\x1b[7~": {Type: KeyHome},
	"\x1b[8~": {Type: KeyEnd},
	"\x1b[Z":  {Type: KeyBackTab, Shift: true},
	"\x1b[I":  {Type: KeyFocusIn},
	"\x1b[O":  {Type: KeyFocusOut},

	// SS3 variants (application cursor mode)
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},
	"\x1bOH": {Type: KeyHome},
	"\x1bOF": {Type: KeyEnd},
}

var letterKeyTypes = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// xterm modifier parameter: value-1 is a bitmask.
const (
	modShift = 1 << iota
	modAlt
	modCtrl
)

// parseModified handles CSI 1 ; <mod> <letter>, e.g. Ctrl+Right = ESC[1;5C.
func parseModified(data string) (Key, bool) {
	if len(data) < 6 || !strings.HasPrefix(data, "\x1b[1;") {
		return Key{}, false
	}
	kt, ok := letterKeyTypes[data[len(data)-1]]
	if !ok {
		return Key{}, false
	}
	m, err := strconv.Atoi(data[4 : len(data)-1])
	if err != nil || m < 1 {
		return Key{}, false
	}
	m--
	return Key{
		Type:  kt,
		Shift: m&modShift != 0,
		Alt:   m&modAlt != 0,
		Ctrl:  m&modCtrl != 0,
	}, true
}
