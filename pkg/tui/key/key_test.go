// ABOUTME: Table-driven tests for key, mouse and input splitting
// ABOUTME: Validates ParseKey against runes, control bytes, CSI/SS3 navigation and modifier variants

package key

import "testing"

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Key
	}{
		// Single printable ASCII characters
		{name: "lowercase a", data: "a", want: Key{Type: KeyRune, Rune: 'a'}},
		{name: "lowercase z", data: "z", want: Key{Type: KeyRune, Rune: 'z'}},
		{name: "uppercase A", data: "A", want: Key{Type: KeyRune, Rune: 'A'}},
		{name: "digit 0", data: "0", want: Key{Type: KeyRune, Rune: '0'}},
		{name: "space", data: " ", want: Key{Type: KeyRune, Rune: ' '}},
		{name: "tilde", data: "~", want: Key{Type: KeyRune, Rune: '~'}},

		// Control characters
		{name: "ctrl+c", data: "\x03", want: Key{Type: KeyCtrlC, Ctrl: true}},
		{name: "ctrl+d", data: "\x04", want: Key{Type: KeyCtrlD, Ctrl: true}},
		{name: "ctrl+l", data: "\x0c", want: Key{Type: KeyCtrlL, Ctrl: true}},
		{name: "ctrl+g unmapped", data: "\x07", want: Key{Type: KeyUnknown}},

		// Focus reports
		{name: "focus in", data: "\x1b[I", want: Key{Type: KeyFocusIn}},
		{name: "focus out", data: "\x1b[O", want: Key{Type: KeyFocusOut}},

		// Enter, Tab, Backspace
		{name: "enter", data: "\r", want: Key{Type: KeyEnter}},
		{name: "tab", data: "\t", want: Key{Type: KeyTab}},
		{name: "backspace", data: "\x7f", want: Key{Type: KeyBackspace}},

		// Escape alone
		{name: "escape", data: "\x1b", want: Key{Type: KeyEscape}},

		// CSI arrow keys
		{name: "arrow up", data: "\x1b[A", want: Key{Type: KeyUp}},
		{name: "arrow down", data: "\x1b[B", want: Key{Type: KeyDown}},
		{name: "arrow right", data: "\x1b[C", want: Key{Type: KeyRight}},
		{name: "arrow left", data: "\x1b[D", want: Key{Type: KeyLeft}},

		// Home, End
		{name: "home", data: "\x1b[H", want: Key{Type: KeyHome}},
		{name: "end", data: "\x1b[F", want: Key{Type: KeyEnd}},

		// VT220 Home/End
		{name: "vt home", data: "\x1b[1~", want: Key{Type: KeyHome}},
		{name: "vt end", data: "\x1b[4~", want: Key{Type: KeyEnd}},

		// xterm modifiers
		{name: "ctrl+right", data: "\x1b[1;5C", want: Key{Type: KeyRight, Ctrl: true}},
		{name: "shift+left", data: "\x1b[1;2D", want: Key{Type: KeyLeft, Shift: true}},
		{name: "bad modifier", data: "\x1b[1;xC", want: Key{Type: KeyUnknown}},

		// BackTab (Shift+Tab)
		{name: "backtab", data: "\x1b[Z", want: Key{Type: KeyBackTab, Shift: true}},

		// SS3 arrow keys
		{name: "SS3 up", data: "\x1bOA", want: Key{Type: KeyUp}},
		{name: "SS3 down", data: "\x1bOB", want: Key{Type: KeyDown}},
		{name: "SS3 right", data: "\x1bOC", want: Key{Type: KeyRight}},
		{name: "SS3 left", data: "\x1bOD", want: Key{Type: KeyLeft}},
		{name: "SS3 home", data: "\x1bOH", want: Key{Type: KeyHome}},
		{name: "SS3 end", data: "\x1bOF", want: Key{Type: KeyEnd}},

		// Unknown escape sequence
		{name: "unknown escape", data: "\x1b[99Z", want: Key{Type: KeyUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseKey(tt.data)
			if got.Type != tt.want.Type {
				t.Errorf("ParseKey(%q).Type = %v, want %v", tt.data, got.Type, tt.want.Type)
			}
			if got.Rune != tt.want.Rune {
				t.Errorf("ParseKey(%q).Rune = %q, want %q", tt.data, got.Rune, tt.want.Rune)
			}
			if got.Ctrl != tt.want.Ctrl {
				t.Errorf("ParseKey(%q).Ctrl = %v, want %v", tt.data, got.Ctrl, tt.want.Ctrl)
			}
			if got.Shift != tt.want.Shift {
				t.Errorf("ParseKey(%q).Shift = %v, want %v", tt.data, got.Shift, tt.want.Shift)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "rune a", key: Key{Type: KeyRune, Rune: 'a'}, want: "a"},
		{name: "enter", key: Key{Type: KeyEnter}, want: "Enter"},
		{name: "ctrl+c", key: Key{Type: KeyCtrlC, Ctrl: true}, want: "Ctrl+C"},
		{name: "arrow up", key: Key{Type: KeyUp}, want: "Up"},
		{name: "unknown", key: Key{Type: KeyUnknown}, want: "Unknown"},
		{name: "alt rune", key: Key{Type: KeyRune, Rune: 'x', Alt: true}, want: "Alt+x"},
		{name: "ctrl arrow", key: Key{Type: KeyRight, Ctrl: true}, want: "Ctrl+Right"},
		{name: "backtab", key: Key{Type: KeyBackTab, Shift: true}, want: "BackTab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.key.String()
			if got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseMouse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Mouse
		ok   bool
	}{
		{name: "left press", data: "\x1b[<0;5;2M", want: Mouse{Action: MousePress, X: 4, Y: 1}, ok: true},
		{name: "left drag", data: "\x1b[<32;9;2M", want: Mouse{Action: MouseMotion, X: 8, Y: 1}, ok: true},
		{name: "release", data: "\x1b[<0;9;2m", want: Mouse{Action: MouseRelease, X: 8, Y: 1}, ok: true},
		{name: "wheel up", data: "\x1b[<64;1;1M", want: Mouse{Action: MouseWheelUp}, ok: true},
		{name: "wheel down", data: "\x1b[<65;1;1M", want: Mouse{Action: MouseWheelDown, Button: 1}, ok: true},
		{name: "not mouse", data: "\x1b[A", ok: false},
		{name: "truncated", data: "\x1b[<0;5M", ok: false},
		{name: "garbage", data: "\x1b[<a;b;cM", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseMouse(tt.data)
			if ok != tt.ok {
				t.Fatalf("ParseMouse(%q) ok = %v, want %v", tt.data, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseMouse(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want []string
	}{
		{name: "runes", data: "ab", want: []string{"a", "b"}},
		{name: "utf8", data: "éx", want: []string{"é", "x"}},
		{name: "arrows", data: "\x1b[C\x1b[D", want: []string{"\x1b[C", "\x1b[D"}},
		{name: "mouse then key", data: "\x1b[<0;3;1Mq", want: []string{"\x1b[<0;3;1M", "q"}},
		{name: "ss3", data: "\x1bOHz", want: []string{"\x1bOH", "z"}},
		{name: "alt rune", data: "\x1bx", want: []string{"\x1bx"}},
		{name: "lone esc", data: "\x1b", want: []string{"\x1b"}},
		{name: "double esc", data: "\x1b\x1b[A", want: []string{"\x1b", "\x1b[A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Split(tt.data)
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%q) = %q, want %q", tt.data, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Split(%q)[%d] = %q, want %q", tt.data, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		want     string
		complete bool
	}{
		{"", "", false},
		{"ab", "a", true},
		{"\x1b", "\x1b", false},
		{"\x1b[", "\x1b[", false},
		{"\x1b[1;5", "\x1b[1;5", false},
		{"\x1b[Cx", "\x1b[C", true},
		{"\x1b[<0;3;4", "\x1b[<0;3;4", false},
		{"\x1b[<0;3;4Mz", "\x1b[<0;3;4M", true},
		{"\x1bO", "\x1bO", false},
		{"\x1bOH", "\x1bOH", true},
		{"\x1bx", "\x1bx", true},
		{"\xc3", "\xc3", false},
		{"\xc3\xa9!", "\xc3\xa9", true},
	}
	for _, tt := range tests {
		got, complete := Next(tt.in)
		if got != tt.want || complete != tt.complete {
			t.Errorf("Next(%q) = %q, %v; want %q, %v", tt.in, got, complete, tt.want, tt.complete)
		}
	}
}
