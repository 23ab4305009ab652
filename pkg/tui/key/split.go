// ABOUTME: Splits a raw read from the terminal into individual input events
// ABOUTME: A single read may carry several keys, escape sequences or mouse reports

package key

import "unicode/utf8"

// Split breaks raw terminal input into events suitable for ParseKey or
// ParseMouse. A trailing lone ESC is returned as its own event.
func Split(data string) []string {
	var events []string
	for len(data) > 0 {
		n := eventLen(data)
		events = append(events, data[:n])
		data = data[n:]
	}
	return events
}

func eventLen(s string) int {
	if s[0] != 0x1b {
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	if len(s) == 1 {
		return 1
	}
	switch s[1] {
	case '[':
		// CSI: parameters and intermediates until a final byte 0x40-0x7E
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return len(s)
	case 'O':
		return min(3, len(s))
	case 0x1b:
		return 1
	}
	_, size := utf8.DecodeRuneInString(s[1:])
	return 1 + size
}

// Next returns the first event in s and whether it is complete. An
// incomplete event (a lone ESC, an unterminated CSI sequence or a partial
// UTF-8 rune) may still grow when more input arrives.
func Next(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if s[0] != 0x1b {
		if !utf8.FullRuneInString(s) {
			return s, false
		}
		return s[:eventLen(s)], true
	}
	if len(s) == 1 {
		return s, false
	}
	n := eventLen(s)
	switch s[1] {
	case '[':
		last := s[n-1]
		return s[:n], n > 2 && last >= 0x40 && last <= 0x7e
	case 'O':
		return s[:n], n == 3
	}
	return s[:n], true
}
