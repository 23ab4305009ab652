// ABOUTME: Debug build: contract violations panic so tests and dev builds fail loudly
// ABOUTME: Enabled with -tags segswitchdebug

//go:build segswitchdebug

package toggle

import "fmt"

func contractViolation(format string, args ...any) {
	panic("toggle: contract violation: " + fmt.Sprintf(format, args...))
}
