// ABOUTME: Release build: contract violations are logged at debug level and clamped by the caller
// ABOUTME: Counterpart of assert_debug.go

//go:build !segswitchdebug

package toggle

import "github.com/mauromedda/segswitch-go/internal/log"

func contractViolation(format string, args ...any) {
	log.Debug("toggle: contract violation: "+format, args...)
}
