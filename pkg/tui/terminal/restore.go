// ABOUTME: Panic recovery helpers that put the terminal back in cooked mode before reporting
// ABOUTME: RestoreOnPanic exits the process; RecoverGoroutine only restores and reports

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

func restore(t Terminal) {
	_, _ = t.Write([]byte(MouseOff + "\x1b[?25h"))
	_ = t.ExitRawMode()
}

// RestoreOnPanic should be deferred by the goroutine that owns the terminal.
// On panic it disables mouse reporting, shows the cursor, leaves raw mode,
// prints the stack and exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	restore(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// running while the terminal is raw. It does not exit the process.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	restore(t)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
