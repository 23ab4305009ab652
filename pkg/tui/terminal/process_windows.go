// ABOUTME: Windows stub for ProcessTerminal resize handling
// ABOUTME: Windows has no SIGWINCH; callers poll Size instead

//go:build windows

package terminal

func (t *ProcessTerminal) startResizeListener() {}
