// ABOUTME: Truncate, pad and center plain labels to an exact cell width
// ABOUTME: Wide graphemes never straddle the limit; the gap is filled with spaces

package width

import "strings"

// Truncate cuts plain text s to at most maxWidth cells. When s is cut and
// tail fits, tail (e.g. "…") replaces the last cells.
func Truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	tw := VisibleWidth(tail)
	if tw > maxWidth {
		tail, tw = "", 0
	}
	var b strings.Builder
	used := 0
	for _, g := range Graphemes(s) {
		if used+g.Width > maxWidth-tw {
			break
		}
		b.WriteString(g.Text)
		used += g.Width
	}
	b.WriteString(tail)
	return b.String()
}

// PadRight pads s with spaces to exactly w cells, truncating if needed.
func PadRight(s string, w int) string {
	s = Truncate(s, w, "")
	if gap := w - VisibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Center places s in the middle of a w-cell field, truncating with an
// ellipsis if it does not fit. Odd gaps put the extra space on the right.
func Center(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = Truncate(s, w, "…")
	gap := w - VisibleWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
