// ABOUTME: Splits labels into NFC-normalised grapheme clusters with their cell widths
// ABOUTME: The segment renderer paints labels one cluster per cell run

package width

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Grapheme is one user-perceived character and the number of cells it takes.
type Grapheme struct {
	Text  string
	Width int
}

// Graphemes segments s (which must not contain escape sequences) into
// grapheme clusters. Zero-width clusters are attached to the previous one.
func Graphemes(s string) []Grapheme {
	s = norm.NFC.String(s)
	out := make([]Grapheme, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w := graphemeWidth(cluster)
		if w == 0 && len(out) > 0 {
			out[len(out)-1].Text += cluster
			continue
		}
		if w == 0 {
			continue
		}
		out = append(out, Grapheme{Text: cluster, Width: w})
	}
	return out
}
