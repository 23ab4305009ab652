// ABOUTME: Thin wrapper over sahilm/fuzzy for jump-to-value by typed label
// ABOUTME: Best picks the top-ranked label; ties go to the earlier value

package fuzzy

import "github.com/sahilm/fuzzy"

// Best returns the index of the best match for pattern in src, or false when
// nothing matches or pattern is empty.
func Best(pattern string, src fuzzy.Source) (int, bool) {
	if pattern == "" || src.Len() == 0 {
		return 0, false
	}
	matches := fuzzy.FindFrom(pattern, src)
	if len(matches) == 0 {
		return 0, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Score == best.Score && m.Index < best.Index {
			best = m
		}
	}
	return best.Index, true
}

// Labels adapts a value list and a label function to fuzzy.Source.
type Labels[T any] struct {
	Values []T
	Label  func(T) string
}

// String returns the label of the i-th value.
func (l Labels[T]) String(i int) string { return l.Label(l.Values[i]) }

// Len returns the number of values.
func (l Labels[T]) Len() int { return len(l.Values) }
