// ABOUTME: Tests for the strings.Builder pool
// ABOUTME: Builders come back empty and earlier results survive reuse

package pool

import "testing"

func TestStringBuilderReuse(t *testing.T) {
	t.Parallel()

	sb := GetStringBuilder()
	sb.WriteString("frame one")
	first := sb.String()
	PutStringBuilder(sb)

	sb = GetStringBuilder()
	if sb.Len() != 0 {
		t.Errorf("pooled builder has %d bytes; want 0", sb.Len())
	}
	sb.WriteString("two")
	PutStringBuilder(sb)

	if first != "frame one" {
		t.Errorf("earlier string changed to %q", first)
	}
}

func TestPutNil(t *testing.T) {
	t.Parallel()
	PutStringBuilder(nil)
}
