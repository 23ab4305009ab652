// ABOUTME: Tests for the position resolver: range, endpoints, floor/ceil/fraction, empty lists
// ABOUTME: Sweeps N and t grids to check the clamping invariants

package toggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_RangeAndEndpoints(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		for start := range n {
			for end := range n {
				for step := 0; step <= 20; step++ {
					tt := float64(step) / 20
					pos := Resolve(tt, float64(start), float64(end), n)

					assert.GreaterOrEqual(t, pos.Value(), 0.0)
					assert.LessOrEqual(t, pos.Value(), float64(n-1))
					assert.LessOrEqual(t, float64(pos.Floor()), pos.Value())
					assert.GreaterOrEqual(t, float64(pos.Ceil())+fractionEpsilon, pos.Value())
					assert.LessOrEqual(t, pos.Ceil(), n-1)
				}
				assert.Equal(t, float64(start), Resolve(0, float64(start), float64(end), n).Value())
				assert.Equal(t, float64(end), Resolve(1, float64(start), float64(end), n).Value())
			}
		}
	}
}

func TestPosition_Helpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		n        int
		floor    int
		ceil     int
		fraction float64
		integral bool
		index    int
	}{
		{"rest on first", 0, 3, 0, 0, 0, true, 0},
		{"between", 0.25, 3, 0, 1, 0.25, false, 0},
		{"past middle", 1.75, 3, 1, 2, 0.75, false, 2},
		{"rest on last", 2, 3, 2, 2, 0, true, 2},
		{"single element", 0, 1, 0, 0, 0, true, 0},
		{"float noise below integer", 0.9999999999999, 3, 1, 1, 0, true, 1},
		{"float noise above integer", 1.0000000000001, 3, 1, 1, 0, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPosition(tt.value, tt.n)
			assert.Equal(t, tt.floor, p.Floor())
			assert.Equal(t, tt.ceil, p.Ceil())
			assert.InDelta(t, tt.fraction, p.Fraction(), 1e-9)
			assert.Equal(t, tt.integral, p.Integral())
			assert.Equal(t, tt.index, p.Index())
		})
	}
}

func TestPosition_Clamps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, NewPosition(-3, 4).Value())
	assert.Equal(t, 3.0, NewPosition(7.5, 4).Value())
	assert.Equal(t, 3, NewPosition(7.5, 4).Ceil())
}

func TestPosition_Empty(t *testing.T) {
	t.Parallel()

	p := NewPosition(2, 0)
	assert.True(t, p.Empty())
	assert.Equal(t, 0.0, p.Value())
	assert.Equal(t, 0, p.Floor())
	assert.Equal(t, 0, p.Ceil())
	assert.Equal(t, 0.0, p.Fraction())

	var zero Position
	assert.True(t, zero.Empty())
	assert.True(t, zero.Integral())
}

func TestHoverWeight_SumsToOne(t *testing.T) {
	t.Parallel()

	const n = 5
	for step := 0; step <= 400; step++ {
		pos := NewPosition(float64(step)/100, n)
		sum := 0.0
		for i := range n {
			w := HoverWeight(pos, i)
			if i != pos.Floor() && i != pos.Ceil() {
				assert.Zero(t, w, "element %d at pos %.2f", i, pos.Value())
			}
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "pos %.2f", pos.Value())
	}
}
