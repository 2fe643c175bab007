package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBayerInf_Canonical4x4(t *testing.T) {
	want := [4][4]float64{
		{0, 8, 2, 10},
		{12, 4, 14, 6},
		{3, 11, 1, 9},
		{15, 7, 13, 5},
	}
	for y := range 4 {
		for x := range 4 {
			assert.Equal(t, want[y][x]/16, BayerInf(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestBayerInf_Range(t *testing.T) {
	seen := make(map[float64]bool)
	for y := range 16 {
		for x := range 16 {
			v := BayerInf(x, y)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
			seen[v] = true
		}
	}
	assert.Len(t, seen, 256, "a 16×16 block holds every threshold once")
}

func TestBayer_Depth(t *testing.T) {
	assert.Equal(t, 0.5, Bayer(1, 0, 1))
	assert.Equal(t, 0.75, Bayer(0, 1, 1))

	// Depth 1 tiles the 2×2 matrix.
	assert.Equal(t, Bayer(1, 0, 1), Bayer(3, 2, 1))
	assert.Equal(t, 0.0, Bayer(2, 2, 1))

	// Depth 2 matches the unbounded pattern inside the 4×4 block.
	for y := range 4 {
		for x := range 4 {
			assert.Equal(t, BayerInf(x, y), Bayer(x, y, 2))
		}
	}
	assert.Equal(t, BayerInf(1, 3), Bayer(5, 7, 2))

	assert.Equal(t, 0.0, Bayer(3, 3, 0))
}

func TestInterleavedGradient(t *testing.T) {
	for y := range 32 {
		for x := range 32 {
			v := InterleavedGradient(float64(x), float64(y))
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
			assert.Equal(t, v, InterleavedGradient(float64(x), float64(y)))
		}
	}
	assert.Equal(t, 0.0, InterleavedGradient(0, 0))
	assert.InDelta(t, fract(52.9829189*0.06711056), InterleavedGradient(1, 0), 1e-12)
}
