package noise

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNone(t *testing.T) {
	_, ok := None()(3, 4)
	assert.False(t, ok)
}

func TestBayerSource(t *testing.T) {
	inf := BayerSource(BayerUnbounded)
	v, ok := inf(3, 1)
	require.True(t, ok)
	assert.Equal(t, BayerInf(3, 1), v)

	v, ok = BayerSource(1)(3, 1)
	require.True(t, ok)
	assert.Equal(t, Bayer(3, 1, 1), v)

	for _, pt := range [][2]int{{0, 0}, {1, 0}, {3, 1}, {7, 5}} {
		v, ok = BayerSource(0)(pt[0], pt[1])
		require.True(t, ok)
		assert.Equal(t, 0.0, v)
	}
}

func TestInterleavedGradientSource(t *testing.T) {
	v, ok := InterleavedGradientSource()(5, 9)
	require.True(t, ok)
	assert.Equal(t, InterleavedGradient(5, 9), v)
}

func TestWhite_Deterministic(t *testing.T) {
	a, b := White(7), White(7)
	other := White(8)

	differs := false
	for y := range 8 {
		for x := range 8 {
			va, ok := a(x, y)
			require.True(t, ok)
			vb, _ := b(x, y)
			assert.Equal(t, va, vb)
			assert.GreaterOrEqual(t, va, 0.0)
			assert.Less(t, va, 1.0)

			vo, _ := other(x, y)
			differs = differs || vo != va
		}
	}
	assert.True(t, differs, "different seeds should give different noise")
}

func TestFromImage_Tiles(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 12, 21))
	img.SetGray(10, 20, color.Gray{Y: 0})
	img.SetGray(11, 20, color.Gray{Y: 255})

	// Full luminance stays below 1.
	const white = float64(0xffff) / 0x10000

	src := FromImage(img)
	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, 0},
		{1, 0, white},
		{2, 5, 0},
		{3, 5, white},
		{-1, -1, white},
	}
	for _, tt := range tests {
		v, ok := src(tt.x, tt.y)
		require.True(t, ok)
		assert.Equal(t, tt.want, v, "(%d,%d)", tt.x, tt.y)
	}
}

func TestFromImage_Empty(t *testing.T) {
	_, ok := FromImage(image.NewGray(image.Rect(0, 0, 0, 0)))(0, 0)
	assert.False(t, ok)
}
