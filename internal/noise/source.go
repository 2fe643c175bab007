package noise

import (
	"image"
	"image/color"
	"math/rand/v2"
)

// Source returns the noise value for pixel (x, y), or false when no noise
// is used and selection falls back to the largest weight.
type Source func(x, y int) (float64, bool)

// None returns a Source that never yields noise.
func None() Source {
	return func(int, int) (float64, bool) {
		return 0, false
	}
}

// BayerUnbounded is the BayerSource depth selecting the unbounded pattern.
const BayerUnbounded = -1

// BayerSource returns ordered-dither noise from a 2^depth Bayer matrix. A
// negative depth selects the unbounded pattern; depth 0 is constant 0.
func BayerSource(depth int) Source {
	if depth < 0 {
		return func(x, y int) (float64, bool) {
			return BayerInf(x, y), true
		}
	}
	return func(x, y int) (float64, bool) {
		return Bayer(x, y, depth), true
	}
}

// InterleavedGradientSource returns interleaved gradient noise.
func InterleavedGradientSource() Source {
	return func(x, y int) (float64, bool) {
		return InterleavedGradient(float64(x), float64(y)), true
	}
}

// White returns uniform noise in [0, 1). Each pixel's value depends only on
// seed and its position.
func White(seed uint64) Source {
	return func(x, y int) (float64, bool) {
		pcg := rand.NewPCG(seed, uint64(uint32(y))<<32|uint64(uint32(x)))
		return float64(pcg.Uint64()>>11) / (1 << 53), true
	}
}

// RandomWhite returns white noise with a random seed.
func RandomWhite() Source {
	return White(rand.Uint64())
}

// FromImage returns the luminance of img in [0, 1), tiled over the plane.
// The image is read once; later changes to img are not seen.
func FromImage(img image.Image) Source {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return None()
	}

	lum := make([]float64, w*h)
	for y := range h {
		for x := range w {
			g, _ := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			lum[y*w+x] = float64(g.Y) / gray16Levels
		}
	}
	return func(x, y int) (float64, bool) {
		return lum[mod(y, h)*w+mod(x, w)], true
	}
}

// gray16Levels maps 16-bit luminance into [0, 1).
const gray16Levels = 0x10000

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
