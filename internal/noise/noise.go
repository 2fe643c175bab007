package noise

import "math"

// Interleaved gradient noise coefficients.
const (
	ignScaleX = 0.06711056
	ignScaleY = 0.00583715
	ignScale  = 52.9829189
)

// bayerBase is the 2×2 ordered-dither matrix, scaled by 1/4 per level.
var bayerBase = [2][2]float64{{0, 2}, {3, 1}}

const bayerStep = 0.25

// BayerInf returns the threshold of an unbounded recursive Bayer matrix at
// (x, y). Values lie in [0, 1).
func BayerInf(x, y int) float64 {
	return bayer(uint(x), uint(y), -1)
}

// Bayer is like BayerInf but stops after maxDepth levels, which equals
// tiling a 2^maxDepth square Bayer matrix.
func Bayer(x, y, maxDepth int) float64 {
	if maxDepth <= 0 {
		return 0
	}
	return bayer(uint(x), uint(y), maxDepth)
}

// bayer accumulates levels until x and y are exhausted or depth reaches
// zero. A negative depth never stops the loop.
func bayer(x, y uint, depth int) float64 {
	var v float64
	multiplier := bayerStep
	for depth != 0 && (x > 0 || y > 0) {
		v += multiplier * bayerBase[y&1][x&1]
		x >>= 1
		y >>= 1
		multiplier *= bayerStep
		depth--
	}
	return v
}

// InterleavedGradient returns fract(52.9829189 * fract(0.06711056x + 0.00583715y)).
func InterleavedGradient(x, y float64) float64 {
	return fract(ignScale * fract(ignScaleX*x+ignScaleY*y))
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}
