// Package simdops routes weight-vector arithmetic through SIMD kernels.
//
// Weight vectors are short (one entry per palette colour), so the gain over a
// plain loop is small; routing them through one place keeps the diffusion
// inner loop free of per-call dispatch decisions.
package simdops

import "github.com/tphakala/simd/f64"

// Ops provides SIMD-accelerated float64 operations.
type Ops struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// AddScaled accumulates s*alpha into dst: dst[i] += alpha * s[i]
	AddScaled func(dst []float64, alpha float64, s []float64)
}

var ops64 = Ops{
	DotProductUnsafe: f64.DotProductUnsafe,
	Scale:            f64.Scale,
	AddScaled:        f64.AddScaled,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}
