// Package testutil provides reusable test helper functions for weight-vector
// and geometry tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	WeightTolerance  = 1e-9
	NoiseTolerance   = 1e-12
)

// AssertSumsTo verifies that the elements of w sum to want.
func AssertSumsTo(t *testing.T, w []float64, want, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	sum := floats.Sum(w)
	if math.Abs(sum-want) > tolerance {
		return assert.Fail(t, "weights do not sum to expected value",
			"sum(%v) = %g, want %g", w, sum, want)
	}
	return true
}

// AssertOneHot verifies that w is (approximately) the indicator vector of index.
func AssertOneHot(t *testing.T, w []float64, index int, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	want := make([]float64, len(w))
	if index >= 0 && index < len(want) {
		want[index] = 1
	}
	if !floats.EqualApprox(w, want, tolerance) {
		return assert.Fail(t, "not one-hot",
			"weights %v are not the indicator of index %d", w, index)
	}
	return true
}

// AssertAllNonNegative verifies that no element of w is below -tolerance.
func AssertAllNonNegative(t *testing.T, w []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range w {
		if v < -tolerance {
			return assert.Fail(t, "negative weight",
				"w[%d]=%g is negative (weights %v)", i, v, w)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// AssertVecInDelta verifies that two points are within tolerance of each other.
func AssertVecInDelta(t *testing.T, want, got r3.Vec, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if d := r3.Norm(r3.Sub(want, got)); d > tolerance {
		return assert.Fail(t, "points differ",
			"got %v, want %v (distance %g)", got, want, d)
	}
	return true
}

// Weighted returns the affine combination sum(w[i] * points[i]).
func Weighted(points []r3.Vec, w []float64) r3.Vec {
	var p r3.Vec
	for i, pt := range points {
		p = r3.Add(p, r3.Scale(w[i], pt))
	}
	return p
}

// OctahedronPalette returns the six unit axis points
// [+x, -x, +y, -y, +z, -z], a regular octahedron centred on the origin.
func OctahedronPalette() []r3.Vec {
	return []r3.Vec{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
}

// CubePalette returns the eight corners of the unit RGB cube in binary order.
func CubePalette() []r3.Vec {
	out := make([]r3.Vec, 0, 8)
	for i := range 8 {
		out = append(out, r3.Vec{X: float64(i >> 2 & 1), Y: float64(i >> 1 & 1), Z: float64(i & 1)})
	}
	return out
}
