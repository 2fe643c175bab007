package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64Ops_SharedInstance(t *testing.T) {
	assert.Same(t, Float64Ops(), Float64Ops())
}

func TestOps_DotProductAndScale(t *testing.T) {
	ops := Float64Ops()
	a := []float64{0.25, 0.5, -0.125, 0.375}

	assert.InDelta(t, 0.5, ops.DotProductUnsafe(a, []float64{1, 1, 2, 0}), 1e-12)

	dst := make([]float64, len(a))
	ops.Scale(dst, a, 2)
	assert.Equal(t, []float64{0.5, 1, -0.25, 0.75}, dst)

	ops.Scale(dst, dst, 0.5)
	assert.Equal(t, a, dst, "in-place scaling")
}

func TestOps_AddScaled(t *testing.T) {
	dst := []float64{1, 2, 3}
	Float64Ops().AddScaled(dst, 4, []float64{0.5, -1, 0})
	assert.Equal(t, []float64{3, -2, 3}, dst)
}
