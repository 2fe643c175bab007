package diffuse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernels_Tables(t *testing.T) {
	tests := []struct {
		kernel    Kernel
		divisor   int
		targets   int
		weightSum int
		maxDY     int
	}{
		{NoDiffuse, 1, 0, 0, 0},
		{FloydSteinberg, 16, 4, 16, 1},
		{JarvisJudiceNinke, 48, 12, 48, 2},
		{Atkinson, 8, 6, 6, 2},
		{Sierra, 32, 10, 32, 2},
	}
	for _, tt := range tests {
		t.Run(tt.kernel.Name, func(t *testing.T) {
			assert.Equal(t, tt.divisor, tt.kernel.Divisor)
			assert.Len(t, tt.kernel.Targets, tt.targets)
			assert.Equal(t, tt.weightSum, tt.kernel.WeightSum())
			assert.Equal(t, tt.maxDY, tt.kernel.MaxDY())
			assert.NoError(t, tt.kernel.Validate())
		})
	}
}

func TestKernelByName(t *testing.T) {
	for _, k := range Kernels() {
		got, ok := KernelByName(k.String())
		require.True(t, ok, k.Name)
		assert.Equal(t, k, got)
	}
	_, ok := KernelByName("stucki")
	assert.False(t, ok)
}

func TestKernel_Validate(t *testing.T) {
	tests := []struct {
		name   string
		kernel Kernel
	}{
		{"zero divisor", Kernel{Divisor: 0}},
		{"same pixel", Kernel{Divisor: 1, Targets: []Target{{0, 0, 1}}}},
		{"left on same row", Kernel{Divisor: 1, Targets: []Target{{-1, 0, 1}}}},
		{"row above", Kernel{Divisor: 1, Targets: []Target{{0, -1, 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.kernel.Validate(), ErrInvalidKernel)
		})
	}
}
