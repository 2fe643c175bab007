package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		noise   float64
		want    int
	}{
		{"first interval", []float64{0.25, 0.5, 0.25}, 0.1, 0},
		{"interval boundary", []float64{0.25, 0.5, 0.25}, 0.25, 1},
		{"middle", []float64{0.25, 0.5, 0.25}, 0.7, 1},
		{"last", []float64{0.25, 0.5, 0.25}, 0.9, 2},
		{"noise one stays in range", []float64{0.25, 0.5, 0.25}, 1, 2},
		{"negative weights skipped", []float64{-0.5, 1, 0.5}, 0, 1},
		{"scaled by clipped sum", []float64{1, 1, 0}, 0.6, 1},
		{"zero weights walked over", []float64{0, 0, 2}, 0, 2},
		{"all non-positive uses argmax", []float64{-1, -0.25, -3}, 0.5, 1},
		{"all zero", []float64{0, 0, 0}, 0.5, 0},
		{"rounding residue ignored", []float64{0, 4.4e-16, -1.2e-15, 0, 1.0000000000000004, 3.3e-16}, 0, 4},
		{"tiny leading weight", []float64{1e-16, 0, 1}, 0, 2},
		{"noise one ends on last positive", []float64{0.5, 0.5, 0}, 1, 1},
		{"noise near one skips trailing zero", []float64{0.1, 0.2, 0.7, 0}, 0.9999999999999999, 2},
		{"residue only uses argmax", []float64{1e-15, 3e-15, -1}, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.weights, tt.noise))
		})
	}
}

func TestSelect_Distribution(t *testing.T) {
	// Evenly spaced noise reproduces the weights as frequencies.
	weights := []float64{0.125, 0.5, 0.375}
	const n = 64
	counts := make([]int, len(weights))
	for i := range n {
		counts[Select(weights, (float64(i)+0.5)/n)]++
	}
	assert.Equal(t, []int{8, 32, 24}, counts)
}

func TestArgmax(t *testing.T) {
	assert.Equal(t, 2, Argmax([]float64{0.1, 0.2, 0.7}))
	assert.Equal(t, 0, Argmax([]float64{0.5, 0.5}))
	assert.Equal(t, -1, Argmax(nil))
}
