package dither

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy_RoundTrip(t *testing.T) {
	strategies := []Strategy{
		StrategyOctahedronClosest,
		StrategyOctahedronFurthest,
		StrategyOctahedronAverage,
		{Method: MethodOctahedron, Axis: AxisFixed, Index: 2},
		{Method: MethodOctahedron, Axis: AxisOfColor, Index: 4},
		StrategyBruteforceMix,
		StrategyBruteforceDominant,
		StrategyNaiveMix,
		StrategyNaiveDominant,
	}
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			got, err := ParseStrategy(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestParseStrategy_Names(t *testing.T) {
	tests := map[string]Strategy{
		"octahedron-closest":   {},
		" Naive-Mix ":          StrategyNaiveMix,
		"octahedron-axis:1":    {Method: MethodOctahedron, Axis: AxisFixed, Index: 1},
		"octahedron-color:0":   {Method: MethodOctahedron, Axis: AxisOfColor},
		"bruteforce-favor-mix": StrategyBruteforceMix,
	}
	for name, want := range tests {
		got, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestParseStrategy_Errors(t *testing.T) {
	for _, name := range []string{"", "octahedron", "octahedron-axis:", "octahedron-axis:-1", "octahedron-color:x", "bruteforce"} {
		_, err := ParseStrategy(name)
		assert.ErrorIs(t, err, ErrUnknownStrategy, name)
	}
}

func TestParseKernel(t *testing.T) {
	for _, name := range KernelNames() {
		k, err := ParseKernel(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.Name)
	}

	k, err := ParseKernel("Jarvis-Judice-And-Ninke")
	require.NoError(t, err)
	assert.Equal(t, JarvisJudiceNinke.Name, k.Name)

	_, err = ParseKernel("stucki")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
