package barycentric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-epd-dither/internal/testutil"
)

var (
	testA = r3.Vec{X: 0.1, Y: 0.2, Z: 0.3}
	testB = r3.Vec{X: 0.9, Y: 0.4, Z: 0.1}
)

// TestLine_ProjectSumsToOne verifies the affine invariant for arbitrary query points.
func TestLine_ProjectSumsToOne(t *testing.T) {
	line, err := NewLine([2]r3.Vec{testA, testB})
	require.NoError(t, err)

	queries := []r3.Vec{
		testA, testB,
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -3, Y: 7, Z: 2},
		{X: 10, Y: -10, Z: 0},
	}
	for _, q := range queries {
		w := line.Project(q)
		testutil.AssertSumsTo(t, w[:], 1, testutil.DefaultTolerance)
	}
}

func TestLine_ProjectEndpoints(t *testing.T) {
	line, err := NewLine([2]r3.Vec{testA, testB})
	require.NoError(t, err)

	assert.Equal(t, [2]float64{1, 0}, line.Project(testA))

	w := line.Project(testB)
	assert.InDelta(t, 0, w[0], testutil.DefaultTolerance)
	assert.InDelta(t, 1, w[1], testutil.DefaultTolerance)
}

func TestLine_ClippingProject(t *testing.T) {
	line, err := NewLine([2]r3.Vec{{}, {X: 2}})
	require.NoError(t, err)

	tests := []struct {
		name    string
		pt      r3.Vec
		want    [2]float64
		clipped bool
	}{
		{"beyond_b", r3.Vec{X: 3, Y: 1}, [2]float64{0, 1}, true},
		{"beyond_a", r3.Vec{X: -1, Z: 5}, [2]float64{1, 0}, true},
		{"between", r3.Vec{X: 0.5, Y: -2}, [2]float64{0.75, 0.25}, false},
		{"at_b", r3.Vec{X: 2}, [2]float64{0, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clipped := line.ClippingProject(tt.pt)
			assert.Equal(t, tt.clipped, clipped)
			assert.InDelta(t, tt.want[0], got[0], testutil.DefaultTolerance)
			assert.InDelta(t, tt.want[1], got[1], testutil.DefaultTolerance)

			if !tt.clipped {
				assert.Equal(t, line.Project(tt.pt), got, "unclipped result must pass through")
			}
		})
	}
}

func TestLine_Degenerate(t *testing.T) {
	_, err := NewLine([2]r3.Vec{testA, testA})
	require.ErrorIs(t, err, ErrDegenerate)

	line := newLine([2]r3.Vec{testA, testA})
	for _, q := range []r3.Vec{testA, testB, {X: -1}, {}} {
		assert.Equal(t, [2]float64{1, 0}, line.Project(q))
	}
}

func TestLine_BaryToPoint(t *testing.T) {
	line, err := NewLine([2]r3.Vec{testA, testB})
	require.NoError(t, err)

	mid := line.BaryToPoint([2]float64{0.5, 0.5})
	testutil.AssertVecInDelta(t, r3.Scale(0.5, r3.Add(testA, testB)), mid, testutil.DefaultTolerance)

	// Projecting a point on the line and mapping back is the identity.
	w := line.Project(mid)
	testutil.AssertVecInDelta(t, mid, line.BaryToPoint(w), testutil.DefaultTolerance)
}

func TestLine_DistanceSquared(t *testing.T) {
	line, err := NewLine([2]r3.Vec{{}, {Z: 4}})
	require.NoError(t, err)

	assert.InDelta(t, 0, line.DistanceSquared(r3.Vec{Z: 17}), testutil.DefaultTolerance)
	assert.InDelta(t, 9, line.DistanceSquared(r3.Vec{X: 3, Z: -2}), testutil.DefaultTolerance)
	assert.InDelta(t, 2, line.DistanceSquared(r3.Vec{X: 1, Y: 1, Z: 1}), testutil.DefaultTolerance)
}
