package barycentric

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-epd-dither/internal/testutil"
)

func axisPoints() [6]r3.Vec {
	return [6]r3.Vec(testutil.OctahedronPalette())
}

func orderedOctahedron(t *testing.T, points [6]r3.Vec, order [6]int) *Octahedron {
	t.Helper()
	var verts [6]r3.Vec
	for local, global := range order {
		verts[local] = points[global]
	}
	o, err := NewOctahedron(verts)
	require.NoError(t, err)
	return o
}

func TestFindOpposites_AxisAligned(t *testing.T) {
	got, err := FindOpposites(axisPoints())
	require.NoError(t, err)

	want := [3][2]int{{0, 1}, {2, 3}, {4, 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindOpposites mismatch (-want +got):\n%s", diff)
	}
}

func TestFindOpposites_Shuffled(t *testing.T) {
	// +y, +z, -x, -z, +x, -y
	pts := [6]r3.Vec{{Y: 1}, {Z: 1}, {X: -1}, {Z: -1}, {X: 1}, {Y: -1}}

	got, err := FindOpposites(pts)
	require.NoError(t, err)

	want := [3][2]int{{0, 5}, {1, 3}, {2, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindOpposites mismatch (-want +got):\n%s", diff)
	}
}

func TestFindOpposites_Irregular(t *testing.T) {
	// A squashed, shifted octahedron similar to a measured e-paper palette.
	pts := [6]r3.Vec{
		{X: 0.2, Y: 0.0, Z: 0.25}, // black
		{X: 0.7, Y: 0.8, Z: 0.8},  // white
		{X: 0.85, Y: 0.9, Z: 0.0}, // yellow
		{X: 0.6, Y: 0.15, Z: 0.2}, // red
		{X: 0.25, Y: 0.15, Z: 0.6}, // blue
		{X: 0.35, Y: 0.45, Z: 0.3}, // green
	}
	got, err := FindOpposites(pts)
	require.NoError(t, err)

	for axis := range 3 {
		order := AxisOrder(got, axis)
		orderedOctahedron(t, pts, order)
	}
}

func TestFindOpposites_Coplanar(t *testing.T) {
	pts := [6]r3.Vec{
		{X: 1}, {X: -1},
		{X: 0.5, Y: 0.8}, {X: -0.5, Y: -0.8},
		{X: -0.5, Y: 0.8}, {X: 0.5, Y: -0.8},
	}
	_, err := FindOpposites(pts)
	assert.ErrorIs(t, err, ErrNoOpposites)
}

func TestPerfectMatchings(t *testing.T) {
	ms := perfectMatchings()
	assert.Len(t, ms, 15)

	seen := make(map[[3][2]int]bool)
	for _, m := range ms {
		assert.False(t, seen[m], "duplicate matching %v", m)
		seen[m] = true

		var used [6]bool
		for _, p := range m {
			assert.Less(t, p[0], p[1])
			used[p[0]], used[p[1]] = true, true
		}
		assert.Equal(t, [6]bool{true, true, true, true, true, true}, used)
	}
}

func TestAxisOrder(t *testing.T) {
	opp := [3][2]int{{0, 1}, {2, 4}, {3, 5}}
	assert.Equal(t, [6]int{0, 1, 2, 3, 4, 5}, AxisOrder(opp, 0))
	assert.Equal(t, [6]int{2, 4, 3, 0, 5, 1}, AxisOrder(opp, 1))
	assert.Equal(t, [6]int{3, 5, 0, 2, 1, 4}, AxisOrder(opp, 2))
	assert.Equal(t, AxisOrder(opp, 0), AxisOrder(opp, 3), "axis wraps modulo 3")
}

func TestOctahedron_ProjectVertices(t *testing.T) {
	pts := axisPoints()
	order := AxisOrder([3][2]int{{0, 1}, {2, 3}, {4, 5}}, 0)
	o := orderedOctahedron(t, pts, order)

	for local, global := range order {
		w, inside := o.Project(pts[global])
		assert.True(t, inside, "vertex %d", global)
		testutil.AssertOneHot(t, w[:], local, testutil.DefaultTolerance)
	}
}

func TestOctahedron_ProjectCentroid(t *testing.T) {
	o := orderedOctahedron(t, axisPoints(), AxisOrder([3][2]int{{0, 1}, {2, 3}, {4, 5}}, 0))

	w, inside := o.Project(r3.Vec{})
	assert.True(t, inside)
	assert.Equal(t, [6]float64{0.5, 0.5, 0, 0, 0, 0}, w)
}

func TestOctahedron_ProjectInterior(t *testing.T) {
	pts := axisPoints()
	order := AxisOrder([3][2]int{{0, 1}, {2, 3}, {4, 5}}, 0)
	o := orderedOctahedron(t, pts, order)

	var local [6]r3.Vec
	for l, g := range order {
		local[l] = pts[g]
	}

	queries := []r3.Vec{
		{X: 0.1, Y: 0.2, Z: 0.3},
		{X: -0.2, Y: -0.3, Z: 0.1},
		{X: 0.3, Y: -0.1, Z: -0.4},
		{X: -0.05, Y: 0.4, Z: -0.3},
	}
	for _, q := range queries {
		w, inside := o.Project(q)
		assert.True(t, inside, "query %v", q)
		testutil.AssertSumsTo(t, w[:], 1, testutil.DefaultTolerance)
		testutil.AssertAllNonNegative(t, w[:], testutil.DefaultTolerance)
		testutil.AssertVecInDelta(t, q, testutil.Weighted(local[:], w[:]), testutil.DefaultTolerance)
	}
}

func TestOctahedron_ProjectOutside(t *testing.T) {
	o := orderedOctahedron(t, axisPoints(), AxisOrder([3][2]int{{0, 1}, {2, 3}, {4, 5}}, 0))

	w, inside := o.Project(r3.Vec{X: 1, Y: 1, Z: 1})
	assert.False(t, inside)
	testutil.AssertSumsTo(t, w[:], 1, testutil.DefaultTolerance)

	var negative bool
	for _, c := range w {
		negative = negative || c < 0
	}
	assert.True(t, negative, "outside projection extrapolates: %v", w)
}

func TestOctahedron_RejectsAdjacentPoles(t *testing.T) {
	pts := axisPoints()
	// +x and +y share an edge; using them as poles folds the ring over.
	var verts [6]r3.Vec
	for local, global := range [6]int{0, 2, 1, 4, 3, 5} {
		verts[local] = pts[global]
	}
	_, err := NewOctahedron(verts)
	assert.ErrorIs(t, err, ErrDegenerate)
}
