package barycentric

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Octahedron computes barycentric coordinates relative to the six vertices
// of a convex octahedron.
//
// Vertices are ordered [north, south, a, b, a', b']: the two poles of the
// central axis first, then the equatorial ring a → b → a' → b', where (a, a')
// and (b, b') are opposite pairs. The solid is split into four wedge
// tetrahedra (north, south, ring[i], ring[i+1]) sharing the pole axis.
type Octahedron struct {
	wedges [octahedronWedges]*Tetrahedron
}

// ringVertices lists the local vertex indices of the equatorial ring in order.
var ringVertices = [octahedronWedges]int{2, 3, 4, 5}

// NewOctahedron creates an octahedron projector. It returns ErrDegenerate if
// a wedge has zero volume or the equatorial ring does not wind exactly once
// around the pole axis.
func NewOctahedron(vertices [octahedronVertices]r3.Vec) (*Octahedron, error) {
	o := &Octahedron{}
	for i := range o.wedges {
		a := ringVertices[i]
		b := ringVertices[(i+1)%octahedronWedges]
		wedge, err := NewTetrahedron([4]r3.Vec{vertices[0], vertices[1], vertices[a], vertices[b]})
		if err != nil {
			return nil, fmt.Errorf("octahedron wedge %d: %w", i, err)
		}
		o.wedges[i] = wedge
	}

	// Every step around the ring must turn the same way, otherwise the
	// wedges overlap and do not tile the solid.
	first := o.wedges[0].SignedVolume() > 0
	for i := 1; i < octahedronWedges; i++ {
		if (o.wedges[i].SignedVolume() > 0) != first {
			return nil, fmt.Errorf("%w: octahedron ring is not convex around the pole axis", ErrDegenerate)
		}
	}
	return o, nil
}

// Project returns the barycentric coordinates of pt over the six vertices and
// whether pt lies inside the octahedron.
//
// The wedge containing pt's angular position around the pole axis is used, so
// at most four coordinates are non-zero. Outside the octahedron the result is
// that wedge's linear extrapolation.
func (o *Octahedron) Project(pt r3.Vec) ([octahedronVertices]float64, bool) {
	best := -1
	var bestCoords [4]float64
	bestMargin := 0.0
	for i, wedge := range o.wedges {
		coords := wedge.Project(pt)
		if coords[2] >= 0 && coords[3] >= 0 {
			best, bestCoords = i, coords
			break
		}
		// Not in this sector; remember the nearest miss in case rounding
		// leaves pt outside every sector.
		margin := min(coords[2], coords[3])
		if best < 0 || margin > bestMargin {
			best, bestCoords, bestMargin = i, coords, margin
		}
	}

	var ret [octahedronVertices]float64
	ret[0] = bestCoords[0]
	ret[1] = bestCoords[1]
	ret[ringVertices[best]] = bestCoords[2]
	ret[ringVertices[(best+1)%octahedronWedges]] = bestCoords[3]

	inside := bestCoords[0] >= 0 && bestCoords[1] >= 0 && bestCoords[2] >= 0 && bestCoords[3] >= 0
	return ret, inside
}

// AxisOrder returns the vertex ordering for an octahedron projector that
// uses opposites[axis] as its pole pair. The result maps local vertex
// index to the index into the original six points.
func AxisOrder(opposites [octahedronAxes][2]int, axis int) [octahedronVertices]int {
	p := opposites[axis%octahedronAxes]
	q := opposites[(axis+1)%octahedronAxes]
	r := opposites[(axis+2)%octahedronAxes]
	return [octahedronVertices]int{p[0], p[1], q[0], r[0], q[1], r[1]}
}

// FindOpposites pairs six points into the three opposite pole pairs of the
// octahedron they span.
//
// A pairing is accepted when each of its three pairs, used as a pole axis,
// yields a valid [Octahedron]. Among accepted pairings the one with the
// longest total squared pair length wins. Pairs are returned with the lower
// index first and sorted by that index.
func FindOpposites(points [octahedronVertices]r3.Vec) ([octahedronAxes][2]int, error) {
	var (
		best      [octahedronAxes][2]int
		bestScore float64
		found     bool
	)
	for _, m := range perfectMatchings() {
		if !validOpposites(points, m) {
			continue
		}
		score := 0.0
		for _, pair := range m {
			score += r3.Norm2(r3.Sub(points[pair[0]], points[pair[1]]))
		}
		if !found || score > bestScore {
			best, bestScore, found = m, score, true
		}
	}
	if !found {
		return best, ErrNoOpposites
	}
	return best, nil
}

func validOpposites(points [octahedronVertices]r3.Vec, m [octahedronAxes][2]int) bool {
	for axis := range octahedronAxes {
		order := AxisOrder(m, axis)
		var vertices [octahedronVertices]r3.Vec
		for local, global := range order {
			vertices[local] = points[global]
		}
		if _, err := NewOctahedron(vertices); err != nil {
			return false
		}
	}
	return true
}

// perfectMatchings enumerates the 15 ways to split six indices into three
// unordered pairs, in lexicographic order.
func perfectMatchings() [][octahedronAxes][2]int {
	var (
		out  [][octahedronAxes][2]int
		cur  [octahedronAxes][2]int
		used [octahedronVertices]bool
		walk func(pair int)
	)
	walk = func(pair int) {
		if pair == octahedronAxes {
			out = append(out, cur)
			return
		}
		first := 0
		for used[first] {
			first++
		}
		used[first] = true
		for second := first + 1; second < octahedronVertices; second++ {
			if used[second] {
				continue
			}
			used[second] = true
			cur[pair] = [2]int{first, second}
			walk(pair + 1)
			used[second] = false
		}
		used[first] = false
	}
	walk(0)
	return out
}
