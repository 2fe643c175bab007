package barycentric

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Line projects points onto the line through two vertices.
//
// The line is parameterised as origin + t*direction, with the origin at the
// first vertex and direction pointing to the second. Barycentric coordinates
// are [1-t, t].
type Line struct {
	origin        r3.Vec
	direction     r3.Vec
	lengthSquared float64
}

// NewLine creates a line projector through vertices[0] and vertices[1].
// It returns ErrDegenerate if the two vertices coincide.
func NewLine(vertices [2]r3.Vec) (*Line, error) {
	l := newLine(vertices)
	if l.lengthSquared == 0 {
		return nil, fmt.Errorf("%w: line endpoints coincide at %v", ErrDegenerate, vertices[0])
	}
	return l, nil
}

// newLine builds a line without the degeneracy check. A zero-length line
// projects every point onto its origin.
func newLine(vertices [2]r3.Vec) *Line {
	direction := r3.Sub(vertices[1], vertices[0])
	return &Line{
		origin:        vertices[0],
		direction:     direction,
		lengthSquared: r3.Norm2(direction),
	}
}

// Project returns the barycentric coordinates of pt's orthogonal projection
// onto the line. The coordinates always sum to 1; outside the segment one of
// them is negative.
func (l *Line) Project(pt r3.Vec) [2]float64 {
	if l.lengthSquared == 0 {
		return [2]float64{1, 0}
	}
	originToPt := r3.Sub(pt, l.origin)
	if r3.Norm2(originToPt) == 0 {
		return [2]float64{1, 0}
	}
	t := r3.Dot(originToPt, l.direction) / l.lengthSquared
	return [2]float64{1 - t, t}
}

// ClippingProject projects pt onto the segment between the two vertices.
// Projections falling beyond an endpoint are clamped to it and reported as
// clipped.
func (l *Line) ClippingProject(pt r3.Vec) ([2]float64, bool) {
	ret := l.Project(pt)
	switch {
	case ret[0] < 0:
		return [2]float64{0, 1}, true
	case ret[1] < 0:
		return [2]float64{1, 0}, true
	default:
		return ret, false
	}
}

// BaryToPoint maps barycentric coordinates back to a point on the line.
func (l *Line) BaryToPoint(coords [2]float64) r3.Vec {
	return r3.Add(l.origin, r3.Scale(coords[1], l.direction))
}

// DistanceSquared returns the squared distance from pt to the infinite line.
// A zero-length line measures the distance to its origin.
func (l *Line) DistanceSquared(pt r3.Vec) float64 {
	if l.lengthSquared == 0 {
		return r3.Norm2(r3.Sub(pt, l.origin))
	}
	// |d x (o - p)|² / |d|², see mathworld Point-LineDistance3-Dimensional.
	return r3.Norm2(r3.Cross(l.direction, r3.Sub(l.origin, pt))) / l.lengthSquared
}
