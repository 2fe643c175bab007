package barycentric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tetrahedron computes barycentric coordinates relative to four vertices.
type Tetrahedron struct {
	a r3.Vec

	// Rows of the inverse edge matrix: coordinate i+1 of a point p is
	// dot(p-a, inv[i]).
	inv [3]r3.Vec

	// det is the scalar triple product of the edges, six times the signed volume.
	det float64
}

// NewTetrahedron creates a tetrahedron projector. It returns ErrDegenerate
// if the four vertices are (nearly) coplanar.
func NewTetrahedron(vertices [4]r3.Vec) (*Tetrahedron, error) {
	a := vertices[0]
	e1 := r3.Sub(vertices[1], a)
	e2 := r3.Sub(vertices[2], a)
	e3 := r3.Sub(vertices[3], a)

	c23 := r3.Cross(e2, e3)
	det := r3.Dot(e1, c23)
	scale := math.Sqrt(r3.Norm2(e1) * r3.Norm2(e2) * r3.Norm2(e3))
	if math.Abs(det) <= tetrahedronEpsilon*scale {
		return nil, fmt.Errorf("%w: tetrahedron %v has zero volume", ErrDegenerate, vertices)
	}

	// Cramer's rule.
	inv := 1 / det
	return &Tetrahedron{
		a: a,
		inv: [3]r3.Vec{
			r3.Scale(inv, c23),
			r3.Scale(inv, r3.Cross(e3, e1)),
			r3.Scale(inv, r3.Cross(e1, e2)),
		},
		det: det,
	}, nil
}

// Project returns the barycentric coordinates of pt. They sum to 1; pt lies
// inside the tetrahedron iff all of them are non-negative.
func (t *Tetrahedron) Project(pt r3.Vec) [4]float64 {
	r := r3.Sub(pt, t.a)
	l1 := r3.Dot(r, t.inv[0])
	l2 := r3.Dot(r, t.inv[1])
	l3 := r3.Dot(r, t.inv[2])
	return [4]float64{1 - l1 - l2 - l3, l1, l2, l3}
}

// Contains reports whether pt lies inside or on the tetrahedron.
func (t *Tetrahedron) Contains(pt r3.Vec) bool {
	for _, c := range t.Project(pt) {
		if c < 0 {
			return false
		}
	}
	return true
}

// SignedVolume returns the oriented volume of the tetrahedron. Its sign
// flips when two vertices are swapped.
func (t *Tetrahedron) SignedVolume() float64 {
	return t.det / 6
}
