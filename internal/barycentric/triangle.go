package barycentric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle projects points onto the plane of a triangle.
type Triangle struct {
	a      r3.Vec
	e1, e2 r3.Vec
	normal r3.Vec // unit length

	// Gram matrix of (e1, e2) and the inverse of its determinant.
	d11, d12, d22 float64
	invDet        float64
}

// NewTriangle creates a triangle projector. It returns ErrDegenerate if the
// three vertices are (nearly) collinear.
func NewTriangle(vertices [3]r3.Vec) (*Triangle, error) {
	a := vertices[0]
	e1 := r3.Sub(vertices[1], a)
	e2 := r3.Sub(vertices[2], a)

	d11 := r3.Dot(e1, e1)
	d12 := r3.Dot(e1, e2)
	d22 := r3.Dot(e2, e2)
	det := d11*d22 - d12*d12
	if det <= triangleEpsilon*d11*d22 {
		return nil, fmt.Errorf("%w: triangle %v has zero area", ErrDegenerate, vertices)
	}

	cross := r3.Cross(e1, e2)
	return &Triangle{
		a:      a,
		e1:     e1,
		e2:     e2,
		normal: r3.Scale(1/math.Sqrt(r3.Norm2(cross)), cross),
		d11:    d11,
		d12:    d12,
		d22:    d22,
		invDet: 1 / det,
	}, nil
}

// Project returns the barycentric coordinates of pt's orthogonal projection
// onto the triangle's plane, and the signed distance from the plane to pt.
// The sign follows the right-hand orientation of the vertex order.
func (t *Triangle) Project(pt r3.Vec) ([3]float64, float64) {
	r := r3.Sub(pt, t.a)
	dr1 := r3.Dot(r, t.e1)
	dr2 := r3.Dot(r, t.e2)

	v := (t.d22*dr1 - t.d12*dr2) * t.invDet
	w := (t.d11*dr2 - t.d12*dr1) * t.invDet

	return [3]float64{1 - v - w, v, w}, r3.Dot(r, t.normal)
}

// BaryToPoint maps barycentric coordinates back to a point in the plane.
func (t *Triangle) BaryToPoint(coords [3]float64) r3.Vec {
	return r3.Add(t.a, r3.Add(r3.Scale(coords[1], t.e1), r3.Scale(coords[2], t.e2)))
}
