// Package barycentric projects points onto simplices spanned by palette
// colours and reports their barycentric coordinates.
//
// Four projector kinds are provided: [Line], [Triangle], [Tetrahedron] and
// [Octahedron]. Each is built once from a fixed vertex set and is immutable
// afterwards, so a projector may be queried concurrently from any number of
// goroutines.
//
// Coordinates are not clipped unless a method says so: a point outside the
// simplex yields the linear extrapolation, with at least one negative
// coordinate. Callers use that sign to decide containment.
//
// Constructors return [ErrDegenerate] when the vertices do not span the
// simplex (coincident points, zero area, zero volume).
package barycentric
