package barycentric

// Degeneracy thresholds. Both are relative to the product of the edge
// lengths involved, so the test does not depend on the scale of the palette.
const (
	// triangleEpsilon bounds sin²(angle) between the two edges of a triangle.
	triangleEpsilon = 1e-12

	// tetrahedronEpsilon bounds |det(e1, e2, e3)| / (|e1| |e2| |e3|).
	tetrahedronEpsilon = 1e-9
)

const (
	// octahedronVertices is the vertex count of an octahedron projector.
	octahedronVertices = 6

	// octahedronAxes is the number of pole pairs of an octahedron.
	octahedronAxes = 3

	// octahedronWedges is the number of tetrahedra around the pole axis.
	octahedronWedges = 4
)
