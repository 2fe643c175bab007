// Package decompose expresses a colour as a weighted mixture of palette
// colours.
//
// A decomposer is built once per palette from the projectors of package
// barycentric, each tagged with the palette indices of its vertices. It then
// maps any point to a weight vector with one entry per palette colour:
// weights of the simplex used for the point sum to 1, all other entries are
// zero.
//
// Three decomposers are provided:
//
//   - [Octahedron] for six-colour palettes forming a convex octahedron. It
//     splits the solid around one of three pole axes.
//   - [Bruteforce] for any palette. It searches every tetrahedron, face and
//     edge spanned by the palette.
//   - [Naive], a cheaper tetrahedra-only search that clips points outside the
//     palette's hull onto the nearest tetrahedron.
//
// Decomposers are immutable and safe for concurrent use.
package decompose
