package barycentric

import "errors"

var (
	// ErrDegenerate indicates that the vertices do not span a simplex of the
	// requested dimension.
	ErrDegenerate = errors.New("barycentric: degenerate simplex")

	// ErrNoOpposites indicates that six points cannot be paired into three
	// opposite pole pairs of a convex octahedron.
	ErrNoOpposites = errors.New("barycentric: no valid opposite pairing")
)
