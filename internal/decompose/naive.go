package decompose

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// minNaiveColors is the smallest palette spanning a tetrahedron.
const minNaiveColors = 4

// Naive decomposes colours using tetrahedra only.
//
// Points inside the palette's hull are handled exactly like [Bruteforce].
// For points outside it the tetrahedron with the largest smallest
// coordinate is used; its negative coordinates are clipped to zero and the
// rest renormalised. This is cheaper than searching faces and edges but
// does not find the closest point on the hull.
type Naive struct {
	numColors int
	tetras    []taggedTetra
}

// NewNaive builds the tetrahedra of palette. It fails if the palette has
// fewer than four colours or all of them are coplanar.
func NewNaive(palette []r3.Vec, opts ...Option) (*Naive, error) {
	if err := checkPaletteSize(palette, minNaiveColors); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	tetras := buildTetras(palette, o.logger)
	if len(tetras) == 0 {
		return nil, fmt.Errorf("%w: all %d colors are coplanar", ErrNoSimplices, len(palette))
	}
	return &Naive{numColors: len(palette), tetras: tetras}, nil
}

// NumColors returns the palette size.
func (n *Naive) NumColors() int {
	return n.numColors
}

// Decompose returns the palette weights of pt.
func (n *Naive) Decompose(pt r3.Vec, tb TieBreak) []float64 {
	return n.DecomposeInto(nil, pt, tb)
}

// DecomposeInto is like Decompose but writes into dst when it has enough
// capacity.
func (n *Naive) DecomposeInto(dst []float64, pt r3.Vec, tb TieBreak) []float64 {
	dst = resize(dst, n.numColors)

	if coords, indices, ok := coveringTetra(n.tetras, pt, tb); ok {
		scatter(dst, coords[:], indices[:])
		return dst
	}

	best := 0
	var bestCoords [4]float64
	for i := range n.tetras {
		w := n.tetras[i].projector.Project(pt)
		if i == 0 || floats.Min(w[:]) > floats.Min(bestCoords[:]) {
			best, bestCoords = i, w
		}
	}

	// Coordinates sum to 1, so at least one is positive.
	var sum float64
	for i, c := range bestCoords {
		c = max(c, 0)
		bestCoords[i] = c
		sum += c
	}
	floats.Scale(1/sum, bestCoords[:])

	scatter(dst, bestCoords[:], n.tetras[best].indices[:])
	return dst
}

// Bind returns a Decomposer that always uses tb.
func (n *Naive) Bind(tb TieBreak) Decomposer {
	return boundNaive{n: n, tb: tb}
}

type boundNaive struct {
	n  *Naive
	tb TieBreak
}

func (d boundNaive) NumColors() int { return d.n.numColors }

func (d boundNaive) DecomposeInto(dst []float64, pt r3.Vec) []float64 {
	return d.n.DecomposeInto(dst, pt, d.tb)
}
