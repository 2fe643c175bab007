package decompose

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// minBruteforceColors is the smallest palette the bruteforce search accepts.
const minBruteforceColors = 2

// Bruteforce decomposes colours by exhaustive search over every tetrahedron,
// triangle and edge spanned by the palette.
//
// Points inside the palette's convex hull are expressed in a covering
// tetrahedron. Points outside it are projected onto the closest face or
// edge.
type Bruteforce struct {
	numColors int
	tetras    []taggedTetra
	faces     []taggedFace
	edges     []taggedEdge
}

// NewBruteforce builds the search structures for palette. Degenerate
// combinations are skipped; construction fails only when none remain.
func NewBruteforce(palette []r3.Vec, opts ...Option) (*Bruteforce, error) {
	if err := checkPaletteSize(palette, minBruteforceColors); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	b := &Bruteforce{
		numColors: len(palette),
		tetras:    buildTetras(palette, o.logger),
		faces:     buildFaces(palette, o.logger),
		edges:     buildEdges(palette, o.logger),
	}
	if len(b.tetras) == 0 && len(b.faces) == 0 && len(b.edges) == 0 {
		return nil, fmt.Errorf("%w: all %d colors coincide", ErrNoSimplices, len(palette))
	}
	return b, nil
}

// NumColors returns the palette size.
func (b *Bruteforce) NumColors() int {
	return b.numColors
}

// Decompose returns the palette weights of pt.
func (b *Bruteforce) Decompose(pt r3.Vec, tb TieBreak) []float64 {
	return b.DecomposeInto(nil, pt, tb)
}

// DecomposeInto is like Decompose but writes into dst when it has enough
// capacity.
func (b *Bruteforce) DecomposeInto(dst []float64, pt r3.Vec, tb TieBreak) []float64 {
	dst = resize(dst, b.numColors)

	if coords, indices, ok := coveringTetra(b.tetras, pt, tb); ok {
		scatter(dst, coords[:], indices[:])
		return dst
	}

	var (
		faceDist    float64
		faceCoords  [3]float64
		faceIndices [3]int
		haveFace    bool
	)
	for i := range b.faces {
		w, dist := b.faces[i].projector.Project(pt)
		if floats.Min(w[:]) < 0 {
			continue
		}
		// Squared so the sign drops out and it compares with edge distances.
		d := dist * dist
		if !haveFace || d < faceDist {
			faceDist, faceCoords, faceIndices, haveFace = d, w, b.faces[i].indices, true
		}
	}

	var (
		edgeDist    float64
		edgeCoords  [2]float64
		edgeIndices [2]int
		haveEdge    bool
	)
	for i := range b.edges {
		line := b.edges[i].projector
		w, _ := line.ClippingProject(pt)
		d := r3.Norm2(r3.Sub(line.BaryToPoint(w), pt))
		if !haveEdge || d < edgeDist {
			edgeDist, edgeCoords, edgeIndices, haveEdge = d, w, b.edges[i].indices, true
		}
	}

	switch {
	case haveFace && haveEdge:
		if edgeDist < faceDist {
			scatter(dst, edgeCoords[:], edgeIndices[:])
		} else {
			scatter(dst, faceCoords[:], faceIndices[:])
		}
	case haveFace:
		scatter(dst, faceCoords[:], faceIndices[:])
	case haveEdge:
		scatter(dst, edgeCoords[:], edgeIndices[:])
	default:
		// A palette with two distinct colours always has an edge.
		panic(fmt.Sprintf("decompose: bruteforce found no simplex for %v (%d colors)", pt, b.numColors))
	}
	return dst
}

// Bind returns a Decomposer that always uses tb.
func (b *Bruteforce) Bind(tb TieBreak) Decomposer {
	return boundBruteforce{b: b, tb: tb}
}

type boundBruteforce struct {
	b  *Bruteforce
	tb TieBreak
}

func (d boundBruteforce) NumColors() int { return d.b.numColors }

func (d boundBruteforce) DecomposeInto(dst []float64, pt r3.Vec) []float64 {
	return d.b.DecomposeInto(dst, pt, d.tb)
}
