package decompose

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/tphakala/go-epd-dither/internal/barycentric"
)

// Projectors tagged with the palette indices of their vertices.
type (
	taggedTetra struct {
		projector *barycentric.Tetrahedron
		indices   [4]int
	}
	taggedFace struct {
		projector *barycentric.Triangle
		indices   [3]int
	}
	taggedEdge struct {
		projector *barycentric.Line
		indices   [2]int
	}
)

// buildSimplices builds one projector per k-combination of palette
// colours, skipping degenerate ones.
func buildSimplices[P any, T any](
	palette []r3.Vec,
	k int,
	build func(vertices []r3.Vec) (P, error),
	tag func(p P, indices []int) T,
	logger *slog.Logger,
) []T {
	if len(palette) < k {
		return nil
	}
	var (
		out      []T
		skipped  int
		vertices = make([]r3.Vec, k)
	)
	for _, c := range combin.Combinations(len(palette), k) {
		for i, idx := range c {
			vertices[i] = palette[idx]
		}
		p, err := build(vertices)
		if err != nil {
			skipped++
			logger.Debug("skipping degenerate simplex", "indices", c, "error", err)
			continue
		}
		out = append(out, tag(p, c))
	}
	logger.Debug("built simplices", "vertices", k, "usable", len(out), "degenerate", skipped)
	return out
}

func buildTetras(palette []r3.Vec, logger *slog.Logger) []taggedTetra {
	return buildSimplices(palette, 4,
		func(v []r3.Vec) (*barycentric.Tetrahedron, error) {
			return barycentric.NewTetrahedron([4]r3.Vec(v))
		},
		func(p *barycentric.Tetrahedron, c []int) taggedTetra {
			return taggedTetra{projector: p, indices: [4]int(c)}
		}, logger)
}

func buildFaces(palette []r3.Vec, logger *slog.Logger) []taggedFace {
	return buildSimplices(palette, 3,
		func(v []r3.Vec) (*barycentric.Triangle, error) {
			return barycentric.NewTriangle([3]r3.Vec(v))
		},
		func(p *barycentric.Triangle, c []int) taggedFace {
			return taggedFace{projector: p, indices: [3]int(c)}
		}, logger)
}

func buildEdges(palette []r3.Vec, logger *slog.Logger) []taggedEdge {
	return buildSimplices(palette, 2,
		func(v []r3.Vec) (*barycentric.Line, error) {
			return barycentric.NewLine([2]r3.Vec(v))
		},
		func(p *barycentric.Line, c []int) taggedEdge {
			return taggedEdge{projector: p, indices: [2]int(c)}
		}, logger)
}

// coveringTetra returns the tetrahedron containing pt preferred by tb.
func coveringTetra(tetras []taggedTetra, pt r3.Vec, tb TieBreak) (coords [4]float64, indices [4]int, ok bool) {
	var bestMax float64
	for i := range tetras {
		w := tetras[i].projector.Project(pt)
		if floats.Min(w[:]) < 0 {
			continue
		}
		m := floats.Max(w[:])
		if !ok || tb.better(m, bestMax) {
			coords, indices, bestMax, ok = w, tetras[i].indices, m, true
		}
	}
	return coords, indices, ok
}

func checkPaletteSize(palette []r3.Vec, minColors int) error {
	if len(palette) < minColors {
		return fmt.Errorf("%w: need at least %d colors, got %d", ErrPaletteSize, minColors, len(palette))
	}
	return nil
}
