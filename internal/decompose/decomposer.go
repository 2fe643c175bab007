package decompose

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"
)

// Decomposer is a decomposer bound to a fixed strategy.
type Decomposer interface {
	// NumColors returns the length of the weight vectors produced.
	NumColors() int

	// DecomposeInto writes the palette weights of pt into dst, reusing its
	// storage when large enough, and returns the filled slice.
	DecomposeInto(dst []float64, pt r3.Vec) []float64
}

// TieBreak selects among several tetrahedra that all contain a point.
type TieBreak int

const (
	// FavorMix picks the tetrahedron whose largest weight is smallest,
	// spreading the mixture over its vertices.
	FavorMix TieBreak = iota

	// FavorDominant picks the tetrahedron whose largest weight is largest,
	// favouring a single dominant colour.
	FavorDominant
)

// String returns the tie-break name.
func (s TieBreak) String() string {
	switch s {
	case FavorMix:
		return "favor-mix"
	case FavorDominant:
		return "favor-dominant"
	default:
		return "unknown"
	}
}

// better reports whether a tetrahedron with largest weight candidate should
// replace one with largest weight current.
func (s TieBreak) better(candidate, current float64) bool {
	if s == FavorDominant {
		return candidate > current
	}
	return candidate < current
}

// Option configures decomposer construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger receiving construction diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

var discardLogger = slog.New(slog.DiscardHandler)

func buildOptions(opts []Option) options {
	o := options{logger: discardLogger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger
	}
	return o
}

// resize returns dst with length n and all elements zero.
func resize(dst []float64, n int) []float64 {
	if cap(dst) < n {
		return make([]float64, n)
	}
	dst = dst[:n]
	clear(dst)
	return dst
}

// scatter writes local barycentric coordinates into dst at the palette
// indices of the simplex's vertices.
func scatter(dst, local []float64, indices []int) {
	for i, global := range indices {
		dst[global] = local[i]
	}
}
