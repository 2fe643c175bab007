package decompose

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-epd-dither/internal/barycentric"
)

const (
	octahedronColors = 6
	octahedronAxes   = 3
)

// Octahedron decomposes colours of a six-colour palette whose points form a
// convex octahedron, such as the Spectra 6 e-paper primaries.
//
// The three pairs of opposite colours each define a central axis. Around
// every axis the octahedron is split into four tetrahedra; which axis is
// used for a point is chosen by an [AxisStrategy].
type Octahedron struct {
	axes      [octahedronAxes]octahedronAxis
	opposites [octahedronAxes][2]int
}

type octahedronAxis struct {
	poles     [2]int
	centre    *barycentric.Line
	projector *barycentric.Octahedron

	// colorToVertex maps palette index to the projector's local vertex index.
	colorToVertex [octahedronColors]int
}

// AxisStrategy selects the central axis used to decompose a point.
type AxisStrategy struct {
	kind axisKind
	axis int
}

type axisKind int

const (
	axisFixed axisKind = iota
	axisClosest
	axisFurthest
	axisAverage
)

var (
	// Closest uses the axis whose centre line is nearest to the point.
	Closest = AxisStrategy{kind: axisClosest}

	// Furthest uses the axis whose centre line is farthest from the point.
	Furthest = AxisStrategy{kind: axisFurthest}

	// Average averages the decompositions of all three axes when the point
	// lies inside the octahedron. Outside it, axis 0 alone is used.
	Average = AxisStrategy{kind: axisAverage}
)

// Axis returns a strategy that always uses axis k (taken modulo 3).
func Axis(k int) AxisStrategy {
	return AxisStrategy{kind: axisFixed, axis: k}
}

// String returns the strategy name.
func (s AxisStrategy) String() string {
	switch s.kind {
	case axisClosest:
		return "closest"
	case axisFurthest:
		return "furthest"
	case axisAverage:
		return "average"
	default:
		return "axis:" + strconv.Itoa(s.axis)
	}
}

// NewOctahedron builds the three axis decompositions of palette. It fails
// unless the palette has exactly six colours that pair into opposite
// poles, and every axis yields a valid octahedron.
func NewOctahedron(palette []r3.Vec, opts ...Option) (*Octahedron, error) {
	if len(palette) != octahedronColors {
		return nil, fmt.Errorf("%w: octahedron needs exactly %d colors, got %d",
			ErrPaletteSize, octahedronColors, len(palette))
	}
	o := buildOptions(opts)

	points := [octahedronColors]r3.Vec(palette)
	opposites, err := barycentric.FindOpposites(points)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("found opposite colors", "pairs", opposites)

	d := &Octahedron{opposites: opposites}
	for k := range d.axes {
		axis, err := newOctahedronAxis(points, barycentric.AxisOrder(opposites, k))
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", k, err)
		}
		d.axes[k] = axis
	}
	return d, nil
}

func newOctahedronAxis(points [octahedronColors]r3.Vec, vertexToColor [octahedronColors]int) (octahedronAxis, error) {
	var (
		a        octahedronAxis
		vertices [octahedronColors]r3.Vec
	)
	for vertex, color := range vertexToColor {
		a.colorToVertex[color] = vertex
		vertices[vertex] = points[color]
	}
	a.poles = [2]int{vertexToColor[0], vertexToColor[1]}

	var err error
	if a.projector, err = barycentric.NewOctahedron(vertices); err != nil {
		return a, err
	}
	if a.centre, err = barycentric.NewLine([2]r3.Vec{vertices[0], vertices[1]}); err != nil {
		return a, err
	}
	return a, nil
}

// project writes the palette-ordered weights of pt into dst.
func (a *octahedronAxis) project(dst *[octahedronColors]float64, pt r3.Vec) bool {
	local, inside := a.projector.Project(pt)
	for color, vertex := range a.colorToVertex {
		dst[color] = local[vertex]
	}
	return inside
}

// NumColors returns the palette size, always 6.
func (d *Octahedron) NumColors() int {
	return octahedronColors
}

// Opposites returns the three pairs of opposite palette indices. Pair k
// holds the poles of axis k.
func (d *Octahedron) Opposites() [octahedronAxes][2]int {
	return d.opposites
}

// AxisFromColor returns the axis having color as one of its poles.
func (d *Octahedron) AxisFromColor(color int) (int, bool) {
	for k := range d.axes {
		if d.axes[k].poles[0] == color || d.axes[k].poles[1] == color {
			return k, true
		}
	}
	return 0, false
}

// Decompose returns the palette weights of pt.
func (d *Octahedron) Decompose(pt r3.Vec, s AxisStrategy) []float64 {
	return d.DecomposeInto(nil, pt, s)
}

// DecomposeInto is like Decompose but writes into dst when it has enough
// capacity.
func (d *Octahedron) DecomposeInto(dst []float64, pt r3.Vec, s AxisStrategy) []float64 {
	var w [octahedronColors]float64

	switch s.kind {
	case axisAverage:
		if d.axes[0].project(&w, pt) {
			var other [octahedronColors]float64
			for k := 1; k < octahedronAxes; k++ {
				d.axes[k].project(&other, pt)
				for i := range w {
					w[i] += other[i]
				}
			}
			for i := range w {
				w[i] /= octahedronAxes
			}
		}
	case axisClosest, axisFurthest:
		best := 0
		bestDist := d.axes[0].centre.DistanceSquared(pt)
		for k := 1; k < octahedronAxes; k++ {
			dist := d.axes[k].centre.DistanceSquared(pt)
			if (s.kind == axisClosest && dist < bestDist) || (s.kind == axisFurthest && dist > bestDist) {
				best, bestDist = k, dist
			}
		}
		d.axes[best].project(&w, pt)
	default:
		d.axes[((s.axis%octahedronAxes)+octahedronAxes)%octahedronAxes].project(&w, pt)
	}

	dst = resize(dst, octahedronColors)
	copy(dst, w[:])
	return dst
}

// Bind returns a Decomposer that always uses s.
func (d *Octahedron) Bind(s AxisStrategy) Decomposer {
	return boundOctahedron{d: d, s: s}
}

type boundOctahedron struct {
	d *Octahedron
	s AxisStrategy
}

func (b boundOctahedron) NumColors() int { return octahedronColors }

func (b boundOctahedron) DecomposeInto(dst []float64, pt r3.Vec) []float64 {
	return b.d.DecomposeInto(dst, pt, b.s)
}
