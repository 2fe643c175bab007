package dither

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"runtime"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-epd-dither/internal/decompose"
	"github.com/tphakala/go-epd-dither/internal/diffuse"
	"github.com/tphakala/go-epd-dither/internal/noise"
	"github.com/tphakala/go-epd-dither/internal/simdops"
)

// Ditherer renders images into a fixed palette. It is immutable after New
// and safe for concurrent use.
type Ditherer struct {
	config     Config
	strategy   Strategy
	decomposer decompose.Decomposer
	output     color.Palette

	// channels holds the dither palette per colour channel for Mix.
	channels [rgbChannels][]float64
}

var _ draw.Drawer = (*Ditherer)(nil)

// New builds a Ditherer. The decomposer is constructed once here; a
// palette the strategy cannot handle is reported as an error unless
// FallbackStrategy is set.
func New(config *Config) (*Ditherer, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := Logger()
	points := config.DitherPalette.Points()

	strategy := config.Strategy
	dec, err := strategy.build(points, logger)
	if err != nil && config.FallbackStrategy != nil {
		logger.Warn("strategy unusable for palette, using fallback",
			"strategy", strategy.String(),
			"fallback", config.FallbackStrategy.String(),
			"error", err)
		strategy = *config.FallbackStrategy
		dec, err = strategy.build(points, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", strategy, err)
	}

	d := &Ditherer{
		config:     *config,
		strategy:   strategy,
		decomposer: dec,
		output:     config.outputPalette().ColorPalette(),
	}
	for c := range d.channels {
		d.channels[c] = make([]float64, len(points))
	}
	for i, p := range points {
		d.channels[0][i], d.channels[1][i], d.channels[2][i] = p.X, p.Y, p.Z
	}

	logger.Debug("ditherer ready",
		"strategy", strategy.String(),
		"kernel", config.Kernel.Name,
		"colors", len(points),
		"parallel", config.EnableParallel)
	return d, nil
}

// Strategy returns the strategy in use, which is the fallback when the
// configured strategy could not be built.
func (d *Ditherer) Strategy() Strategy {
	return d.strategy
}

// Palette returns the output palette.
func (d *Ditherer) Palette() color.Palette {
	return d.output
}

// Decompose returns the dither palette weights of c.
func (d *Ditherer) Decompose(c color.Color) []float64 {
	return d.decomposer.DecomposeInto(nil, colorPoint(c))
}

// Mix returns the point in the unit RGB cube described by weights over the
// dither palette. weights must have one entry per palette colour.
func (d *Ditherer) Mix(weights []float64) r3.Vec {
	dot := simdops.Float64Ops().DotProductUnsafe
	weights = weights[:len(d.channels[0])]
	return r3.Vec{
		X: dot(weights, d.channels[0]),
		Y: dot(weights, d.channels[1]),
		Z: dot(weights, d.channels[2]),
	}
}

// Dither returns src rendered into the output palette.
func (d *Ditherer) Dither(src image.Image) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(b, d.output)
	d.Draw(dst, b, src, b.Min)
	return dst
}

// Draw renders the part of src starting at sp into r of dst, in the manner
// of draw.Drawer. Noise coordinates are relative to r.Min.
func (d *Ditherer) Draw(dst draw.Image, r image.Rectangle, src image.Image, sp image.Point) {
	r, sp = clip(dst.Bounds(), r, src.Bounds(), sp)
	if r.Empty() {
		return
	}

	start := time.Now()
	t := &target{
		dst:    dst,
		r:      r,
		src:    src,
		sp:     sp,
		noise:  d.config.Noise,
		output: d.output,
	}
	if p, ok := dst.(*image.Paletted); ok && samePalette(p.Palette, d.output) {
		t.paletted = p
	}
	if d.config.EnableParallel {
		t.weights = d.decomposeAll(src, r.Size(), sp)
		t.n = d.decomposer.NumColors()
	}

	q := &quantizer{decomposer: d.decomposer}
	if err := diffuse.Run[sample, int, diffuse.Vector](q, d.config.Kernel, t, d.config.Serpentine); err != nil {
		// The kernel was validated in New.
		panic(err)
	}

	Logger().Debug("dithered",
		"width", r.Dx(), "height", r.Dy(),
		"parallel", d.config.EnableParallel,
		"elapsed", time.Since(start))
}

func (d *Ditherer) workers() int {
	if d.config.Workers > 0 {
		return d.config.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// sample is what the diffusion engine reads per pixel.
type sample struct {
	point    r3.Vec
	weights  []float64 // precomputed decomposition, nil if not yet decomposed
	noise    float64
	hasNoise bool
}

// target adapts a draw destination and a source image to diffuse.Image.
type target struct {
	dst      draw.Image
	paletted *image.Paletted
	r        image.Rectangle
	src      image.Image
	sp       image.Point
	noise    NoiseFunc
	output   color.Palette

	weights []float64
	n       int
}

func (t *target) Width() int  { return t.r.Dx() }
func (t *target) Height() int { return t.r.Dy() }

func (t *target) Pixel(x, y int) sample {
	var s sample
	if t.weights != nil {
		i := (y*t.r.Dx() + x) * t.n
		s.weights = t.weights[i : i+t.n : i+t.n]
	} else {
		s.point = colorPoint(t.src.At(t.sp.X+x, t.sp.Y+y))
	}
	if t.noise != nil {
		s.noise, s.hasNoise = t.noise(x, y)
	}
	return s
}

func (t *target) SetPixel(x, y, index int) {
	x += t.r.Min.X
	y += t.r.Min.Y
	if t.paletted != nil {
		t.paletted.SetColorIndex(x, y, uint8(index))
		return
	}
	t.dst.Set(x, y, t.output[index])
}

// quantizer adds the carried error to a pixel's weights, picks a palette
// index and returns the weights minus that primary as the residual.
type quantizer struct {
	decomposer decompose.Decomposer
	scratch    []float64
}

func (q *quantizer) Quantize(s sample, carried diffuse.Vector) (int, diffuse.Vector) {
	w := s.weights
	if w == nil {
		q.scratch = q.decomposer.DecomposeInto(q.scratch, s.point)
		w = q.scratch
	}
	if len(carried) == len(w) {
		floats.Add(w, carried)
	}

	var index int
	if s.hasNoise {
		index = noise.Select(w, s.noise)
	} else {
		index = noise.Argmax(w)
	}
	w[index]--
	return index, w
}

// colorPoint converts c to a point in the unit RGB cube, ignoring alpha.
func colorPoint(c color.Color) r3.Vec {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return r3.Vec{
		X: float64(n.R) / channelMax16,
		Y: float64(n.G) / channelMax16,
		Z: float64(n.B) / channelMax16,
	}
}

func samePalette(a, b color.Palette) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ar, ag, ab, aa := a[i].RGBA()
		br, bg, bb, ba := b[i].RGBA()
		if ar != br || ag != bg || ab != bb || aa != ba {
			return false
		}
	}
	return true
}

// clip restricts r to dst and to the part of src reachable from sp, as
// image/draw does.
func clip(dstBounds, r, srcBounds image.Rectangle, sp image.Point) (image.Rectangle, image.Point) {
	orig := r.Min
	r = r.Intersect(dstBounds)
	r = r.Intersect(srcBounds.Add(orig.Sub(sp)))
	sp = sp.Add(r.Min.Sub(orig))
	return r, sp
}
