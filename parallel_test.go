package dither

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func randomImage(w, h int, seed uint64) *image.NRGBA {
	rng := rand.New(rand.NewPCG(seed, seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rng.IntN(256)),
				G: uint8(rng.IntN(256)),
				B: uint8(rng.IntN(256)),
				A: 255,
			})
		}
	}
	return img
}

// TestDitherParallel verifies that parallel decomposition produces output
// identical to the sequential path.
func TestDitherParallel(t *testing.T) {
	const (
		width  = 37
		height = 53
	)
	src := randomImage(width, height, 1)

	strategies := []Strategy{
		StrategyOctahedronClosest,
		StrategyOctahedronAverage,
		StrategyBruteforceMix,
		StrategyNaiveDominant,
	}
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			configSeq := DefaultConfig()
			configSeq.Strategy = s
			configSeq.Kernel = JarvisJudiceNinke

			configPar := DefaultConfig()
			configPar.Strategy = s
			configPar.Kernel = JarvisJudiceNinke
			configPar.EnableParallel = true
			configPar.Workers = 4

			seq, err := New(configSeq)
			require.NoError(t, err)
			par, err := New(configPar)
			require.NoError(t, err)

			outSeq := seq.Dither(src)
			outPar := par.Dither(src)
			if diff := cmp.Diff(outSeq.Pix, outPar.Pix); diff != "" {
				t.Errorf("parallel output differs (-seq +par):\n%s", diff)
			}
		})
	}
}

// TestDitherParallel_SubImage checks the pre-pass offsets when drawing
// from a shifted source origin.
func TestDitherParallel_SubImage(t *testing.T) {
	src := randomImage(40, 40, 2).SubImage(image.Rect(5, 7, 35, 39))

	configSeq := DefaultConfig()
	configPar := DefaultConfig()
	configPar.EnableParallel = true
	configPar.Workers = 3

	seq, err := New(configSeq)
	require.NoError(t, err)
	par, err := New(configPar)
	require.NoError(t, err)

	outSeq := seq.Dither(src)
	outPar := par.Dither(src)
	require.Equal(t, src.Bounds(), outPar.Bounds())
	if diff := cmp.Diff(outSeq.Pix, outPar.Pix); diff != "" {
		t.Errorf("parallel output differs (-seq +par):\n%s", diff)
	}
}

func TestDitherConcurrentUse(t *testing.T) {
	d, err := New(DefaultConfig())
	require.NoError(t, err)
	src := randomImage(16, 16, 3)
	want := d.Dither(src).Pix

	results := make(chan []uint8, 4)
	for range cap(results) {
		go func() {
			results <- d.Dither(src).Pix
		}()
	}
	for range cap(results) {
		require.Equal(t, want, <-results)
	}
}
