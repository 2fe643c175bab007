package dither

import (
	"errors"
	"fmt"
)

// Config holds dithering configuration.
type Config struct {
	// DitherPalette is the palette colours are decomposed against. It should
	// describe what the display actually shows.
	DitherPalette Palette

	// OutputPalette holds the colours written to the output image, one per
	// DitherPalette entry. Nil means DitherPalette.
	OutputPalette Palette

	// Strategy selects the decomposition algorithm.
	Strategy Strategy

	// FallbackStrategy is used when Strategy cannot be built for the
	// palette, for example an octahedron strategy on a palette that is not
	// a convex octahedron. Nil disables the fallback.
	FallbackStrategy *Strategy

	// Kernel is the error diffusion matrix.
	Kernel Kernel

	// Noise drives the choice between primaries. Nil picks the largest
	// weight.
	Noise NoiseFunc

	// Serpentine reverses the scan direction on odd rows.
	Serpentine bool

	// EnableParallel decomposes pixels on several goroutines before the
	// sequential diffusion scan. The output is identical either way.
	EnableParallel bool

	// Workers bounds the goroutines used when EnableParallel is set.
	// Zero means GOMAXPROCS.
	Workers int
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid dither configuration")

	// ErrUnknownStrategy indicates an unknown or malformed strategy.
	ErrUnknownStrategy = errors.New("unknown decomposition strategy")
)

// DefaultConfig returns the Spectra 6 palette with octahedron-closest
// decomposition, Floyd-Steinberg diffusion, interleaved gradient noise and
// serpentine scanning.
func DefaultConfig() *Config {
	return &Config{
		DitherPalette: append(Palette(nil), PaletteSpectra6...),
		Strategy:      StrategyOctahedronClosest,
		Kernel:        FloydSteinberg,
		Noise:         NoiseInterleavedGradient(),
		Serpentine:    true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	n := len(c.DitherPalette)
	if n < minPaletteColors || n > maxPaletteColors {
		return fmt.Errorf("%w: dither palette needs %d-%d colors, got %d",
			ErrInvalidConfig, minPaletteColors, maxPaletteColors, n)
	}

	if c.OutputPalette != nil && len(c.OutputPalette) != n {
		return fmt.Errorf("%w: output palette has %d colors, dither palette %d",
			ErrInvalidConfig, len(c.OutputPalette), n)
	}

	if err := c.Strategy.validate(); err != nil {
		return err
	}
	if c.FallbackStrategy != nil {
		if err := c.FallbackStrategy.validate(); err != nil {
			return fmt.Errorf("fallback: %w", err)
		}
	}

	if err := c.Kernel.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	return nil
}

// outputPalette returns the palette written to images.
func (c *Config) outputPalette() Palette {
	if c.OutputPalette != nil {
		return c.OutputPalette
	}
	return c.DitherPalette
}
