package dither

import (
	"fmt"
	"image"
)

// DitherImage renders src with a one-off Ditherer built from config.
// For repeated use, create the Ditherer once with New.
func DitherImage(src image.Image, config *Config) (*image.Paletted, error) {
	d, err := New(config)
	if err != nil {
		return nil, err
	}
	return d.Dither(src), nil
}

// DitherSpectra6 renders src for a Spectra 6 panel with the default
// configuration.
func DitherSpectra6(src image.Image) (*image.Paletted, error) {
	return DitherImage(src, DefaultConfig())
}

// DitherWithPalette renders src into palette. Six-colour octahedral
// palettes use octahedron-closest; any other palette falls back to
// bruteforce-favor-mix.
func DitherWithPalette(src image.Image, palette Palette) (*image.Paletted, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	}
	config := DefaultConfig()
	config.DitherPalette = palette
	fallback := StrategyBruteforceMix
	config.FallbackStrategy = &fallback
	return DitherImage(src, config)
}
