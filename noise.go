package dither

import (
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/tphakala/go-epd-dither/internal/noise"
)

// NoiseFunc returns the noise value in [0, 1) for pixel (x, y), or false
// when the largest weight should be picked instead.
type NoiseFunc = noise.Source

// NoiseNone disables noise.
func NoiseNone() NoiseFunc { return noise.None() }

// NoiseBayer returns ordered-dither noise from a 2^depth Bayer matrix. A
// negative depth gives the unbounded pattern; depth 0 gives constant 0.
func NoiseBayer(depth int) NoiseFunc { return noise.BayerSource(depth) }

// NoiseInterleavedGradient returns interleaved gradient noise.
func NoiseInterleavedGradient() NoiseFunc { return noise.InterleavedGradientSource() }

// NoiseWhite returns seeded uniform noise.
func NoiseWhite(seed uint64) NoiseFunc { return noise.White(seed) }

// NoiseFromImage tiles the luminance of img.
func NoiseFromImage(img image.Image) NoiseFunc { return noise.FromImage(img) }

// NoiseNames lists the accepted noise names.
func NoiseNames() []string {
	return []string{"none", "bayer", "bayer:<N>", "ign", "interleaved-gradient-noise",
		"white", "white:<seed>", "file:<path>"}
}

// ParseNoise resolves a noise name. "white" without a seed is randomly
// seeded. "file:<path>" decodes an image with the formats registered in
// package image.
func ParseNoise(name string) (NoiseFunc, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "none":
		return NoiseNone(), nil
	case "bayer":
		return NoiseBayer(noise.BayerUnbounded), nil
	case "ign", "interleaved-gradient-noise":
		return NoiseInterleavedGradient(), nil
	case "white":
		return noise.RandomWhite(), nil
	}

	if rest, ok := strings.CutPrefix(name, "bayer:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: noise %q: expected bayer:<N> with N a non-negative integer",
				ErrInvalidConfig, name)
		}
		return NoiseBayer(n), nil
	}
	if rest, ok := strings.CutPrefix(name, "white:"); ok {
		seed, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: noise %q: expected white:<seed>", ErrInvalidConfig, name)
		}
		return NoiseWhite(seed), nil
	}
	if path, ok := strings.CutPrefix(name, "file:"); ok {
		img, err := decodeImageFile(path)
		if err != nil {
			return nil, fmt.Errorf("noise file: %w", err)
		}
		return NoiseFromImage(img), nil
	}

	return nil, fmt.Errorf("%w: unknown noise %q (accepted: %s)",
		ErrInvalidConfig, name, strings.Join(NoiseNames(), ", "))
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
