package main

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	dither "github.com/tphakala/go-epd-dither"
)

var errUnknownFormat = errors.New("unknown image format")

// options carries the flag values that shape the dither configuration.
type options struct {
	noise         string
	strategy      string
	fallback      string
	kernel        string
	ditherPalette string
	outputPalette string
	paletteFile   string
	serpentine    bool
	parallel      bool
	workers       int
}

// buildConfig resolves flag values into a dither configuration.
func buildConfig(o options) (*dither.Config, error) {
	strategy, err := dither.ParseStrategy(o.strategy)
	if err != nil {
		return nil, err
	}
	kernel, err := dither.ParseKernel(o.kernel)
	if err != nil {
		return nil, err
	}
	noise, err := dither.ParseNoise(o.noise)
	if err != nil {
		return nil, err
	}

	var ditherPalette dither.Palette
	if o.paletteFile != "" {
		if ditherPalette, err = dither.LoadPaletteFile(o.paletteFile); err != nil {
			return nil, fmt.Errorf("failed to load palette file: %w", err)
		}
	} else if ditherPalette, err = namedPalette(o.ditherPalette); err != nil {
		return nil, err
	}

	outputPalette, err := namedPalette(o.outputPalette)
	if err != nil {
		return nil, err
	}
	if len(outputPalette) != len(ditherPalette) {
		// A custom palette file has no matching built-in output palette.
		outputPalette = nil
	}

	config := &dither.Config{
		DitherPalette:  ditherPalette,
		OutputPalette:  outputPalette,
		Strategy:       strategy,
		Kernel:         kernel,
		Noise:          noise,
		Serpentine:     o.serpentine,
		EnableParallel: o.parallel,
		Workers:        o.workers,
	}
	if o.fallback != "" {
		fb, err := dither.ParseStrategy(o.fallback)
		if err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
		config.FallbackStrategy = &fb
	}
	return config, nil
}

func namedPalette(name string) (dither.Palette, error) {
	p, ok := dither.PaletteByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown palette %q (accepted: %s)",
			dither.ErrInvalidConfig, name, strings.Join(dither.PaletteNames(), ", "))
	}
	return p, nil
}

// openImage decodes an image in any registered format.
func openImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// writeImage encodes img in the format given by the extension of path.
func writeImage(path string, img image.Image) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: jpegQuality})
		}, nil
	case ".gif":
		return func(w io.Writer, m image.Image) error {
			return gif.Encode(w, m, nil)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, nil)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, filepath.Ext(path))
	}
}

// parseSize parses "WxH".
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), sizeSeparator)
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: expected WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	if h, err = strconv.Atoi(hs); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

// resizeImage scales img to w×h with Catmull-Rom filtering.
func resizeImage(img image.Image, w, h int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// paletteLines formats a palette for display, with colour swatches when
// the output is a terminal.
func paletteLines(p dither.Palette, colour bool) []string {
	lines := make([]string, len(p))
	for i, c := range p {
		line := fmt.Sprintf("  %d: %s", i, p.Hex(i))
		if colour {
			line += " " + fmt.Sprintf(ansiBackground, c.R, c.G, c.B) +
				strings.Repeat(" ", swatchWidth) + ansiReset
		}
		lines[i] = line
	}
	return lines
}
