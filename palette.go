package dither

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/gonum/spatial/r3"
)

// Palette is an ordered list of display primaries. The index of a colour is
// the index written to dithered images.
type Palette []color.NRGBA

// Built-in palettes, ordered as the Spectra 6 panel driver expects:
// black, white, yellow, red, blue, green.
var (
	// PaletteNaive uses the ideal sRGB primaries.
	PaletteNaive = Palette{
		rgb(0, 0, 0),
		rgb(255, 255, 255),
		rgb(255, 255, 0),
		rgb(255, 0, 0),
		rgb(0, 0, 255),
		rgb(0, 255, 0),
	}

	// PaletteSpectra6 approximates the colours a Spectra 6 panel shows.
	PaletteSpectra6 = Palette{
		rgb(58, 0, 66),
		rgb(179, 208, 200),
		rgb(215, 233, 0),
		rgb(151, 38, 44),
		rgb(61, 38, 152),
		rgb(96, 104, 86),
	}

	// PaletteEpdoptimize is the Spectra 6 palette used by epdoptimize.
	PaletteEpdoptimize = Palette{
		rgb(0x19, 0x1e, 0x21),
		rgb(0xe8, 0xe8, 0xe8),
		rgb(0xef, 0xde, 0x44),
		rgb(0xb2, 0x13, 0x18),
		rgb(0x21, 0x57, 0xba),
		rgb(0x12, 0x5f, 0x20),
	}
)

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

var builtinPalettes = map[string]Palette{
	"naive":       PaletteNaive,
	"spectra6":    PaletteSpectra6,
	"epdoptimize": PaletteEpdoptimize,
}

// PaletteByName returns a copy of a built-in palette.
func PaletteByName(name string) (Palette, bool) {
	p, ok := builtinPalettes[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return append(Palette(nil), p...), true
}

// PaletteNames lists the built-in palette names.
func PaletteNames() []string {
	return []string{"naive", "spectra6", "epdoptimize"}
}

// Points returns the palette as points in the unit RGB cube.
func (p Palette) Points() []r3.Vec {
	points := make([]r3.Vec, len(p))
	for i, c := range p {
		points[i] = r3.Vec{
			X: float64(c.R) / channelMax8,
			Y: float64(c.G) / channelMax8,
			Z: float64(c.B) / channelMax8,
		}
	}
	return points
}

// ColorPalette returns p as a color.Palette for image.Paletted.
func (p Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

// Hex formats colour i as "#RRGGBB".
func (p Palette) Hex(i int) string {
	c := p[i]
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor parses "#RRGGBB", "RRGGBB" or the short form "#RGB".
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: invalid hex colour %q", ErrInvalidConfig, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: invalid hex colour %q", ErrInvalidConfig, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// paletteFile is the TOML layout of a palette file:
//
//	name = "my-panel"
//	colors = ["#3A0042", "#B3D0C8", ...]
type paletteFile struct {
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

// LoadPalette decodes a palette from a TOML document.
func LoadPalette(r io.Reader) (Palette, error) {
	var f paletteFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("%w: palette file: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: palette file: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if len(f.Colors) < minPaletteColors || len(f.Colors) > maxPaletteColors {
		return nil, fmt.Errorf("%w: palette file needs %d-%d colors, got %d",
			ErrInvalidConfig, minPaletteColors, maxPaletteColors, len(f.Colors))
	}

	p := make(Palette, len(f.Colors))
	for i, s := range f.Colors {
		if p[i], err = ParseHexColor(s); err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
	}
	Logger().Debug("loaded palette", "name", f.Name, "colors", len(p))
	return p, nil
}

// LoadPaletteFile reads a TOML palette file from disk.
func LoadPaletteFile(path string) (Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPalette(f)
}
