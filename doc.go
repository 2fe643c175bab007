// Package dither renders images for colour e-paper displays with a small
// fixed palette, such as the six-colour Spectra 6 panels.
//
// Each pixel's colour is first decomposed into barycentric weights over the
// palette: a mixture of primaries that reproduces the colour. Error
// diffusion then resolves every mixture into a single primary, using a
// noise value to pick among the primaries in proportion to their weights,
// and carries the remaining mixture to neighbouring pixels.
//
// # Features
//
//   - Octahedron decomposition for six-colour palettes forming a convex
//     octahedron, with closest, furthest, average or fixed axis selection
//   - Bruteforce decomposition over every tetrahedron, face and edge of any
//     palette, projecting colours outside the gamut onto its surface
//   - Naive tetrahedron decomposition with clipping
//   - Floyd-Steinberg, Jarvis-Judice-Ninke, Atkinson and Sierra kernels with
//     optional serpentine scanning
//   - Bayer, interleaved gradient, white and image-based noise
//   - Optional parallel decomposition with output identical to the
//     sequential path
//   - Palettes loaded from TOML files
//
// # Quick Start
//
//	out, err := dither.DitherSpectra6(img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For a reusable ditherer:
//
//	config := dither.DefaultConfig()
//	config.Kernel = dither.Atkinson
//	config.Noise = dither.NoiseBayer(4)
//	d, err := dither.New(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := d.Dither(img)
//
// # Palettes
//
// Colours are treated as points in the unit RGB cube without gamma
// handling. The dither palette should describe the colours the panel
// really shows; the output palette holds the values sent to the panel
// driver. Both are indexed identically.
//
// Octahedron strategies need six colours that pair into three opposite
// poles of a convex octahedron. [PaletteSpectra6] qualifies; the pure sRGB
// [PaletteNaive] does not, so use a bruteforce strategy or set
// [Config.FallbackStrategy] for such palettes.
//
// # Concurrency
//
// A [Ditherer] is immutable and may be used from several goroutines. The
// diffusion scan itself is sequential; with [Config.EnableParallel] only
// the decomposition runs concurrently.
package dither
