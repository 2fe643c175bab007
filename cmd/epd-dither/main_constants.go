package main

// Default command-line flag values
const (
	defaultNoise    = "ign"
	defaultStrategy = "octahedron-closest"
	defaultKernel   = "floyd-steinberg"
	defaultPalette  = "spectra6"
)

// CLI argument handling
const (
	minRequiredArgs = 2
	sizeSeparator   = "x"
)

// Output encoding
const (
	jpegQuality    = 95
	outputFileMode = 0o644
)

// Terminal swatches (24-bit ANSI colour)
const (
	ansiBackground = "\x1b[48;2;%d;%d;%dm"
	ansiReset      = "\x1b[0m"
	swatchWidth    = 4
)
