package decompose

import "errors"

var (
	// ErrPaletteSize indicates a palette with the wrong number of colours
	// for the decomposer.
	ErrPaletteSize = errors.New("decompose: unsupported palette size")

	// ErrNoSimplices indicates that every combination of palette colours
	// was degenerate.
	ErrNoSimplices = errors.New("decompose: palette spans no usable simplex")
)
