package diffuse

import "fmt"

// Target is one entry of a diffusion kernel: the residual multiplied by
// Weight is added to the pixel at offset (DX, DY) from the current one.
// DX is given for a left-to-right scan and is mirrored on reversed rows.
type Target struct {
	DX, DY int
	Weight int
}

// Kernel is a diffusion matrix. Accumulated error is divided by Divisor
// before it reaches the quantizer.
//
// The package-level kernels share their Targets slices; treat them as
// read-only.
type Kernel struct {
	Name    string
	Divisor int
	Targets []Target
}

var (
	// NoDiffuse discards all error, reducing dithering to pointwise
	// quantisation.
	NoDiffuse = Kernel{
		Name:    "none",
		Divisor: 1,
	}

	// FloydSteinberg is the classic 4-neighbour kernel.
	FloydSteinberg = Kernel{
		Name:    "floyd-steinberg",
		Divisor: 16,
		Targets: []Target{
			{1, 0, 7},
			{-1, 1, 3}, {0, 1, 5}, {1, 1, 1},
		},
	}

	// JarvisJudiceNinke spreads error over two rows below.
	JarvisJudiceNinke = Kernel{
		Name:    "jarvis-judice-ninke",
		Divisor: 48,
		Targets: []Target{
			{1, 0, 7}, {2, 0, 5},
			{-2, 1, 3}, {-1, 1, 5}, {0, 1, 7}, {1, 1, 5}, {2, 1, 3},
			{-2, 2, 1}, {-1, 2, 3}, {0, 2, 5}, {1, 2, 3}, {2, 2, 1},
		},
	}

	// Atkinson only propagates 6/8 of the error; the rest is dropped.
	Atkinson = Kernel{
		Name:    "atkinson",
		Divisor: 8,
		Targets: []Target{
			{1, 0, 1}, {2, 0, 1},
			{-1, 1, 1}, {0, 1, 1}, {1, 1, 1},
			{0, 2, 1},
		},
	}

	// Sierra is the three-row Sierra kernel.
	Sierra = Kernel{
		Name:    "sierra",
		Divisor: 32,
		Targets: []Target{
			{1, 0, 5}, {2, 0, 3},
			{-2, 1, 2}, {-1, 1, 4}, {0, 1, 5}, {1, 1, 4}, {2, 1, 2},
			{-1, 2, 2}, {0, 2, 3}, {1, 2, 2},
		},
	}
)

// Kernels returns the built-in kernels.
func Kernels() []Kernel {
	return []Kernel{NoDiffuse, FloydSteinberg, JarvisJudiceNinke, Atkinson, Sierra}
}

// KernelByName looks up a built-in kernel.
func KernelByName(name string) (Kernel, bool) {
	for _, k := range Kernels() {
		if k.Name == name {
			return k, true
		}
	}
	return Kernel{}, false
}

// MaxDY returns the largest vertical offset of the kernel.
func (k Kernel) MaxDY() int {
	maxDY := 0
	for _, t := range k.Targets {
		maxDY = max(maxDY, t.DY)
	}
	return maxDY
}

// WeightSum returns the sum of all target weights. It equals Divisor for
// kernels that preserve the total error.
func (k Kernel) WeightSum() int {
	sum := 0
	for _, t := range k.Targets {
		sum += t.Weight
	}
	return sum
}

// Validate checks that every target lies ahead of the current pixel in
// scan order and that the divisor is positive.
func (k Kernel) Validate() error {
	if k.Divisor <= 0 {
		return fmt.Errorf("%w: divisor must be positive, got %d", ErrInvalidKernel, k.Divisor)
	}
	for i, t := range k.Targets {
		if t.DY < 0 || (t.DY == 0 && t.DX <= 0) {
			return fmt.Errorf("%w: target %d (%d,%d) points backwards", ErrInvalidKernel, i, t.DX, t.DY)
		}
	}
	return nil
}

// String returns the kernel name.
func (k Kernel) String() string {
	return k.Name
}
