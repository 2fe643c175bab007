package noise

import "gonum.org/v1/gonum/floats"

// weightEpsilon is the largest weight still treated as absent. Decomposing a
// palette colour leaves rounding residue around 1e-15 on the other entries.
const weightEpsilon = 1e-9

// Select picks a palette index from weights using a noise value in [0, 1).
//
// Weights at or below weightEpsilon are treated as zero. The noise is scaled
// by the sum of the remaining weights and the index whose cumulative
// interval contains it is returned; noise past the last interval picks the
// last positive weight. When no weight is positive the largest weight wins.
func Select(weights []float64, noise float64) int {
	var sum float64
	for _, w := range weights {
		if w > weightEpsilon {
			sum += w
		}
	}
	if sum <= 0 {
		return Argmax(weights)
	}

	noise *= sum
	last := -1
	for i, w := range weights {
		if w <= weightEpsilon {
			continue
		}
		if noise < w {
			return i
		}
		noise -= w
		last = i
	}
	return last
}

// Argmax returns the index of the largest weight, the first on ties, or -1
// for an empty slice.
func Argmax(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	return floats.MaxIdx(weights)
}
