package diffuse

import "github.com/tphakala/go-epd-dither/internal/simdops"

// Vector is a weight-vector residual. A nil or empty Vector carries no
// error.
type Vector []float64

// Div divides every element by d in place.
func (v Vector) Div(d int) Vector {
	if len(v) == 0 || d == 1 {
		return v
	}
	simdops.Float64Ops().Scale(v, v, 1/float64(d))
	return v
}

// AddScaled adds o*k to v, growing an empty v to the length of o.
func (v Vector) AddScaled(o Vector, k int) Vector {
	if len(o) == 0 {
		return v
	}
	if len(v) == 0 {
		if cap(v) < len(o) {
			v = make(Vector, len(o))
		} else {
			v = v[:len(o)]
		}
		simdops.Float64Ops().Scale(v, o, float64(k))
		return v
	}
	simdops.Float64Ops().AddScaled(v, float64(k), o[:len(v)])
	return v
}

// Reset empties v, keeping its storage.
func (v Vector) Reset() Vector {
	return v[:0]
}
