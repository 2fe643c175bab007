// Package noise provides per-pixel threshold noise for dithering and the
// noise-driven choice of a palette index from a weight vector.
//
// Ordered patterns ([BayerInf], [Bayer]) and [InterleavedGradient] are pure
// functions of the pixel position. [White] derives its values from a seed
// and the position, so all sources are deterministic and may be sampled
// concurrently in any order.
package noise
