// Package diffuse implements error-diffusion dithering over an abstract
// image.
//
// The engine is generic over the source pixel type, the output pixel type
// and the quantisation error type. A [Quantizer] turns a source pixel plus
// the error carried into it into an output pixel and a new residual; [Run]
// scans the image and spreads each residual to neighbouring pixels using a
// [Kernel].
//
// Error is kept in a rolling buffer holding only as many rows as the kernel
// reaches down, so memory use is independent of image height.
package diffuse
