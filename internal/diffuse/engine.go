package diffuse

// Image is the pixel access the engine needs: random reads of source pixels
// and random writes of output pixels.
type Image[S, T any] interface {
	Width() int
	Height() int
	Pixel(x, y int) S
	SetPixel(x, y int, px T)
}

// Quantizer maps a source pixel and the error carried into it to an output
// pixel and the residual to diffuse further.
type Quantizer[S, T any, E Residual[E]] interface {
	Quantize(src S, carried E) (T, E)
}

// QuantizerFunc adapts a function to the [Quantizer] interface.
type QuantizerFunc[S, T any, E Residual[E]] func(src S, carried E) (T, E)

// Quantize calls f(src, carried).
func (f QuantizerFunc[S, T, E]) Quantize(src S, carried E) (T, E) {
	return f(src, carried)
}

// Residual is the quantisation error type. The zero value and the result of
// Reset must both be neutral for AddScaled.
//
// Methods may modify the receiver's storage and return it; callers always
// use the returned value.
type Residual[E any] interface {
	// Div returns the error divided by d.
	Div(d int) E
	// AddScaled returns the receiver plus o*k.
	AddScaled(o E, k int) E
	// Reset returns a neutral value, possibly reusing the receiver's storage.
	Reset() E
}

// Run dithers img in place.
//
// Rows are scanned top to bottom. With serpentine set, odd rows run right
// to left and the kernel is mirrored horizontally for them. Error aimed
// outside the image is dropped.
func Run[S, T any, E Residual[E]](q Quantizer[S, T, E], k Kernel, img Image[S, T], serpentine bool) error {
	if err := k.Validate(); err != nil {
		return err
	}
	width, height := img.Width(), img.Height()
	if width <= 0 || height <= 0 {
		return nil
	}

	buf := newRollingBuffer[E](width, k.MaxDY()+1)
	for y := range height {
		dir := 1
		if serpentine && y%2 == 1 {
			dir = -1
		}
		for i := range width {
			x := i
			if dir < 0 {
				x = width - 1 - i
			}

			carried := buf.take(x, y).Div(k.Divisor)
			out, residual := q.Quantize(img.Pixel(x, y), carried)
			img.SetPixel(x, y, out)

			for _, t := range k.Targets {
				tx, ty := x+t.DX*dir, y+t.DY
				if tx < 0 || tx >= width || ty >= height {
					continue
				}
				buf.add(tx, ty, residual, t.Weight)
			}
		}
	}
	return nil
}
