package dither

import (
	"fmt"
	"image"
	"sync"
)

// decomposeAll decomposes every pixel of the size-sized block of src at sp
// into one flat slice, numColors entries per pixel in row-major order.
// Rows are split into bands handled by separate goroutines.
func (d *Ditherer) decomposeAll(src image.Image, size image.Point, sp image.Point) []float64 {
	n := d.decomposer.NumColors()
	weights := make([]float64, size.X*size.Y*n)

	band := max((size.Y+d.workers()-1)/d.workers(), minRowsPerWorker)
	bands := (size.Y + band - 1) / band

	// Sequential processing for a single band
	if bands <= 1 {
		d.decomposeRows(weights, src, size.X, sp, 0, size.Y)
		return weights
	}

	var wg sync.WaitGroup
	errChan := make(chan error, bands)

	for b := range bands {
		y0 := b * band
		y1 := min(y0+band, size.Y)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errChan <- fmt.Errorf("rows %d-%d: %v", y0, y1, r)
				}
			}()
			d.decomposeRows(weights, src, size.X, sp, y0, y1)
		}()
	}

	wg.Wait()
	close(errChan)

	// Decomposers only panic on internal defects; surface them on the
	// caller's goroutine.
	for err := range errChan {
		panic(err)
	}

	return weights
}

// decomposeRows fills rows [y0, y1) of weights.
func (d *Ditherer) decomposeRows(weights []float64, src image.Image, width int, sp image.Point, y0, y1 int) {
	n := d.decomposer.NumColors()
	for y := y0; y < y1; y++ {
		for x := range width {
			i := (y*width + x) * n
			d.decomposer.DecomposeInto(weights[i:i+n:i+n], colorPoint(src.At(sp.X+x, sp.Y+y)))
		}
	}
}
