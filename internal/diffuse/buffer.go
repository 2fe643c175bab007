package diffuse

// rollingBuffer holds the error accumulators for the rows the kernel can
// still reach. Row y of the image maps to row y mod rows of the buffer.
//
// A buffer is owned by a single scan and is not safe for concurrent use.
type rollingBuffer[E Residual[E]] struct {
	cells []E
	width int
	rows  int
}

// newRollingBuffer creates a buffer of width × rows accumulators.
func newRollingBuffer[E Residual[E]](width, rows int) *rollingBuffer[E] {
	if width < 1 {
		width = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &rollingBuffer[E]{
		cells: make([]E, width*rows),
		width: width,
		rows:  rows,
	}
}

func (b *rollingBuffer[E]) index(x, y int) int {
	return x + (y%b.rows)*b.width
}

// take returns the accumulator at (x, y) and leaves a neutral value in its
// place. The neutral value may share storage with the returned one.
func (b *rollingBuffer[E]) take(x, y int) E {
	i := b.index(x, y)
	e := b.cells[i]
	b.cells[i] = e.Reset()
	return e
}

// add accumulates e*k into the cell at (x, y).
func (b *rollingBuffer[E]) add(x, y int, e E, k int) {
	i := b.index(x, y)
	b.cells[i] = b.cells[i].AddScaled(e, k)
}
