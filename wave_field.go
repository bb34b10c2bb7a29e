package main

// waveField stores the three wave generation buffers required by the
// finite difference solver: the previous, current, and next generation of
// the discretized 1D field.
type waveField struct {
	iMax int
	prev []float64
	curr []float64
	next []float64
}

// newWaveField allocates a waveField with properly sized buffers.
func newWaveField(iMax int) *waveField {
	return &waveField{
		iMax: iMax,
		prev: make([]float64, iMax),
		curr: make([]float64, iMax),
		next: make([]float64, iMax),
	}
}

// swap rotates the triple buffers so that next becomes current, current
// becomes previous, and the stale previous buffer is reused as the next
// write target. No data moves and nothing is allocated.
func (f *waveField) swap() {
	f.prev, f.curr, f.next = f.curr, f.next, f.prev
}
