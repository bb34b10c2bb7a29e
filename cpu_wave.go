package main

import (
	"fmt"
	"runtime"
	"sync"
)

// cpuWaveSolver runs the block-partitioned stencil on the host. It keeps
// its own triple-buffer copy of the field so that stage-in, stepping, and
// stage-out follow the same protocol as the device solver.
type cpuWaveSolver struct {
	p       simParams
	field   *waveField
	workers int

	// tiles holds one staging scratch buffer per worker, allocated once so
	// the timestep loop stays allocation free.
	tiles [][]float64
}

// newCPUWaveSolver allocates a CPU solver for the given parameters.
func newCPUWaveSolver(p simParams) *cpuWaveSolver {
	workers := runtime.NumCPU()
	if workers > p.blockCount() {
		workers = p.blockCount()
	}
	if workers < 1 {
		workers = 1
	}
	tiles := make([][]float64, workers)
	for i := range tiles {
		tiles[i] = make([]float64, p.blockSize)
	}
	return &cpuWaveSolver{
		p:       p,
		field:   newWaveField(p.iMax),
		workers: workers,
		tiles:   tiles,
	}
}

// Upload copies the three host generations into the solver's buffers.
func (s *cpuWaveSolver) Upload(f *waveField) error {
	if f.iMax != s.p.iMax {
		return errFieldSize
	}
	copy(s.field.prev, f.prev)
	copy(s.field.curr, f.curr)
	copy(s.field.next, f.next)
	return nil
}

// Step advances the field by one timestep and rotates the buffer roles.
// The timestep counter t is reserved parameterization and does not enter
// the arithmetic.
func (s *cpuWaveSolver) Step(t int) error {
	_ = t
	blocks := s.p.blockCount()
	per := (blocks + s.workers - 1) / s.workers
	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		b0 := w * per
		if b0 >= blocks {
			break
		}
		b1 := b0 + per
		if b1 > blocks {
			b1 = blocks
		}
		wg.Add(1)
		go func(b0, b1 int, tile []float64) {
			defer wg.Done()
			stepBlocks(s.field.prev, s.field.curr, s.field.next, tile, b0, b1, s.p.blockSize, s.p.bound())
		}(b0, b1, s.tiles[w])
	}
	wg.Wait()
	s.field.swap()
	return nil
}

// Sync is a no-op: Step returns only after all workers have finished.
func (s *cpuWaveSolver) Sync() error { return nil }

// Download copies the generation currently in the "current" role into dst.
func (s *cpuWaveSolver) Download(dst []float64) error {
	if len(dst) != s.p.iMax {
		return errFieldSize
	}
	copy(dst, s.field.curr)
	return nil
}

// DeviceName describes the backend for log output.
func (s *cpuWaveSolver) DeviceName() string {
	return fmt.Sprintf("cpu (%d workers)", s.workers)
}

// Close releases nothing; the buffers are ordinary slices.
func (s *cpuWaveSolver) Close() {}
