package main

import "log"

// waveSolver is the device-facing contract consumed by the time-stepping
// driver. A solver owns three same-length generation buffers for the
// lifetime of a run; the driver stages data in, launches one Step per
// timestep, and stages the final generation back out.
type waveSolver interface {
	// Upload copies the three host generations to the solver verbatim.
	Upload(f *waveField) error
	// Step launches one stencil update filling "next" from "previous" and
	// "current", then rotates the three buffer roles. t is the current
	// global timestep counter.
	Step(t int) error
	// Sync blocks until all issued work has completed.
	Sync() error
	// Download copies the generation in the "current" role into dst.
	Download(dst []float64) error
	DeviceName() string
	Close()
}

// newWaveSolver selects a backend: OpenCL when compiled in and usable,
// otherwise the CPU worker path. Errors after this point are fatal; only
// solver construction falls back.
func newWaveSolver(p simParams) waveSolver {
	if !*cpuFlag {
		if s, err := newOpenCLWaveSolver(p); err == nil {
			return s
		} else {
			log.Printf("OpenCL solver unavailable, using CPU: %v", err)
		}
	}
	return newCPUWaveSolver(p)
}
