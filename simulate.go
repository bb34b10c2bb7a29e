package main

import (
	"fmt"
	"time"
)

// simStats reports what the time-stepping driver actually did.
type simStats struct {
	// steps is the number of stencil launches performed, t_max - 1.
	steps int
	// kernelTime is the elapsed time of the whole timestep loop on the
	// solver, measured after draining its queue. The caller's wall-clock
	// time additionally covers staging and file I/O.
	kernelTime time.Duration
}

// simulate runs the full time-stepping loop on the given solver: stage the
// initial generations in, launch t_max-1 stencil updates with buffer-role
// rotation after each, then copy the final generation back over field.curr.
// Any solver error aborts the run; there is no partial-result recovery.
func simulate(p simParams, field *waveField, solver waveSolver) (simStats, error) {
	if err := p.validate(); err != nil {
		return simStats{}, err
	}
	if field.iMax != p.iMax {
		return simStats{}, errFieldSize
	}

	// Boundary points are fixed for the whole run and every buffer cycles
	// through the "current" role, so the boundary values must agree across
	// all three generations before stage-in.
	last := p.iMax - 1
	field.prev[0], field.next[0] = field.curr[0], field.curr[0]
	field.prev[last], field.next[last] = field.curr[last], field.curr[last]

	if err := solver.Upload(field); err != nil {
		return simStats{}, fmt.Errorf("staging initial generations: %w", err)
	}

	start := time.Now()
	for t := 1; t < p.tMax; t++ {
		if err := solver.Step(t); err != nil {
			return simStats{}, fmt.Errorf("timestep %d: %w", t, err)
		}
	}
	if err := solver.Sync(); err != nil {
		return simStats{}, fmt.Errorf("draining solver queue: %w", err)
	}
	stats := simStats{steps: p.tMax - 1, kernelTime: time.Since(start)}

	if err := solver.Download(field.curr); err != nil {
		return stats, fmt.Errorf("retrieving final generation: %w", err)
	}
	return stats, nil
}
