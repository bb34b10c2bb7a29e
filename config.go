package main

// Simulation and viewer configuration constants. These values define the
// stencil coefficient, the device tile capacity, and the geometry of the
// optional live view window.
const (
	// coupling is the fixed spatial second-derivative weight of the wave
	// stencil. It is baked into the kernel source and is not configurable
	// from the command line.
	coupling = 0.2

	// tileCapacity is the number of float64 slots in the on-chip staging
	// tile. block_size must never exceed it; the driver rejects larger
	// values before any kernel is launched.
	tileCapacity = 1024

	defaultOutputFile = "result.txt"

	viewerW             = 800
	viewerH             = 400
	viewerMargin        = 24
	viewerStepsPerFrame = 4
)
