package main

import "flag"

// Command-line flags that control optional output, solver selection, and
// runtime behavior. The simulation parameters themselves are positional
// arguments; see usage() in main.go.
var (
	// outputFlag names the file the final generation is written to, one
	// value per line.
	outputFlag = flag.String("output", defaultOutputFile, "file to write the final wave generation to")

	// cpuFlag skips the OpenCL solver even when it is compiled in.
	cpuFlag = flag.Bool("cpu", false, "force the CPU solver instead of OpenCL")

	// viewFlag opens a window animating the evolving wave field instead of
	// running the batch computation.
	viewFlag = flag.Bool("view", false, "show a live view of the wave field while stepping")

	// cpuProfileFlag captures a CPU profile of the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given path")
)
