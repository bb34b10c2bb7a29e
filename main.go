package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

func usage() {
	fmt.Printf("usage: %s [flags] i_max t_max block_size [mode [mode args]]\n", os.Args[0])
	fmt.Println("  i_max       number of points in the wave field (> 2)")
	fmt.Println("  t_max       number of timesteps (>= 1)")
	fmt.Println("  block_size  cooperative group width (1..1024)")
	fmt.Println("modes: sin (default), sinfull, gauss, file <old-file> <current-file>")
}

// fatalUsage reports a configuration error on standard output and exits
// with a failure status before any solver resource is acquired.
func fatalUsage(err error) {
	fmt.Println(err)
	usage()
	os.Exit(1)
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 3 {
		usage()
		os.Exit(1)
	}

	var p simParams
	for _, arg := range []struct {
		dst  *int
		name string
		raw  string
	}{
		{&p.iMax, "i_max", args[0]},
		{&p.tMax, "t_max", args[1]},
		{&p.blockSize, "block_size", args[2]},
	} {
		v, err := strconv.Atoi(arg.raw)
		if err != nil {
			fatalUsage(fmt.Errorf("%s: %q is not an integer", arg.name, arg.raw))
		}
		*arg.dst = v
	}
	if err := p.validate(); err != nil {
		fatalUsage(err)
	}

	mode := "sin"
	var modeArgs []string
	if len(args) > 3 {
		mode = args[3]
		modeArgs = args[4:]
	}
	field := newWaveField(p.iMax)
	if err := applyInitialMode(field, mode, modeArgs); err != nil {
		fatalUsage(err)
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("starting CPU profile: %v", err)
		}
		defer stop()
	}

	if *viewFlag {
		if err := runViewer(p, field); err != nil {
			log.Fatalf("viewer: %v", err)
		}
		return
	}

	solver := newWaveSolver(p)
	defer solver.Close()
	log.Printf("solver: %s", solver.DeviceName())

	wallStart := time.Now()
	stats, err := simulate(p, field, solver)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
	wall := time.Since(wallStart)

	if err := writeGeneration(*outputFlag, field.curr); err != nil {
		log.Fatalf("writing %s: %v", *outputFlag, err)
	}
	log.Printf("%d timesteps over %d points: kernel %v, total %v, wrote %s",
		stats.steps, p.iMax, stats.kernelTime, wall, *outputFlag)
}
