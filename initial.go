package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// fill populates dst[from:to] by sampling f over evenly spaced points of
// [start, end]. Indices outside dst are ignored.
func fill(dst []float64, from, to int, start, end float64, f func(float64) float64) {
	if from < 0 {
		from = 0
	}
	if to > len(dst) {
		to = len(dst)
	}
	n := to - from
	switch {
	case n <= 0:
		return
	case n == 1:
		dst[from] = f(start)
		return
	}
	xs := make([]float64, n)
	floats.Span(xs, start, end)
	for i, x := range xs {
		dst[from+i] = f(x)
	}
}

// gaussian is the unit bump exp(-x*x) used by the gauss mode.
func gaussian(x float64) float64 {
	return math.Exp(-x * x)
}

// applyInitialMode populates the starting generations of the field from
// the named mode and its arguments. The function modes give the previous
// and current generation the same shape (a standing start); the file mode
// loads each generation from its own file.
func applyInitialMode(field *waveField, mode string, args []string) error {
	switch mode {
	case "sin":
		fill(field.prev, 1, field.iMax/2, 0, 2*math.Pi, math.Sin)
	case "sinfull":
		fill(field.prev, 1, field.iMax-1, 0, 2*math.Pi, math.Sin)
	case "gauss":
		fill(field.prev, 1, field.iMax-1, -3, 3, gaussian)
	case "file":
		if len(args) < 2 {
			return errFileArgs
		}
		prev, err := readGeneration(args[0], field.iMax)
		if err != nil {
			return fmt.Errorf("old generation: %w", err)
		}
		curr, err := readGeneration(args[1], field.iMax)
		if err != nil {
			return fmt.Errorf("current generation: %w", err)
		}
		copy(field.prev, prev)
		copy(field.curr, curr)
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownMode, mode)
	}
	copy(field.curr, field.prev)
	return nil
}
