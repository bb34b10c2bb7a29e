package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// readGeneration reads exactly n floating-point values, one ASCII literal
// per line, from the named file.
func readGeneration(path string, n int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vals := make([]float64, 0, n)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		if len(vals) == n {
			return nil, fmt.Errorf("%s: more than %d values", path, n)
		}
		vals = append(vals, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(vals) != n {
		return nil, fmt.Errorf("%s: expected %d values, found %d", path, n, len(vals))
	}
	return vals, nil
}

// writeGeneration writes the generation to the named file, one value per
// line, in the shortest round-trippable decimal form.
func writeGeneration(path string, vals []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, v := range vals {
		if _, err := w.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			f.Close()
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
