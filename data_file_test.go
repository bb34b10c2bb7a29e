package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerationRoundTrip(t *testing.T) {
	vals := []float64{0, 1.6, -1.6, math.Pi, 1e-300, -0.1, 12345.678}
	path := filepath.Join(t.TempDir(), "gen.txt")
	if err := writeGeneration(path, vals); err != nil {
		t.Fatal(err)
	}
	got, err := readGeneration(path, len(vals))
	if err != nil {
		t.Fatal(err)
	}
	for i := range vals {
		if got[i] != vals[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], vals[i])
		}
	}
}

func TestReadGenerationCountMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	if err := os.WriteFile(path, []byte("1.0\n2.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readGeneration(path, 3); err == nil {
		t.Error("expected error for too few values")
	}
	if _, err := readGeneration(path, 1); err == nil {
		t.Error("expected error for too many values")
	}
}

func TestReadGenerationParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("1.0\nnot-a-number\n3.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readGeneration(path, 3); err == nil {
		t.Error("expected parse error")
	}
}

func TestReadGenerationMissingFile(t *testing.T) {
	if _, err := readGeneration(filepath.Join(t.TempDir(), "absent.txt"), 4); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileModeLoadsBothGenerations(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	currPath := filepath.Join(dir, "curr.txt")
	if err := writeGeneration(oldPath, []float64{0, 1, 2, 3, 0}); err != nil {
		t.Fatal(err)
	}
	if err := writeGeneration(currPath, []float64{0, 4, 5, 6, 0}); err != nil {
		t.Fatal(err)
	}

	field := newWaveField(5)
	if err := applyInitialMode(field, "file", []string{oldPath, currPath}); err != nil {
		t.Fatal(err)
	}
	if field.prev[2] != 2 || field.curr[2] != 5 {
		t.Errorf("loaded prev[2]=%v curr[2]=%v, want 2 and 5", field.prev[2], field.curr[2])
	}
}
