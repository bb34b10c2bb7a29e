package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// viewer animates the evolving 1D wave field in a window, stepping the CPU
// solver a few timesteps per frame until t_max is reached.
type viewer struct {
	p      simParams
	solver *cpuWaveSolver
	step   int
	trace  []float64
}

// runViewer opens the live view for the given parameters and initial
// field. It returns when the window is closed.
func runViewer(p simParams, field *waveField) error {
	solver := newCPUWaveSolver(p)
	if err := solver.Upload(field); err != nil {
		return err
	}
	v := &viewer{
		p:      p,
		solver: solver,
		trace:  make([]float64, p.iMax),
	}
	copy(v.trace, field.curr)
	ebiten.SetWindowSize(viewerW, viewerH)
	ebiten.SetWindowTitle("wave1d")
	return ebiten.RunGame(v)
}

// Update advances the simulation by a handful of timesteps and refreshes
// the displayed trace.
func (v *viewer) Update() error {
	for i := 0; i < viewerStepsPerFrame && v.step < v.p.tMax-1; i++ {
		v.step++
		if err := v.solver.Step(v.step); err != nil {
			return err
		}
	}
	return v.solver.Download(v.trace)
}

// Draw renders the amplitude trace as a polyline plus a midline and a
// step counter overlay.
func (v *viewer) Draw(screen *ebiten.Image) {
	mid := viewerH / 2
	drawLine(screen, 0, mid, viewerW-1, mid, color.RGBA{60, 60, 60, 255})

	// Autoscale so the largest amplitude reaches the margin.
	peak := 0.0
	for _, a := range v.trace {
		if abs := math.Abs(a); abs > peak {
			peak = abs
		}
	}
	if peak < 1e-12 {
		peak = 1
	}
	scale := float64(mid-viewerMargin) / peak

	toScreen := func(i int) (int, int) {
		x := i * (viewerW - 1) / (v.p.iMax - 1)
		y := mid - int(v.trace[i]*scale)
		return x, y
	}
	px, py := toScreen(0)
	for i := 1; i < v.p.iMax; i++ {
		x, y := toScreen(i)
		drawLine(screen, px, py, x, y, color.RGBA{80, 220, 160, 255})
		px, py = x, y
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("step %d/%d  peak %.4g", v.step, v.p.tMax-1, peak))
}

// Layout reports the logical screen size used by Ebiten.
func (v *viewer) Layout(_, _ int) (int, int) { return viewerW, viewerH }

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < viewerW && y0 >= 0 && y0 < viewerH {
			screen.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
