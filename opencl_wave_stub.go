//go:build !opencl

package main

import "errors"

type openCLWaveSolver struct{}

func newOpenCLWaveSolver(_ simParams) (*openCLWaveSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLWaveSolver) Upload(_ *waveField) error { return errors.New("OpenCL solver unavailable") }

func (s *openCLWaveSolver) Step(_ int) error { return errors.New("OpenCL solver unavailable") }

func (s *openCLWaveSolver) Sync() error { return errors.New("OpenCL solver unavailable") }

func (s *openCLWaveSolver) Download(_ []float64) error {
	return errors.New("OpenCL solver unavailable")
}

func (s *openCLWaveSolver) DeviceName() string { return "" }

func (s *openCLWaveSolver) Close() {}
