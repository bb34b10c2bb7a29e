//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLWaveSolver offloads the stencil update to an OpenCL device. The
// three generation buffers live on the device for the whole run; each Step
// enqueues one kernel launch and rotates the buffer handles, so nothing is
// allocated inside the timestep loop.
type openCLWaveSolver struct {
	p          simParams
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	prevBuf    *cl.MemObject
	currBuf    *cl.MemObject
	nextBuf    *cl.MemObject
	deviceName string

	// Last buffers bound to the kernel arguments, so rotation only rebinds
	// the handles that actually moved.
	boundPrev *cl.MemObject
	boundCurr *cl.MemObject
	boundNext *cl.MemObject
}

// waveKernelTemplate is the stencil kernel. The block size is baked into
// the source (tile extent and last-lane test) when the program is built.
// Every block stages its slice of the current generation into the __local
// tile and synchronizes before reading neighbors; the first and last lane
// of a block read their outside neighbor from the canonical buffer since
// it belongs to the adjacent block's tile. The timestep argument t is
// reserved and unused by the arithmetic.
const waveKernelTemplate = `#pragma OPENCL EXTENSION cl_khr_fp64 : enable

__kernel void wave_step(
    const int i_max,
    const int t,
    __global const double* prev_gen,
    __global const double* curr_gen,
    __global double* next_gen)
{
    __local double tile[%d];

    int i = get_global_id(0) + 1;
    int lid = get_local_id(0);
    int bound = i_max - 1;

    if (i <= bound) {
        tile[lid] = curr_gen[i];
    }
    barrier(CLK_LOCAL_MEM_FENCE);
    if (i >= bound) {
        return;
    }

    double left;
    double right;
    if (lid == 0) {
        left = curr_gen[i - 1];
    } else {
        left = tile[lid - 1];
    }
    if (lid == %d - 1) {
        right = curr_gen[i + 1];
    } else {
        right = tile[lid + 1];
    }
    double c = tile[lid];
    next_gen[i] = 2.0 * c - prev_gen[i] + %g * (left - (2.0 * c - right));
}`

// findDevice picks the first GPU on any platform, falling back to a CPU
// device.
func findDevice() (*cl.Device, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	for _, deviceType := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(deviceType)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				return devices[0], nil
			}
		}
	}
	return nil, errors.New("no suitable OpenCL devices found")
}

// newOpenCLWaveSolver builds the kernel for the given parameters and
// allocates the three device-resident generation buffers. All launch
// preconditions (tile capacity, workgroup limit, double support) are
// checked here, before any device resource is acquired.
func newOpenCLWaveSolver(p simParams) (*openCLWaveSolver, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	device, err := findDevice()
	if err != nil {
		return nil, err
	}
	if !strings.Contains(device.Extensions(), "cl_khr_fp64") {
		return nil, errNoFP64
	}
	if p.blockSize > device.MaxWorkGroupSize() {
		return nil, fmt.Errorf("%w: device limit is %d", errTileCapacity, device.MaxWorkGroupSize())
	}
	if int64(p.blockSize)*8 > device.LocalMemSize() {
		return nil, fmt.Errorf("%w: device local memory holds %d bytes", errTileCapacity, device.LocalMemSize())
	}

	s := &openCLWaveSolver{p: p, deviceName: device.Name()}
	if err := s.init(device); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// init acquires the device resources in order; Close releases whatever
// part succeeded when any step fails.
func (s *openCLWaveSolver) init(device *cl.Device) error {
	var err error
	s.context, err = cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return fmt.Errorf("creating OpenCL context: %w", err)
	}
	s.queue, err = s.context.CreateCommandQueue(device, 0)
	if err != nil {
		return fmt.Errorf("creating OpenCL command queue: %w", err)
	}

	source := fmt.Sprintf(waveKernelTemplate, s.p.blockSize, s.p.blockSize, coupling)
	s.program, err = s.context.CreateProgramWithSource([]string{source})
	if err != nil {
		return fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		if buildErr, ok := err.(cl.BuildError); ok {
			return fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return fmt.Errorf("building OpenCL program: %w", err)
	}
	s.kernel, err = s.program.CreateKernel("wave_step")
	if err != nil {
		return fmt.Errorf("creating stencil kernel: %w", err)
	}

	byteSize := s.p.iMax * 8
	// All three buffers cycle through every role, so they are read-write.
	for _, slot := range []struct {
		dst   **cl.MemObject
		label string
	}{
		{&s.prevBuf, "previous"},
		{&s.currBuf, "current"},
		{&s.nextBuf, "next"},
	} {
		*slot.dst, err = s.context.CreateEmptyBuffer(cl.MemReadWrite, byteSize)
		if err != nil {
			return fmt.Errorf("allocating %s generation buffer: %w", slot.label, err)
		}
	}

	if err := s.kernel.SetArgs(
		int32(s.p.iMax),
		int32(0),
		s.prevBuf,
		s.currBuf,
		s.nextBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	s.boundPrev, s.boundCurr, s.boundNext = s.prevBuf, s.currBuf, s.nextBuf
	return nil
}

// Upload copies the three host generations to the device verbatim.
func (s *openCLWaveSolver) Upload(f *waveField) error {
	if f.iMax != s.p.iMax {
		return errFieldSize
	}
	for _, tr := range []struct {
		buf   *cl.MemObject
		host  []float64
		label string
	}{
		{s.prevBuf, f.prev, "previous"},
		{s.currBuf, f.curr, "current"},
		{s.nextBuf, f.next, "next"},
	} {
		byteLen := len(tr.host) * 8
		if _, err := s.queue.EnqueueWriteBuffer(tr.buf, true, 0, byteLen, unsafe.Pointer(&tr.host[0]), nil); err != nil {
			return fmt.Errorf("writing %s generation buffer: %w", tr.label, err)
		}
	}
	return nil
}

// bindDynamicBuffers rebinds the kernel's buffer arguments after a
// rotation, touching only the handles that changed.
func (s *openCLWaveSolver) bindDynamicBuffers() error {
	if s.boundPrev != s.prevBuf {
		if err := s.kernel.SetArgBuffer(2, s.prevBuf); err != nil {
			return err
		}
		s.boundPrev = s.prevBuf
	}
	if s.boundCurr != s.currBuf {
		if err := s.kernel.SetArgBuffer(3, s.currBuf); err != nil {
			return err
		}
		s.boundCurr = s.currBuf
	}
	if s.boundNext != s.nextBuf {
		if err := s.kernel.SetArgBuffer(4, s.nextBuf); err != nil {
			return err
		}
		s.boundNext = s.nextBuf
	}
	return nil
}

// Step enqueues one stencil launch over the interior and rotates the
// device buffer roles. Launches are asynchronous; Sync drains the queue.
func (s *openCLWaveSolver) Step(t int) error {
	if err := s.bindDynamicBuffers(); err != nil {
		return fmt.Errorf("binding generation buffers: %w", err)
	}
	if err := s.kernel.SetArgInt32(1, int32(t)); err != nil {
		return fmt.Errorf("setting timestep argument: %w", err)
	}
	global := []int{s.p.gridSize()}
	local := []int{s.p.blockSize}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, local, nil); err != nil {
		return fmt.Errorf("enqueueing stencil kernel: %w", err)
	}
	s.prevBuf, s.currBuf, s.nextBuf = s.currBuf, s.nextBuf, s.prevBuf
	return nil
}

// Sync blocks until the device has executed everything enqueued so far.
func (s *openCLWaveSolver) Sync() error {
	if err := s.queue.Finish(); err != nil {
		return fmt.Errorf("finishing command queue: %w", err)
	}
	return nil
}

// Download copies the device buffer currently in the "current" role into
// dst.
func (s *openCLWaveSolver) Download(dst []float64) error {
	if len(dst) != s.p.iMax {
		return errFieldSize
	}
	byteLen := len(dst) * 8
	if _, err := s.queue.EnqueueReadBuffer(s.currBuf, true, 0, byteLen, unsafe.Pointer(&dst[0]), nil); err != nil {
		return fmt.Errorf("reading current generation buffer: %w", err)
	}
	return nil
}

func (s *openCLWaveSolver) DeviceName() string {
	return s.deviceName
}

// Close releases every device resource that was created.
func (s *openCLWaveSolver) Close() {
	if s.nextBuf != nil {
		s.nextBuf.Release()
		s.nextBuf = nil
	}
	if s.currBuf != nil {
		s.currBuf.Release()
		s.currBuf = nil
	}
	if s.prevBuf != nil {
		s.prevBuf.Release()
		s.prevBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}
