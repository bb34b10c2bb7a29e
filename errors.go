package main

import "errors"

// Configuration and device errors. Validation failures are detected before
// any solver resource is acquired; device errors are fatal to the run.
var (
	// errGridTooSmall indicates i_max leaves no interior points to update.
	errGridTooSmall = errors.New("i_max must be greater than 2")

	// errNoTimesteps indicates t_max is below the one-timestep minimum.
	errNoTimesteps = errors.New("t_max must be at least 1")

	// errBlockSize indicates a non-positive block size.
	errBlockSize = errors.New("block_size must be at least 1")

	// errTileCapacity indicates block_size does not fit the staging tile.
	errTileCapacity = errors.New("block_size exceeds the shared tile capacity")

	// errFieldSize indicates a wave field whose buffers do not match i_max.
	errFieldSize = errors.New("wave field length does not match i_max")

	// errUnknownMode indicates an unrecognized initial-condition mode.
	errUnknownMode = errors.New("unknown initial-condition mode")

	// errFileArgs indicates the file mode was given too few file names.
	errFileArgs = errors.New("file mode needs an old-generation and a current-generation file")

	// errNoFP64 indicates the selected device cannot do double precision.
	errNoFP64 = errors.New("device does not support double precision (cl_khr_fp64)")
)
