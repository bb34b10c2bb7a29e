package main

// simParams holds the three positional simulation parameters.
type simParams struct {
	iMax      int // number of points in one generation, including boundaries
	tMax      int // number of timesteps, counting the initial generation
	blockSize int // cooperative group width used to partition the interior
}

// validate rejects parameter combinations before any solver resource is
// acquired.
func (p simParams) validate() error {
	if p.iMax <= 2 {
		return errGridTooSmall
	}
	if p.tMax < 1 {
		return errNoTimesteps
	}
	if p.blockSize < 1 {
		return errBlockSize
	}
	if p.blockSize > tileCapacity {
		return errTileCapacity
	}
	return nil
}

// bound is the exclusive upper index of the stencil update range; indices
// 0 and bound are the fixed boundary points.
func (p simParams) bound() int {
	return p.iMax - 1
}

// blockCount is the number of blocks needed to cover lanes 0..i_max-2,
// which map onto field indices 1..i_max-1.
func (p simParams) blockCount() int {
	return (p.iMax - 1 + p.blockSize - 1) / p.blockSize
}

// gridSize is the total lane count of one kernel launch, rounded up to a
// whole number of blocks. Lanes at or past bound idle.
func (p simParams) gridSize() int {
	return p.blockCount() * p.blockSize
}
