package main

// The stencil advances one interior point by one timestep:
//
//	next[i] = 2*curr[i] - prev[i] + coupling*(curr[i-1] - (2*curr[i] - curr[i+1]))
//
// a leapfrog discretization of the 1D wave equation with a fixed coupling
// coefficient. Indices 0 and bound are boundary points and are never
// written.
//
// Execution mirrors the device kernel: the interior is partitioned into
// fixed-size blocks of consecutive lanes, each block first stages its
// slice of the current generation into a tile, and neighbor reads come
// from the tile except at the two block edges, where the neighbor belongs
// to the adjacent block and must be read from the canonical buffer.

// stepBlocks advances blocks [b0, b1) of one timestep. Lane l of block b
// maps onto field index b*blockSize + l + 1, so lane 0 of block 0 starts
// at the first interior point. tile must hold at least blockSize values
// and is reused across blocks.
func stepBlocks(prev, curr, next, tile []float64, b0, b1, blockSize, bound int) {
	for b := b0; b < b1; b++ {
		base := b * blockSize

		// Stage this block's slice of the current generation. The lane at
		// index bound stages too: it is the right-hand neighbor of the
		// last interior lane of the block.
		for l := 0; l < blockSize; l++ {
			if i := base + l + 1; i <= bound {
				tile[l] = curr[i]
			}
		}

		for l := 0; l < blockSize; l++ {
			i := base + l + 1
			if i >= bound {
				break
			}
			var left, right float64
			if l == 0 {
				left = curr[i-1]
			} else {
				left = tile[l-1]
			}
			if l == blockSize-1 {
				right = curr[i+1]
			} else {
				right = tile[l+1]
			}
			c := tile[l]
			next[i] = 2*c - prev[i] + coupling*(left-(2*c-right))
		}
	}
}
