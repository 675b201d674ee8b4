package solver

import (
	"github.com/voxelwfc/voxelwfc/bitset"
	"github.com/voxelwfc/voxelwfc/direction"
)

// resolveAxis maps the original's "-1 means last index" convention onto
// a concrete axis index.
func resolveAxis(v, extent int) int {
	if v < 0 {
		return extent - 1
	}

	return v
}

// ConstrainXAxis applies ConstrainList to every cell in the X=x plane. x
// may be -1 to mean the last X index.
func (s *Solver) ConstrainXAxis(bits bitset.Set, x int) {
	x = resolveAxis(x, s.shape[0])
	for y := 0; y < s.shape[1]; y++ {
		for z := 0; z < s.shape[2]; z++ {
			s.ConstrainList([3]int{x, y, z}, bits)
		}
	}
}

// CollapseXAxis applies ForceNeighbor to every cell in the rectangular
// sub-area [yShape[0],yShape[1]) x [zShape[0],zShape[1]) of the X=x
// plane. x may be -1 to mean the last X index.
func (s *Solver) CollapseXAxis(bits bitset.Set, x int, dir direction.Direction, yShape, zShape [2]int) {
	x = resolveAxis(x, s.shape[0])
	for y := yShape[0]; y < yShape[1]; y++ {
		for z := zShape[0]; z < zShape[1]; z++ {
			s.ForceNeighbor([3]int{x, y, z}, bits, dir)
		}
	}
}

// ConstrainYAxis applies ConstrainList to every cell in the Y=y plane. y
// may be -1 to mean the last Y index.
func (s *Solver) ConstrainYAxis(bits bitset.Set, y int) {
	y = resolveAxis(y, s.shape[1])
	for x := 0; x < s.shape[0]; x++ {
		for z := 0; z < s.shape[2]; z++ {
			s.ConstrainList([3]int{x, y, z}, bits)
		}
	}
}

// CollapseYAxis applies ForceNeighbor to every cell in the rectangular
// sub-area [xShape[0],xShape[1]) x [zShape[0],zShape[1]) of the Y=y
// plane. y may be -1 to mean the last Y index.
func (s *Solver) CollapseYAxis(bits bitset.Set, y int, dir direction.Direction, xShape, zShape [2]int) {
	y = resolveAxis(y, s.shape[1])
	for x := xShape[0]; x < xShape[1]; x++ {
		for z := zShape[0]; z < zShape[1]; z++ {
			s.ForceNeighbor([3]int{x, y, z}, bits, dir)
		}
	}
}

// ConstrainZAxis applies ConstrainList to every cell in the Z=z plane. z
// may be -1 to mean the last Z index.
func (s *Solver) ConstrainZAxis(bits bitset.Set, z int) {
	z = resolveAxis(z, s.shape[2])
	for x := 0; x < s.shape[0]; x++ {
		for y := 0; y < s.shape[1]; y++ {
			s.ConstrainList([3]int{x, y, z}, bits)
		}
	}
}

// CollapseZAxis applies ForceNeighbor to every cell in the rectangular
// sub-area [xShape[0],xShape[1]) x [yShape[0],yShape[1]) of the Z=z
// plane. z may be -1 to mean the last Z index.
func (s *Solver) CollapseZAxis(bits bitset.Set, z int, dir direction.Direction, yShape, xShape [2]int) {
	z = resolveAxis(z, s.shape[2])
	for x := xShape[0]; x < xShape[1]; x++ {
		for y := yShape[0]; y < yShape[1]; y++ {
			s.ForceNeighbor([3]int{x, y, z}, bits, dir)
		}
	}
}
