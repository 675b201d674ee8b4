package solver

import (
	"github.com/voxelwfc/voxelwfc/bitset"
	"github.com/voxelwfc/voxelwfc/direction"
)

// ConstrainList clears every option bit set in bits (a "remove these
// options" mask, not a keep-list) from the cell at pos, then propagates
// the consequence outward from pos.
func (s *Solver) ConstrainList(pos [3]int, bits bitset.Set) {
	s.optionsAt(pos).SubtractInPlace(bits)
	s.propagateFrom(pos)
}

// ForceNeighbor restricts pos to only the tile IDs some tile in bits
// would accept as its dir neighbor: it computes the union, over every
// tile id in bits, of that tile's valid-neighbor set for dir, then
// clears from pos every option outside that union. Propagates the
// consequence outward from pos afterward.
func (s *Solver) ForceNeighbor(pos [3]int, bits bitset.Set, dir direction.Direction) {
	allowed := bitset.New(s.tiles.Len())
	for _, id := range bits.SetBits() {
		allowed.OrInPlace(s.tiles.Nodes[id].Neighbors[dir.Index()])
	}

	s.optionsAt(pos).IntersectNotInPlace(allowed)
	s.propagateFrom(pos)
}
