package solver

import "github.com/voxelwfc/voxelwfc/bitset"

// collapseAt draws a uniform random choice among pos's remaining options
// and reduces its bitset to that single bit. A no-op if pos is already
// empty (a contradiction already reached elsewhere).
func (s *Solver) collapseAt(pos [3]int) {
	opts := s.optionsAt(pos)
	bits := opts.SetBits()
	if len(bits) == 0 {
		return
	}

	choice := bits[s.rng.Intn(len(bits))]

	*opts = bitset.New(opts.Len())
	opts.Set(choice)
}
