package solver

import (
	"github.com/voxelwfc/voxelwfc/bitset"
	"github.com/voxelwfc/voxelwfc/direction"
)

// neighborPos returns the cell adjacent to pos in direction d, applying
// the Solver's configured X/Z wraparound (Y never wraps). ok is false if
// the neighbor falls outside the grid and that axis does not wrap.
func (s *Solver) neighborPos(pos [3]int, d direction.Direction) (out [3]int, ok bool) {
	off := d.Offset()
	out = [3]int{pos[0] + off[0], pos[1] + off[1], pos[2] + off[2]}

	if out[0] < 0 || out[0] >= s.shape[0] {
		if !s.wrapX {
			return out, false
		}
		out[0] = ((out[0] % s.shape[0]) + s.shape[0]) % s.shape[0]
	}

	if out[1] < 0 || out[1] >= s.shape[1] {
		return out, false
	}

	if out[2] < 0 || out[2] >= s.shape[2] {
		if !s.wrapZ {
			return out, false
		}
		out[2] = ((out[2] % s.shape[2]) + s.shape[2]) % s.shape[2]
	}

	return out, true
}

// allowedFrom unions, over every tile id still possible at cur, that
// tile's valid-neighbor bitset for direction d — the set of tile ids a
// neighbor in direction d is still permitted to hold.
func (s *Solver) allowedFrom(cur [3]int, d direction.Direction) bitset.Set {
	out := bitset.New(s.tiles.Len())
	for _, id := range s.optionsAt(cur).SetBits() {
		out.OrInPlace(s.tiles.Nodes[id].Neighbors[d.Index()])
	}

	return out
}

// propagateFrom runs the constraint propagation fixed point starting at
// origin: a LIFO worklist of cells whose options changed. For each
// popped cell and each of its six directions, every option at the
// neighbor not supported by the popped cell's remaining options is
// cleared; a neighbor that lost at least one bit is pushed back onto the
// stack at most once per visit to the popped cell.
func (s *Solver) propagateFrom(origin [3]int) {
	stack := [][3]int{origin}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range direction.All() {
			other, ok := s.neighborPos(cur, d)
			if !ok {
				continue
			}

			allowed := s.allowedFrom(cur, d)
			otherOpts := s.optionsAt(other)

			changed := false
			for _, id := range otherOpts.SetBits() {
				if !allowed.Test(id) {
					otherOpts.Clear(id)
					changed = true
				}
			}

			if changed {
				stack = append(stack, other)
			}
		}
	}
}
