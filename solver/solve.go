package solver

import "context"

// collapsed reports whether every cell has entropy < 2 (decided, or
// already contradictory).
func (s *Solver) collapsed() bool {
	for x := 0; x < s.shape[0]; x++ {
		for y := 0; y < s.shape[1]; y++ {
			for z := 0; z < s.shape[2]; z++ {
				if s.Entropy([3]int{x, y, z}) > 1 {
					return false
				}
			}
		}
	}

	return true
}

// Iterate performs one collapse step: find the minimum-entropy cell,
// collapse it to a single random option, and propagate the consequence
// to a fixed point. A no-op if the grid is already collapsed.
func (s *Solver) Iterate() {
	pos, ok := s.minEntropyPos()
	if !ok {
		return
	}

	s.collapseAt(pos)
	s.propagateFrom(pos)
}

// Solve runs Iterate until every cell has collapsed to exactly one tile,
// then reads off the grid as a dense [x][y][z]tileID array.
//
// ctx is checked between iterations; a cancelled context aborts the
// solve early with ctx.Err(). If a non-zero iteration cap was set via
// WithIterationCap and is exceeded first, Solve returns ErrIterationCap.
// If any cell's option set is empty once the loop exits, Solve returns
// ErrUnsolvable.
func (s *Solver) Solve(ctx context.Context) ([][][]int, error) {
	iterations := 0
	for !s.collapsed() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.iterCap > 0 && iterations >= s.iterCap {
			return nil, ErrIterationCap
		}

		s.Iterate()
		iterations++
	}

	out := make([][][]int, s.shape[0])
	for x := range out {
		out[x] = make([][]int, s.shape[1])
		for y := range out[x] {
			out[x][y] = make([]int, s.shape[2])
			for z := range out[x][y] {
				id, ok := s.optionsAt([3]int{x, y, z}).First()
				if !ok {
					return nil, ErrUnsolvable
				}
				out[x][y][z] = id
			}
		}
	}

	return out, nil
}
