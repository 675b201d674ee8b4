package solver

// Entropy returns the number of tile options still possible at pos.
func (s *Solver) Entropy(pos [3]int) int {
	return s.optionsAt(pos).Popcount()
}

// minEntropyPos scans the grid for the cell with strictly minimal
// entropy among cells with entropy >= 2 (entropy < 2 means already
// decided or already contradictory, neither of which needs collapsing).
// Ties are broken by ascending (x,y,z): only a strictly lower entropy
// replaces the current candidate. ok is false when no cell qualifies —
// the grid is fully collapsed.
func (s *Solver) minEntropyPos() (pos [3]int, ok bool) {
	minEnt := -1

	for x := 0; x < s.shape[0]; x++ {
		for y := 0; y < s.shape[1]; y++ {
			for z := 0; z < s.shape[2]; z++ {
				cur := [3]int{x, y, z}
				e := s.Entropy(cur)
				if e < 2 {
					continue
				}
				if minEnt == -1 || e < minEnt {
					minEnt = e
					pos = cur
					ok = true
				}
			}
		}
	}

	return pos, ok
}
