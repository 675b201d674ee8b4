package solver

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/voxelwfc/voxelwfc/bitset"
	"github.com/voxelwfc/voxelwfc/tile"
)

// Solver holds one bitset.Set of remaining tile options per grid cell and
// drives collapse/propagation over a fixed tile.Set. The zero value is
// not usable; construct one with New.
type Solver struct {
	shape [3]int
	wrapX bool
	wrapZ bool

	data  []bitset.Set
	tiles *tile.Set

	rng  *rand.Rand
	seed uint64

	iterCap int
}

// New allocates a Solver over a shape[0] x shape[1] x shape[2] grid, with
// every cell initialized to a clone of initMask (typically tiles.AllBits).
// opts may pin the RNG seed, enable axis wraparound, or bound iterations;
// see WithSeed, WithWrap, WithIterationCap.
func New(shape [3]int, initMask bitset.Set, tiles *tile.Set, opts ...Option) (*Solver, error) {
	if shape[0] <= 0 || shape[1] <= 0 || shape[2] <= 0 {
		return nil, ErrBadShape
	}

	cfg := newConfig(opts...)

	n := shape[0] * shape[1] * shape[2]
	data := make([]bitset.Set, n)
	for i := range data {
		data[i] = initMask.Clone()
	}

	seed := cfg.seed
	if !cfg.hasSeed {
		seed = randomSeed()
	}

	return &Solver{
		shape:   shape,
		wrapX:   cfg.wrapX,
		wrapZ:   cfg.wrapZ,
		data:    data,
		tiles:   tiles,
		rng:     rand.New(rand.NewSource(int64(seed))),
		seed:    seed,
		iterCap: cfg.iterCap,
	}, nil
}

// randomSeed draws a seed from system entropy, falling back to a
// time-derived value in the near-impossible case crypto/rand fails.
func randomSeed() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}

	return binary.LittleEndian.Uint64(b[:])
}

// Shape returns the grid's (X,Y,Z) extents.
func (s *Solver) Shape() [3]int {
	return s.shape
}

// Seed returns the RNG seed currently in effect.
func (s *Solver) Seed() uint64 {
	return s.seed
}

// SetSeed reseeds the Solver's RNG, affecting every subsequent collapse
// but not cells already collapsed.
func (s *Solver) SetSeed(seed uint64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(int64(seed)))
}

func (s *Solver) index(pos [3]int) int {
	return (pos[0]*s.shape[1]+pos[1])*s.shape[2] + pos[2]
}

// optionsAt returns the live per-cell bitset; callers in this package
// mutate through the returned pointer directly.
func (s *Solver) optionsAt(pos [3]int) *bitset.Set {
	return &s.data[s.index(pos)]
}

// OptionsAt returns a copy of the option bitset at pos, for inspection.
func (s *Solver) OptionsAt(pos [3]int) bitset.Set {
	return s.optionsAt(pos).Clone()
}
