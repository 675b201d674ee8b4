package solver

// Option configures a Solver at construction time, following the same
// functional-options convention used by the tile package.
type Option func(*config)

type config struct {
	hasSeed bool
	seed    uint64
	wrapX   bool
	wrapZ   bool
	iterCap int
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed pins the Solver's RNG to seed, making collapse order (and
// therefore the solved grid) reproducible across runs. Without this
// option, New draws a seed from system entropy.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.hasSeed = true
		c.seed = seed
	}
}

// WithWrap enables toroidal wraparound on the X and/or Z axes: a cell at
// the edge of a wrapped axis treats the opposite edge as its neighbor.
// The Y axis never wraps.
func WithWrap(x, z bool) Option {
	return func(c *config) {
		c.wrapX = x
		c.wrapZ = z
	}
}

// WithIterationCap bounds the number of Iterate calls Solve will make
// before giving up with ErrIterationCap. n<=0 (the default) means no
// cap.
func WithIterationCap(n int) Option {
	return func(c *config) {
		c.iterCap = n
	}
}
