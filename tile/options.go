package tile

// Option configures BuildSet. The functional-options pattern follows the
// usual BuilderOption/GraphOption convention: defaults are
// applied first, options run in order, and option constructors never
// panic on a nil or zero-value input.
type Option func(*config)

type config struct {
	exclusions ExclusionSet
}

func newConfig(opts ...Option) *config {
	cfg := &config{exclusions: NewExclusionSet()}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithExclusions forbids adjacency between the given ordered asset-name
// pairs, regardless of what socket matching would otherwise allow.
func WithExclusions(ex ExclusionSet) Option {
	return func(c *config) {
		if ex != nil {
			c.exclusions = ex
		}
	}
}
