package motion

import (
	"github.com/katalvlaran/brownian/rng"
)

// Option customizes a single generator call.
// Option constructors panic on meaningless inputs (programmer error);
// generators themselves never panic.
type Option func(*genConfig)

// genConfig is the resolved per-call configuration.
type genConfig struct {
	src rng.Source // nil until resolved
}

// WithSource injects a caller-owned random source. The source is advanced by
// the call; reuse it across calls to continue one stream. Panics on nil.
func WithSource(src rng.Source) Option {
	if src == nil {
		panic("motion: WithSource(nil)")
	}
	return func(c *genConfig) {
		c.src = src
	}
}

// WithSeed draws from a fresh deterministic stream seeded with seed
// (rng.New policy: 0 maps to rng.DefaultSeed). Two calls with the same seed
// and parameters return identical output.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.src = rng.New(seed)
	}
}

// resolveOptions applies opts in order (last wins) and falls back to an
// unseeded stream. Called only after parameters passed validation.
func resolveOptions(opts []Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rng.NewUnseeded()
	}

	return cfg
}
