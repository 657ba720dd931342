package layout

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	// DefaultSeed seeds the generator when neither WithSeed nor WithRand is set.
	DefaultSeed int64 = 1

	// DefaultDensity is the Scatter barrier probability.
	DefaultDensity = 0.3
)

// Option customizes a layout run.
type Option func(*config)

// config collects everything a layout needs; filled by newConfig.
type config struct {
	rng     *rand.Rand
	density float64
	keep    map[gridgraph.Pos]bool
	connect bool
	err     error
}

// newConfig applies opts over the defaults.
func newConfig(opts []Option) config {
	cfg := config{
		density: DefaultDensity,
		keep:    make(map[gridgraph.Pos]bool),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithDensity sets the Scatter barrier probability in [0, 1].
func WithDensity(p float64) Option {
	return func(c *config) {
		if p < 0 || p > 1 {
			c.err = fmt.Errorf("%w: got %v", ErrBadDensity, p)
			return
		}
		c.density = p
	}
}

// WithKeep protects cells (and their 4-neighbors) from being painted.
func WithKeep(ps ...gridgraph.Pos) Option {
	return func(c *config) {
		for _, p := range ps {
			c.keep[p] = true
		}
	}
}

// WithConnected carves a route between start and end after painting.
func WithConnected() Option {
	return func(c *config) {
		c.connect = true
	}
}
