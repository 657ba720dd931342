// Package config holds the command-line settings shared by the terminal and
// window visualizers, plus the logger they log through.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/search"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Limits for the board.
const (
	MinRows = 2
	MaxRows = 200
)

// Config is the flat set of user-tunable settings.
type Config struct {
	Rows       int           // cells per side
	Algorithm  string        // astar | dijkstra | bruteforce
	Layout     string        // none | maze | scatter | walls
	Density    float64       // scatter probability
	Seed       int64         // layout seed; 0 picks one from the clock
	FrameDelay time.Duration // pause after each step
	Timed      bool          // show elapsed time while searching
	Sound      bool          // chime on completion (terminal only)
	Width      int           // window side in pixels (window only)

	LogFile     string // empty logs to stderr
	LogLevel    string // logrus level name
	MetricsAddr string // empty disables /metrics
}

// Default returns the stock settings: 50×50 cells, A*,
// an 800 px window and a 10 ms step delay.
func Default() Config {
	return Config{
		Rows:       50,
		Algorithm:  search.AlgAStar.String(),
		Layout:     layout.None.String(),
		Density:    layout.DefaultDensity,
		FrameDelay: 10 * time.Millisecond,
		Timed:      true,
		Width:      800,
		LogLevel:   "info",
	}
}

// Bind registers every field on fs, using the current values as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "cells per side of the board")
	fs.StringVar(&c.Algorithm, "algorithm", c.Algorithm, "search algorithm: astar, dijkstra or bruteforce")
	fs.StringVar(&c.Layout, "layout", c.Layout, "initial obstacles: none, maze, scatter or walls")
	fs.Float64Var(&c.Density, "density", c.Density, "barrier probability for the scatter layout")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "layout seed (0 = time based)")
	fs.DurationVar(&c.FrameDelay, "delay", c.FrameDelay, "pause after each search step")
	fs.BoolVar(&c.Timed, "timed", c.Timed, "show elapsed search time")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a chime when a search finishes")
	fs.IntVar(&c.Width, "width", c.Width, "window size in pixels")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.Rows < MinRows || c.Rows > MaxRows {
		return fmt.Errorf("%w: rows=%d (want %d..%d)", ErrInvalidConfig, c.Rows, MinRows, MaxRows)
	}
	if _, err := search.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := layout.ParseKind(c.Layout); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density=%v (want 0..1)", ErrInvalidConfig, c.Density)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("%w: delay=%v must not be negative", ErrInvalidConfig, c.FrameDelay)
	}
	if c.Width < c.Rows {
		return fmt.Errorf("%w: width=%d smaller than rows=%d", ErrInvalidConfig, c.Width, c.Rows)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SearchAlgorithm returns the parsed algorithm. Call after Validate.
func (c Config) SearchAlgorithm() search.Algorithm {
	alg, _ := search.ParseAlgorithm(c.Algorithm)
	return alg
}

// LayoutKind returns the parsed layout. Call after Validate.
func (c Config) LayoutKind() layout.Kind {
	k, _ := layout.ParseKind(c.Layout)
	return k
}

// LayoutSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c Config) LayoutSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
