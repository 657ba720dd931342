// Package search provides tunable options, result types and error
// definitions for the step-wise grid searches.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for search invocation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or end is not a grid position.
	ErrOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrSameEndpoints is returned when start and end coincide.
	ErrSameEndpoints = errors.New("search: start and end must differ")

	// ErrUnknownAlgorithm is returned for an undefined Algorithm value or name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	// AlgAStar orders the frontier by g + Manhattan distance to the end.
	AlgAStar Algorithm = iota
	// AlgDijkstra orders the frontier by g alone.
	AlgDijkstra
	// AlgBruteForce explores in FIFO order without scores.
	AlgBruteForce
)

// Algorithms lists every algorithm in menu order.
var Algorithms = []Algorithm{AlgAStar, AlgDijkstra, AlgBruteForce}

// String returns the algorithm's short name, also accepted by
// ParseAlgorithm and used as a metrics label.
func (a Algorithm) String() string {
	switch a {
	case AlgAStar:
		return "astar"
	case AlgDijkstra:
		return "dijkstra"
	case AlgBruteForce:
		return "bruteforce"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Title returns the human-readable label shown by the visualizers.
func (a Algorithm) Title() string {
	switch a {
	case AlgAStar:
		return "A* Algorithm"
	case AlgDijkstra:
		return "Dijkstra"
	case AlgBruteForce:
		return "Brute Force"
	}
	return a.String()
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: "astar", "a*", "dijkstra", "bruteforce", "brute-force",
// "brute", "bfs".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a-star":
		return AlgAStar, nil
	case "dijkstra":
		return AlgDijkstra, nil
	case "bruteforce", "brute-force", "brute", "bfs":
		return AlgBruteForce, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Phase tells a StepFunc what the engine just did.
type Phase int

const (
	// PhaseExpand follows the expansion of one frontier cell.
	PhaseExpand Phase = iota
	// PhasePath follows the marking of one path cell.
	PhasePath
)

// String returns "expand" or "path".
func (p Phase) String() string {
	if p == PhasePath {
		return "path"
	}
	return "expand"
}

// Step describes one yield to the StepFunc.
type Step struct {
	Phase   Phase         // expansion or path marking
	Cell    gridgraph.Pos // the cell just closed or marked Path
	Index   int           // 0-based count of steps emitted in this run
	Elapsed time.Duration // time since the run began
}

// StepFunc is invoked synchronously after each expansion and each path
// cell. It must not panic and must not mutate the grid.
type StepFunc func(Step)

// Result holds the outcome of a run:
//   - Found: the end cell was reached and the path marked.
//   - Cancelled: the run stopped early on a cancel request.
//   - Expanded: number of cells whose neighbors were processed.
//   - PathLength: number of Path cells strictly between start and end.
//   - Path: the route from start to end inclusive (nil unless Found).
//   - Elapsed: wall time of the run per the configured clock.
type Result struct {
	Algorithm  Algorithm
	Found      bool
	Cancelled  bool
	Expanded   int
	PathLength int
	Path       []gridgraph.Pos
	Elapsed    time.Duration
}

// Steps returns the number of moves on the route (PathLength + 1), or 0
// when no path was found.
func (r Result) Steps() int {
	if !r.Found {
		return 0
	}
	return r.PathLength + 1
}

// Option configures a run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one run.
type Options struct {
	// Ctx cancels the run when done.
	Ctx context.Context

	// OnStep is called after each expansion and each path cell.
	OnStep StepFunc

	// Interrupt is polled once per expansion; returning true cancels the run.
	Interrupt func() bool

	// Clock supplies the time used for Step.Elapsed and Result.Elapsed.
	Clock func() time.Time

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op step callback
//   - an interrupt that never fires
//   - time.Now as clock.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnStep:    func(Step) {},
		Interrupt: func() bool { return false },
		Clock:     time.Now,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStep installs the step callback. A nil fn is ignored.
func WithStep(fn StepFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithInterrupt installs a cancellation poll, e.g. "has the user asked to
// quit?". A nil fn is ignored.
func WithInterrupt(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Interrupt = fn
		}
	}
}

// WithClock replaces the time source. A nil clock is an ErrOptionViolation.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock == nil {
			o.err = fmt.Errorf("%w: clock cannot be nil", ErrOptionViolation)
			return
		}
		o.Clock = clock
	}
}
