// Package session is the editing model behind both visualizers: it owns the
// board, applies the mouse rules for placing endpoints and barriers, and
// runs the selected search with logging and metrics around it.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/search"
)

var (
	// ErrNotReady is returned by Run when start or end is missing.
	ErrNotReady = errors.New("session: start and end must both be placed")

	// ErrBusy is returned when the board is edited or run during a search.
	ErrBusy = errors.New("session: a search is already running")
)

// Session is a board plus the user's current choices. Editing methods and
// Run are meant to be called from one goroutine; the busy flag only guards
// re-entry from a step callback.
type Session struct {
	grid    *gridgraph.Grid
	rows    int
	alg     search.Algorithm
	log     *logrus.Entry
	rec     *metrics.Recorder
	seed    int64
	density float64
	layouts int64

	running atomic.Bool
	last    search.Result
}

// Option configures a Session.
type Option func(*Session)

// WithAlgorithm selects the initial algorithm.
func WithAlgorithm(alg search.Algorithm) Option {
	return func(s *Session) { s.alg = alg }
}

// WithLogger routes session logs to log.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRecorder records every run on rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Session) { s.rec = rec }
}

// WithLayoutSeed seeds generated layouts. Each ApplyLayout call advances the
// seed so repeated requests produce different boards.
func WithLayoutSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithDensity sets the scatter layout density.
func WithDensity(p float64) Option {
	return func(s *Session) { s.density = p }
}

// New creates a session on an empty rows×rows board.
func New(rows int, opts ...Option) (*Session, error) {
	g, err := gridgraph.NewGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &Session{
		grid:    g,
		rows:    rows,
		alg:     search.AlgAStar,
		log:     logrus.NewEntry(quiet),
		seed:    layout.DefaultSeed,
		density: layout.DefaultDensity,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("rows", rows)
	return s, nil
}

// Grid returns the board. Callers must not edit it while Running.
func (s *Session) Grid() *gridgraph.Grid { return s.grid }

// Algorithm returns the selected algorithm.
func (s *Session) Algorithm() search.Algorithm { return s.alg }

// Running reports whether a search is in progress.
func (s *Session) Running() bool { return s.running.Load() }

// Last returns the result of the most recent Run.
func (s *Session) Last() search.Result { return s.last }

// SetAlgorithm selects the algorithm for the next Run.
func (s *Session) SetAlgorithm(alg search.Algorithm) error {
	if s.Running() {
		return ErrBusy
	}
	if _, err := search.ParseAlgorithm(alg.String()); err != nil {
		return err
	}
	s.alg = alg
	s.log.WithField("algorithm", alg).Debug("algorithm selected")
	return nil
}

// Paint applies the primary-button rule at p: the first click places the
// start, the next the end, and every later click a barrier. Endpoints are
// never overwritten by a barrier, and a missing endpoint is never placed
// on top of the other one.
func (s *Session) Paint(p gridgraph.Pos) error {
	if s.Running() {
		return ErrBusy
	}
	c := s.grid.Cell(p)
	if c == nil {
		return fmt.Errorf("session: paint %v: %w", p, gridgraph.ErrOutOfBounds)
	}

	switch {
	case s.grid.Start() == nil && !c.IsEnd():
		return s.grid.SetStart(p)
	case s.grid.End() == nil && !c.IsStart():
		return s.grid.SetEnd(p)
	case !c.IsStart() && !c.IsEnd():
		return s.grid.SetBarrier(p)
	}
	return nil
}

// Erase resets the cell at p; erasing an endpoint forgets it.
func (s *Session) Erase(p gridgraph.Pos) error {
	if s.Running() {
		return ErrBusy
	}
	return s.grid.Clear(p)
}

// ClearAll replaces the board with an empty one.
func (s *Session) ClearAll() error {
	if s.Running() {
		return ErrBusy
	}
	g, err := gridgraph.NewGrid(s.rows)
	if err != nil {
		return err
	}
	s.grid = g
	s.last = search.Result{}
	s.log.Debug("board cleared")
	return nil
}

// ResetMarks removes Open, Closed and Path marks left by the last run.
func (s *Session) ResetMarks() error {
	if s.Running() {
		return ErrBusy
	}
	s.grid.ResetSearch()
	return nil
}

// ApplyLayout paints a generated layout over the current board, keeping any
// placed endpoints connected, and returns the number of barriers added.
func (s *Session) ApplyLayout(kind layout.Kind) (int, error) {
	if s.Running() {
		return 0, ErrBusy
	}
	s.grid.ResetSearch()
	seed := s.seed + s.layouts
	s.layouts++

	n, err := layout.Apply(s.grid, kind,
		layout.WithSeed(seed),
		layout.WithDensity(s.density),
		layout.WithConnected(),
	)
	if err != nil {
		return 0, fmt.Errorf("session: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"layout":  kind,
		"seed":    seed,
		"painted": n,
	}).Info("layout applied")
	return n, nil
}

// Run clears previous search marks, refreshes neighbor caches and runs the
// selected algorithm between the placed endpoints. ctx cancels the search;
// opts are passed through to the engine (step callback, interrupt, clock).
func (s *Session) Run(ctx context.Context, opts ...search.Option) (search.Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		return search.Result{}, ErrBusy
	}
	defer s.running.Store(false)

	start, end := s.grid.Start(), s.grid.End()
	if start == nil || end == nil {
		return search.Result{}, ErrNotReady
	}

	s.grid.ResetSearch()
	s.grid.RefreshNeighbors()

	all := append([]search.Option{search.WithContext(ctx)}, opts...)
	res, err := search.Run(s.alg, s.grid, start.Pos(), end.Pos(), all...)
	s.rec.Observe(s.alg, res, err)

	entry := s.log.WithFields(logrus.Fields{
		"algorithm": s.alg,
		"outcome":   metrics.Outcome(res, err),
		"expanded":  res.Expanded,
		"path_len":  res.PathLength,
		"elapsed":   res.Elapsed,
	})
	if err != nil {
		entry.WithError(err).Error("search rejected")
		return res, err
	}
	entry.Info("search finished")

	s.last = res
	return res, nil
}
