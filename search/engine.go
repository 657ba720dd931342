package search

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Run dispatches to the search selected by alg.
//
// Returns ErrUnknownAlgorithm for an undefined alg, otherwise whatever the
// chosen search returns.
func Run(alg Algorithm, g *gridgraph.Grid, start, end gridgraph.Pos, opts ...Option) (Result, error) {
	switch alg {
	case AlgAStar:
		return AStar(g, start, end, opts...)
	case AlgDijkstra:
		return Dijkstra(g, start, end, opts...)
	case AlgBruteForce:
		return BruteForce(g, start, end, opts...)
	}
	return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
}

// AStar finds a shortest start→end route ordering the frontier by
// g + Manhattan(cell, end). Ties break in insertion order.
func AStar(g *gridgraph.Grid, start, end gridgraph.Pos, opts ...Option) (Result, error) {
	r, err := newRunner(AlgAStar, g, start, end, opts)
	if err != nil {
		return Result{Algorithm: AlgAStar}, err
	}
	return r.bestFirst(func(p gridgraph.Pos) int { return Manhattan(p, end) }), nil
}

// Dijkstra finds a shortest start→end route ordering the frontier by g alone.
func Dijkstra(g *gridgraph.Grid, start, end gridgraph.Pos, opts ...Option) (Result, error) {
	r, err := newRunner(AlgDijkstra, g, start, end, opts)
	if err != nil {
		return Result{Algorithm: AlgDijkstra}, err
	}
	return r.bestFirst(func(gridgraph.Pos) int { return 0 }), nil
}

// BruteForce explores the grid breadth-first from start. On a unit-cost grid
// the first time end is discovered the route is shortest.
func BruteForce(g *gridgraph.Grid, start, end gridgraph.Pos, opts ...Option) (Result, error) {
	r, err := newRunner(AlgBruteForce, g, start, end, opts)
	if err != nil {
		return Result{Algorithm: AlgBruteForce}, err
	}
	return r.breadthFirst(), nil
}

// runner holds the mutable state of a single search.
type runner struct {
	alg        Algorithm
	opts       Options
	start, end *gridgraph.Cell
	cameFrom   map[*gridgraph.Cell]*gridgraph.Cell
	began      time.Time
	steps      int
	expanded   int
}

// newRunner validates the invocation and prepares a runner.
// Validation order: nil grid, start bounds, end bounds, equal endpoints,
// option errors.
func newRunner(alg Algorithm, g *gridgraph.Grid, start, end gridgraph.Pos, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}
	if start == end {
		return nil, fmt.Errorf("%w: %v", ErrSameEndpoints, start)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &runner{
		alg:      alg,
		opts:     o,
		start:    g.Cell(start),
		end:      g.Cell(end),
		cameFrom: make(map[*gridgraph.Cell]*gridgraph.Cell),
		began:    o.Clock(),
	}, nil
}

// cancelled reports whether the context is done or the interrupt fired.
func (r *runner) cancelled() bool {
	select {
	case <-r.opts.Ctx.Done():
		return true
	default:
	}
	return r.opts.Interrupt()
}

// elapsed returns the time since the run began.
func (r *runner) elapsed() time.Duration {
	return r.opts.Clock().Sub(r.began)
}

// emit hands one step to the callback.
func (r *runner) emit(phase Phase, c *gridgraph.Cell) {
	r.opts.OnStep(Step{
		Phase:   phase,
		Cell:    c.Pos(),
		Index:   r.steps,
		Elapsed: r.elapsed(),
	})
	r.steps++
}

// open marks a discovered cell Open; endpoints keep their marks.
func (r *runner) open(c *gridgraph.Cell) {
	if c != r.start && c != r.end {
		c.Make(gridgraph.Open)
	}
}

// close marks an expanded cell Closed; the start cell keeps its mark.
func (r *runner) close(c *gridgraph.Cell) {
	if c != r.start {
		c.Make(gridgraph.Closed)
	}
}

// result assembles the outcome for the current state.
func (r *runner) result(found, cancelled bool) Result {
	res := Result{
		Algorithm: r.alg,
		Found:     found,
		Cancelled: cancelled,
		Expanded:  r.expanded,
	}
	if found {
		res.Path = r.reconstruct()
		res.PathLength = len(res.Path) - 2
	}
	res.Elapsed = r.elapsed()

	return res
}

// bestFirst is the shared A*/Dijkstra loop. h is the heuristic; Dijkstra
// passes the zero function.
//
// Steps:
//  1. Seed the frontier with start at priority h(start), g(start)=0.
//  2. Pop the lowest (priority, seq) entry; skip it if its cell was closed.
//  3. If it is end, mark the path and stop.
//  4. For each neighbor whose g improves: record cameFrom, push with a fresh
//     seq, mark Open.
//  5. Close the cell and emit a PhaseExpand step.
func (r *runner) bestFirst(h func(gridgraph.Pos) int) Result {
	gScore := map[*gridgraph.Cell]int{r.start: 0}
	closed := make(map[*gridgraph.Cell]bool)

	var seq uint64
	pq := &frontier{}
	heap.Push(pq, entry{priority: h(r.start.Pos()), seq: seq, cell: r.start})

	for pq.Len() > 0 {
		if r.cancelled() {
			return r.result(false, true)
		}

		current := heap.Pop(pq).(entry).cell
		if closed[current] {
			continue // stale entry
		}
		if current == r.end {
			return r.result(true, false)
		}

		tentative := gScore[current] + 1
		for _, nb := range current.Neighbors() {
			if closed[nb] {
				continue
			}
			if old, seen := gScore[nb]; seen && tentative >= old {
				continue
			}
			gScore[nb] = tentative
			r.cameFrom[nb] = current
			seq++
			heap.Push(pq, entry{priority: tentative + h(nb.Pos()), seq: seq, cell: nb})
			r.open(nb)
		}

		closed[current] = true
		r.close(current)
		r.expanded++
		r.emit(PhaseExpand, current)
	}

	return r.result(false, false)
}

// breadthFirst is the FIFO loop used by BruteForce.
// seen and cameFrom are filled together when a cell is first discovered;
// seen also holds start, which has no predecessor.
func (r *runner) breadthFirst() Result {
	seen := map[*gridgraph.Cell]bool{r.start: true}
	queue := []*gridgraph.Cell{r.start}

	for head := 0; head < len(queue); head++ {
		if r.cancelled() {
			return r.result(false, true)
		}

		current := queue[head]
		queue[head] = nil
		if current == r.end {
			return r.result(true, false)
		}

		for _, nb := range current.Neighbors() {
			if seen[nb] {
				continue
			}
			seen[nb] = true
			r.cameFrom[nb] = current
			queue = append(queue, nb)
			r.open(nb)
		}

		r.close(current)
		r.expanded++
		r.emit(PhaseExpand, current)
	}

	return r.result(false, false)
}

// reconstruct walks cameFrom back from end, marks every intermediate cell
// Path (emitting a PhasePath step for each), re-marks end as End and
// returns the route from start to end inclusive.
func (r *runner) reconstruct() []gridgraph.Pos {
	route := []gridgraph.Pos{r.end.Pos()}
	for c := r.cameFrom[r.end]; c != nil && c != r.start; c = r.cameFrom[c] {
		c.Make(gridgraph.Path)
		route = append(route, c.Pos())
		r.emit(PhasePath, c)
	}
	route = append(route, r.start.Pos())
	r.end.Make(gridgraph.End)

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}
