// Package search runs A*, Dijkstra and breadth-first ("brute force") searches
// over a gridgraph.Grid one expansion at a time, handing control to a step
// callback after every expansion so a renderer can repaint the board.
//
// What
//
//   - Three algorithms share one contract:
//     AStar(g, start, end, opts...), Dijkstra(...), BruteForce(...), or
//     Run(alg, ...) to dispatch by Algorithm.
//   - Cells move Empty → Open when discovered and Open → Closed once expanded.
//     On success the route between the endpoints is marked Path and the end
//     cell is re-marked End. Start and End never become Open or Closed.
//   - The Result reports Found, Cancelled, the number of expansions, the
//     route, and the elapsed time.
//
// Step protocol
//
//	The StepFunc installed with WithStep is the only suspension point. It is
//	called synchronously once per expansion, after the expanded cell has been
//	marked Closed, and once per cell while the path is being marked. Between
//	two calls the board always reflects a completed expansion.
//
// Cancellation
//
//	WithContext and WithInterrupt are sampled at the top of every expansion
//	loop iteration only, so at most one expansion (up to four neighbors) runs
//	after a cancel request. A cancelled run returns Result{Cancelled: true}
//	and a nil error; the board is left as it was.
//
// Determinism
//
//	Neighbors are enumerated down, up, right, left (see gridgraph), and the
//	priority queue breaks score ties by a strictly increasing insertion
//	sequence. Repeating a run on an identical board reproduces every Open and
//	Closed transition and the final path.
//
// Frontier strategy
//
//	A* and Dijkstra use lazy deletion: a neighbor is pushed again whenever its
//	g-score improves and stale heap entries are skipped on dequeue once their
//	cell is closed. There is no linear membership scan of the queue.
//
// Complexity (N² = cells)
//
//   - AStar, Dijkstra: O(N² log N) time, O(N²) memory.
//   - BruteForce:      O(N²) time and memory.
//
// Errors
//
//   - ErrNilGrid           if the grid pointer is nil.
//   - ErrOutOfBounds       if start or end is not a grid position.
//   - ErrSameEndpoints     if start == end.
//   - ErrUnknownAlgorithm  if Run receives an undefined Algorithm.
//   - ErrOptionViolation   if an Option is invalid (e.g. nil clock).
//
// A missing path is not an error: Result.Found is false.
package search
