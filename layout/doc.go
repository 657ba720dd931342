// Package layout paints obstacle boards onto a gridgraph.Grid: a
// recursive-backtracker maze, random scatter, or bordered walls.
//
// Contract:
//   - Layouts only turn Empty cells into Barrier. Start, End and any cell
//     listed with WithKeep stay untouched, and so do their 4-neighbors, so an
//     endpoint is never sealed in by the generator itself.
//   - Randomness flows through an explicit *rand.Rand (WithSeed / WithRand);
//     without one a fixed default seed is used, so layouts are reproducible.
//   - WithConnected carves the cheapest gap (gridgraph.CarvePath) between the
//     grid's start and end once painting is done.
//
// Complexity: every layout is O(N²) in the number of cells.
//
// Errors:
//   - ErrNilGrid      grid pointer is nil.
//   - ErrUnknownKind  kind or name is not a known layout.
//   - ErrBadDensity   WithDensity outside [0, 1].
package layout
