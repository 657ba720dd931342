// Package gridgraph models the square board a pathfinding run is played on:
// a fixed N×N arrangement of cells, each carrying a state tag and a cached
// list of passable neighbors.
//
// What:
//
//   - Grid owns N² Cells addressed by Pos{Row, Col}.
//   - Cell carries a State (Empty, Start, End, Barrier, Open, Closed, Path).
//   - Neighbor caches are 4-directional and list in-bounds, non-barrier
//     cells in the fixed order down, up, right, left.
//   - Editing helpers (SetStart, SetEnd, SetBarrier, Clear) keep at most one
//     Start and one End cell on the board.
//   - Reachable/Connected flood-fill the passable region; CarvePath clears the
//     fewest barriers needed to join two cells.
//
// Why:
//
//   - The search engine borrows a Grid for one run, so it needs stable cell
//     identities and a neighbor order that makes every run reproducible.
//   - Neighbor caches are rebuilt explicitly, never lazily: call
//     RefreshNeighbors after editing barriers and before searching.
//
// Complexity:
//
//   - NewGrid, RefreshNeighbors, ResetSearch: O(N²) time.
//   - Reachable: O(N²) time and memory.
//   - CarvePath: O(N²) time and memory (0-1 BFS).
//
// Errors:
//
//   - ErrEmptyGrid: requested size is not positive.
//   - ErrNonSquare: ASCII rows do not form a square.
//   - ErrBadGlyph: ASCII input contains an unknown character.
//   - ErrOutOfBounds: a position lies outside the grid.
package gridgraph
