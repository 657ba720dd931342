package gridgraph

import (
	"container/list"
	"fmt"
)

// CarvePath clears the fewest Barrier cells needed for `to` to become
// reachable from `from`, and returns the positions it cleared (possibly
// none). Endpoints and other non-barrier cells are never modified.
//
// Behavior:
//  1. Validate both positions.
//  2. 0–1 BFS from `from`:
//     • stepping onto a passable cell costs 0
//     • stepping onto a barrier costs 1
//  3. Stop when `to` is dequeued.
//  4. Walk predecessors back and clear every barrier on the way.
//
// Neighbor caches are not refreshed; call RefreshNeighbors before searching.
//
// Complexity: O(N²) time, O(N²) memory for distance and predecessor slices.
func (g *Grid) CarvePath(from, to Pos) ([]Pos, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("%w: from %v", ErrOutOfBounds, from)
	}
	if !g.InBounds(to) {
		return nil, fmt.Errorf("%w: to %v", ErrOutOfBounds, to)
	}

	n := g.size * g.size
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.index(from), g.index(to)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		up := g.coordinate(u)
		for _, d := range neighborOffsets {
			vp := Pos{Row: up.Row + d[0], Col: up.Col + d[1]}
			if !g.InBounds(vp) {
				continue
			}
			v := g.index(vp)
			step := 0
			if g.cells[vp.Row][vp.Col].IsBarrier() {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	var cleared []Pos
	for at := dst; at >= 0; at = prev[at] {
		p := g.coordinate(at)
		if c := g.cells[p.Row][p.Col]; c.IsBarrier() {
			c.Reset()
			cleared = append(cleared, p)
		}
	}
	// report in from→to order
	for i, j := 0, len(cleared)-1; i < j; i, j = i+1, j-1 {
		cleared[i], cleared[j] = cleared[j], cleared[i]
	}

	return cleared, nil
}
