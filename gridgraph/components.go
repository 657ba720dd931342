package gridgraph

// Reachable returns every cell reachable from `from` by 4-directional moves
// through non-barrier cells, in breadth-first order starting with `from`.
// It reads barrier state directly, so it does not depend on neighbor caches.
// Returns nil if `from` is out of bounds or a barrier.
//
// Time:   O(N²).
// Memory: O(N²) for the seen flags and output.
func (g *Grid) Reachable(from Pos) []Pos {
	src := g.Cell(from)
	if src == nil || src.IsBarrier() {
		return nil
	}
	seen := make([]bool, g.size*g.size)
	seen[g.index(from)] = true
	queue := []Pos{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range neighborOffsets {
			v := Pos{Row: u.Row + d[0], Col: u.Col + d[1]}
			c := g.Cell(v)
			if c == nil || c.IsBarrier() {
				continue
			}
			if vi := g.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

// Connected reports whether b can be reached from a through non-barrier
// cells.
func (g *Grid) Connected(a, b Pos) bool {
	if !g.InBounds(b) {
		return false
	}
	for _, p := range g.Reachable(a) {
		if p == b {
			return true
		}
	}
	return false
}

// index flattens p into a row-major offset.
func (g *Grid) index(p Pos) int {
	return p.Row*g.size + p.Col
}

// coordinate is the inverse of index.
func (g *Grid) coordinate(i int) Pos {
	return Pos{Row: i / g.size, Col: i % g.size}
}
