package gridgraph

import "fmt"

// Grid is a square board of N×N cells. It is built Empty and is never
// resized; clearing or resizing means building a new Grid.
//
// Grid is not safe for concurrent use. A search borrows it exclusively for
// the duration of one run.
type Grid struct {
	size  int
	cells [][]*Cell // cells[row][col]

	start *Cell
	end   *Cell
}

// NewGrid allocates a size×size grid of Empty cells. Neighbor caches are
// left unpopulated; call RefreshNeighbors before searching.
// Returns ErrEmptyGrid if size < 1.
// Complexity: O(N²) time and memory.
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size=%d", ErrEmptyGrid, size)
	}
	cells := make([][]*Cell, size)
	for r := 0; r < size; r++ {
		row := make([]*Cell, size)
		for c := 0; c < size; c++ {
			row[c] = &Cell{pos: Pos{Row: r, Col: c}}
		}
		cells[r] = row
	}

	return &Grid{size: size, cells: cells}, nil
}

// Size returns N, the number of rows (and columns).
func (g *Grid) Size() int { return g.size }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// Cell returns the cell at p, or nil when p is out of bounds.
func (g *Grid) Cell(p Pos) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return g.cells[p.Row][p.Col]
}

// At is shorthand for Cell(Pos{row, col}).
func (g *Grid) At(row, col int) *Cell {
	return g.Cell(Pos{Row: row, Col: col})
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, g.size*g.size)
	for _, row := range g.cells {
		out = append(out, row...)
	}
	return out
}

// Start returns the Start cell, or nil if none is placed.
func (g *Grid) Start() *Cell {
	if g.start != nil && g.start.IsStart() {
		return g.start
	}
	return nil
}

// End returns the End cell, or nil if none is placed.
func (g *Grid) End() *Cell {
	if g.end != nil && g.end.IsEnd() {
		return g.end
	}
	return nil
}

// SetStart tags p as Start. A previously placed Start cell is reset, so the
// grid never holds more than one.
func (g *Grid) SetStart(p Pos) error { return g.set(p, Start) }

// SetEnd tags p as End. A previously placed End cell is reset.
func (g *Grid) SetEnd(p Pos) error { return g.set(p, End) }

// SetBarrier tags p as Barrier. Placing a barrier over Start or End removes
// that endpoint.
func (g *Grid) SetBarrier(p Pos) error { return g.set(p, Barrier) }

// Clear resets p to Empty, removing an endpoint if one was there.
func (g *Grid) Clear(p Pos) error { return g.set(p, Empty) }

// set applies s to the cell at p while keeping Start and End unique.
func (g *Grid) set(p Pos, s State) error {
	c := g.Cell(p)
	if c == nil {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.size, g.size)
	}
	if c == g.start && s != Start {
		g.start = nil
	}
	if c == g.end && s != End {
		g.end = nil
	}

	switch s {
	case Start:
		if prev := g.Start(); prev != nil && prev != c {
			prev.Reset()
		}
		g.start = c
	case End:
		if prev := g.End(); prev != nil && prev != c {
			prev.Reset()
		}
		g.end = c
	}
	c.Make(s)

	return nil
}

// RefreshNeighbors recomputes every cell's neighbor cache. It must run after
// any barrier edit and before a search. Running it twice without an edit in
// between yields identical caches.
// Complexity: O(N²).
func (g *Grid) RefreshNeighbors() {
	for _, row := range g.cells {
		for _, c := range row {
			c.UpdateNeighbors(g)
		}
	}
}

// ResetSearch returns every Open, Closed and Path cell to Empty, keeping
// barriers and endpoints, so the same board can be searched again.
// Complexity: O(N²).
func (g *Grid) ResetSearch() {
	for _, row := range g.cells {
		for _, c := range row {
			switch c.state {
			case Open, Closed, Path:
				c.Reset()
			}
		}
	}
}

// Count returns how many cells currently carry state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c.state == s {
				n++
			}
		}
	}
	return n
}
