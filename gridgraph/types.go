// Package gridgraph defines the cell, state and position types shared by the
// grid and the search engine.
package gridgraph

import "fmt"

// Pos addresses a cell by its 0-indexed row and column.
type Pos struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// State is the role a cell currently plays on the board.
type State uint8

const (
	// Empty is a passable, unexplored cell.
	Empty State = iota
	// Start is the unique origin of a search.
	Start
	// End is the unique target of a search.
	End
	// Barrier is an impassable cell.
	Barrier
	// Open marks a cell discovered by a search and waiting in its frontier.
	Open
	// Closed marks a cell a search has fully expanded.
	Closed
	// Path marks a cell on the reconstructed route between Start and End.
	Path
)

var stateNames = [...]string{
	Empty:   "empty",
	Start:   "start",
	End:     "end",
	Barrier: "barrier",
	Open:    "open",
	Closed:  "closed",
	Path:    "path",
}

// String returns the lower-case name of the state.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Cell is a single grid position with a mutable state tag and a cached list
// of passable neighbors.
//
// The neighbor cache is only valid after UpdateNeighbors (or
// Grid.RefreshNeighbors) has run since the last barrier edit.
type Cell struct {
	pos       Pos
	state     State
	neighbors []*Cell
}

// Pos returns the cell's position.
func (c *Cell) Pos() Pos { return c.pos }

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.pos.Row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.pos.Col }

// State returns the cell's current tag.
func (c *Cell) State() State { return c.state }

// IsEmpty reports whether the cell is free and unvisited.
func (c *Cell) IsEmpty() bool { return c.state == Empty }

// IsStart reports whether the cell is the search origin.
func (c *Cell) IsStart() bool { return c.state == Start }

// IsEnd reports whether the cell is the search target.
func (c *Cell) IsEnd() bool { return c.state == End }

// IsBarrier reports whether the cell blocks movement.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// IsOpen reports whether the cell is discovered but not yet expanded.
func (c *Cell) IsOpen() bool { return c.state == Open }

// IsClosed reports whether the cell has been expanded.
func (c *Cell) IsClosed() bool { return c.state == Closed }

// IsPath reports whether the cell lies on the marked route.
func (c *Cell) IsPath() bool { return c.state == Path }

// Reset returns the cell to Empty.
func (c *Cell) Reset() { c.state = Empty }

// Make sets the cell's tag. Setting the same tag twice is a no-op.
//
// Start and End uniqueness is only maintained by the Grid editing helpers;
// Make is meant for the transient search states (Open, Closed, Path).
func (c *Cell) Make(s State) { c.state = s }

// Neighbors returns the cached neighbor list computed by the last
// UpdateNeighbors call. The slice must not be modified.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// neighborOffsets lists the 4-directional moves in enumeration order:
// down, up, right, left. Every search breaks ties through this order.
var neighborOffsets = [4][2]int{
	{1, 0},  // down
	{-1, 0}, // up
	{0, 1},  // right
	{0, -1}, // left
}

// UpdateNeighbors recomputes the cell's cache: the in-bounds, non-barrier
// cells adjacent to it, in the order down, up, right, left.
// Complexity: O(1).
func (c *Cell) UpdateNeighbors(g *Grid) {
	ns := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := g.Cell(Pos{Row: c.pos.Row + d[0], Col: c.pos.Col + d[1]})
		if n == nil || n.IsBarrier() {
			continue
		}
		ns = append(ns, n)
	}
	c.neighbors = ns
}
