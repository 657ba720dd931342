package layout

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Kind names a layout generator.
type Kind int

const (
	// None paints nothing.
	None Kind = iota
	// Maze carves a perfect maze on the even lattice.
	Maze
	// Scatter drops barriers at random with the configured density.
	Scatter
	// Walls draws the border plus vertical walls with one gap each.
	Walls
)

// Kinds lists every layout in menu order.
var Kinds = []Kind{None, Maze, Scatter, Walls}

var kindNames = [...]string{"none", "maze", "scatter", "walls"}

// String returns the lower-case name accepted by ParseKind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a case-insensitive name to a Kind. The empty string is None.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return None, nil
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Apply paints the layout named by kind and returns how many of the cells it
// painted are still Barrier afterwards. Barriers that were already on the
// board are never counted, even when WithConnected carves through them.
func Apply(g *gridgraph.Grid, kind Kind, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	cfg := newConfig(opts)
	if cfg.err != nil {
		return 0, cfg.err
	}

	var mask [][]bool
	switch kind {
	case None:
		return 0, nil
	case Maze:
		mask = mazeMask(g.Size(), cfg)
	case Scatter:
		mask = scatterMask(g.Size(), cfg)
	case Walls:
		mask = wallsMask(g.Size(), cfg)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	painted := paint(g, mask, cfg)
	if cfg.connect {
		if err := connect(g, painted); err != nil {
			return len(painted), err
		}
	}
	return len(painted), nil
}

// paint turns masked Empty cells into barriers, skipping protected cells,
// and returns the cells it changed.
func paint(g *gridgraph.Grid, mask [][]bool, cfg config) map[gridgraph.Pos]bool {
	protected := protect(g, cfg.keep)
	painted := make(map[gridgraph.Pos]bool)
	for r, row := range mask {
		for c, wall := range row {
			p := gridgraph.Pos{Row: r, Col: c}
			cell := g.Cell(p)
			if !wall || protected[p] || !cell.IsEmpty() {
				continue
			}
			cell.Make(gridgraph.Barrier)
			painted[p] = true
		}
	}
	return painted
}

// protect expands the keep set with the grid's endpoints and the 4-neighbors
// of every kept cell.
func protect(g *gridgraph.Grid, keep map[gridgraph.Pos]bool) map[gridgraph.Pos]bool {
	seeds := make([]gridgraph.Pos, 0, len(keep)+2)
	for p := range keep {
		seeds = append(seeds, p)
	}
	if s := g.Start(); s != nil {
		seeds = append(seeds, s.Pos())
	}
	if e := g.End(); e != nil {
		seeds = append(seeds, e.Pos())
	}

	out := make(map[gridgraph.Pos]bool, 5*len(seeds))
	for _, p := range seeds {
		out[p] = true
		out[gridgraph.Pos{Row: p.Row + 1, Col: p.Col}] = true
		out[gridgraph.Pos{Row: p.Row - 1, Col: p.Col}] = true
		out[gridgraph.Pos{Row: p.Row, Col: p.Col + 1}] = true
		out[gridgraph.Pos{Row: p.Row, Col: p.Col - 1}] = true
	}
	return out
}

// connect carves between the grid's endpoints when both are placed and
// drops every carved cell from painted.
func connect(g *gridgraph.Grid, painted map[gridgraph.Pos]bool) error {
	s, e := g.Start(), g.End()
	if s == nil || e == nil {
		return nil
	}
	cleared, err := g.CarvePath(s.Pos(), e.Pos())
	if err != nil {
		return fmt.Errorf("layout: connect endpoints: %w", err)
	}
	for _, p := range cleared {
		delete(painted, p)
	}
	return nil
}

// newMask allocates an n×n boolean matrix.
func newMask(n int) [][]bool {
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	return m
}
