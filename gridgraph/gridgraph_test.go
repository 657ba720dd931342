package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive sizes.
func TestNewGrid_Errors(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := gridgraph.NewGrid(n)
		assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid, "size=%d", n)
	}
}

// TestNewGrid_AllEmpty checks a fresh grid: N² Empty cells, correct
// positions, no endpoints and no neighbor caches.
func TestNewGrid_AllEmpty(t *testing.T) {
	g, err := gridgraph.NewGrid(4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Size())
	cells := g.Cells()
	require.Len(t, cells, 16)
	for i, c := range cells {
		assert.Equal(t, gridgraph.Pos{Row: i / 4, Col: i % 4}, c.Pos())
		assert.True(t, c.IsEmpty())
		assert.Empty(t, c.Neighbors(), "cache must be empty before refresh")
	}
	assert.Nil(t, g.Start())
	assert.Nil(t, g.End())
	assert.Equal(t, 16, g.Count(gridgraph.Empty))
}

// TestInBounds checks InBounds and Cell on a 3×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(3)
	require.NoError(t, err)

	for _, p := range []gridgraph.Pos{{0, 0}, {2, 2}, {1, 2}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
		assert.NotNil(t, g.Cell(p))
	}
	for _, p := range []gridgraph.Pos{{-1, 0}, {3, 0}, {0, 3}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
		assert.Nil(t, g.Cell(p))
	}
}

//----------------------------------------------------------------------------//
// Neighbor cache
//----------------------------------------------------------------------------//

// TestUpdateNeighbors_Order verifies the fixed down, up, right, left order.
func TestUpdateNeighbors_Order(t *testing.T) {
	g, _ := gridgraph.NewGrid(3)
	g.RefreshNeighbors()

	got := positions(g.At(1, 1).Neighbors())
	want := []gridgraph.Pos{{2, 1}, {0, 1}, {1, 2}, {1, 0}}
	assert.Equal(t, want, got)

	// Corner cell: only down and right exist.
	assert.Equal(t, []gridgraph.Pos{{1, 0}, {0, 1}}, positions(g.At(0, 0).Neighbors()))
	// Opposite corner: only up and left.
	assert.Equal(t, []gridgraph.Pos{{1, 2}, {2, 1}}, positions(g.At(2, 2).Neighbors()))
}

// TestUpdateNeighbors_SkipsBarriers checks that barriers never appear as
// neighbors, while endpoints do.
func TestUpdateNeighbors_SkipsBarriers(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{
		".#.",
		"S.E",
		".#.",
	})
	require.NoError(t, err)
	g.RefreshNeighbors()

	assert.Equal(t, []gridgraph.Pos{{1, 2}, {1, 0}}, positions(g.At(1, 1).Neighbors()))
	for _, c := range g.Cells() {
		for _, n := range c.Neighbors() {
			assert.False(t, n.IsBarrier(), "%v lists barrier %v", c.Pos(), n.Pos())
		}
	}
}

// TestRefreshNeighbors_Idempotent runs the refresh pass twice with no edit in
// between and expects identical caches.
func TestRefreshNeighbors_Idempotent(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{
		"S..#",
		".##.",
		"...#",
		"#..E",
	})
	require.NoError(t, err)

	g.RefreshNeighbors()
	first := make(map[gridgraph.Pos][]gridgraph.Pos)
	for _, c := range g.Cells() {
		first[c.Pos()] = positions(c.Neighbors())
	}

	g.RefreshNeighbors()
	for _, c := range g.Cells() {
		assert.Equal(t, first[c.Pos()], positions(c.Neighbors()), "cell %v", c.Pos())
	}
}

// TestRefreshNeighbors_AfterEdit shows a stale cache until refreshed.
func TestRefreshNeighbors_AfterEdit(t *testing.T) {
	g, _ := gridgraph.NewGrid(2)
	g.RefreshNeighbors()
	require.Len(t, g.At(0, 0).Neighbors(), 2)

	require.NoError(t, g.SetBarrier(gridgraph.Pos{Row: 1, Col: 0}))
	assert.Len(t, g.At(0, 0).Neighbors(), 2, "cache is stale until refreshed")

	g.RefreshNeighbors()
	assert.Equal(t, []gridgraph.Pos{{0, 1}}, positions(g.At(0, 0).Neighbors()))
}

//----------------------------------------------------------------------------//
// Editing helpers
//----------------------------------------------------------------------------//

// TestEndpoints_Unique ensures a second Start or End moves the tag.
func TestEndpoints_Unique(t *testing.T) {
	g, _ := gridgraph.NewGrid(3)

	require.NoError(t, g.SetStart(gridgraph.Pos{Row: 0, Col: 0}))
	require.NoError(t, g.SetStart(gridgraph.Pos{Row: 1, Col: 1}))
	assert.Equal(t, 1, g.Count(gridgraph.Start))
	assert.Equal(t, gridgraph.Pos{Row: 1, Col: 1}, g.Start().Pos())
	assert.True(t, g.At(0, 0).IsEmpty())

	require.NoError(t, g.SetEnd(gridgraph.Pos{Row: 2, Col: 2}))
	require.NoError(t, g.SetEnd(gridgraph.Pos{Row: 2, Col: 0}))
	assert.Equal(t, 1, g.Count(gridgraph.End))
	assert.Equal(t, gridgraph.Pos{Row: 2, Col: 0}, g.End().Pos())

	// Moving End onto the Start cell removes Start.
	require.NoError(t, g.SetEnd(gridgraph.Pos{Row: 1, Col: 1}))
	assert.Nil(t, g.Start())
	assert.Equal(t, gridgraph.Pos{Row: 1, Col: 1}, g.End().Pos())
	assert.Equal(t, 1, g.Count(gridgraph.End))
}

// TestEditing_ClearAndBarrierOverEndpoint covers Clear and SetBarrier on
// endpoint cells.
func TestEditing_ClearAndBarrierOverEndpoint(t *testing.T) {
	g, _ := gridgraph.NewGrid(2)
	s, e := gridgraph.Pos{Row: 0, Col: 0}, gridgraph.Pos{Row: 1, Col: 1}
	require.NoError(t, g.SetStart(s))
	require.NoError(t, g.SetEnd(e))

	require.NoError(t, g.SetBarrier(s))
	assert.Nil(t, g.Start())
	assert.True(t, g.Cell(s).IsBarrier())

	require.NoError(t, g.Clear(e))
	assert.Nil(t, g.End())
	assert.True(t, g.Cell(e).IsEmpty())

	// Clearing twice is harmless.
	require.NoError(t, g.Clear(e))
	assert.True(t, g.Cell(e).IsEmpty())
}

// TestEditing_OutOfBounds ensures editing outside the grid fails.
func TestEditing_OutOfBounds(t *testing.T) {
	g, _ := gridgraph.NewGrid(2)
	p := gridgraph.Pos{Row: 2, Col: 0}
	assert.ErrorIs(t, g.SetStart(p), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetEnd(p), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetBarrier(p), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.Clear(p), gridgraph.ErrOutOfBounds)
}

// TestCell_ResetAndMakeIdempotent checks the raw state setters.
func TestCell_ResetAndMakeIdempotent(t *testing.T) {
	g, _ := gridgraph.NewGrid(1)
	c := g.At(0, 0)

	c.Make(gridgraph.Open)
	c.Make(gridgraph.Open)
	assert.True(t, c.IsOpen())
	c.Make(gridgraph.Closed)
	assert.True(t, c.IsClosed())
	c.Make(gridgraph.Path)
	assert.True(t, c.IsPath())
	c.Reset()
	c.Reset()
	assert.True(t, c.IsEmpty())
}

// TestCell_Queries checks that each query matches exactly one state.
func TestCell_Queries(t *testing.T) {
	g, _ := gridgraph.NewGrid(1)
	c := g.At(0, 0)

	states := []gridgraph.State{
		gridgraph.Empty, gridgraph.Start, gridgraph.End, gridgraph.Barrier,
		gridgraph.Open, gridgraph.Closed, gridgraph.Path,
	}
	for _, s := range states {
		c.Make(s)
		got := []bool{c.IsEmpty(), c.IsStart(), c.IsEnd(), c.IsBarrier(), c.IsOpen(), c.IsClosed(), c.IsPath()}
		for i, ok := range got {
			assert.Equal(t, states[i] == s, ok, "state %v, query %v", s, states[i])
		}
	}
}

// TestResetSearch removes exploration marks only.
func TestResetSearch(t *testing.T) {
	g, err := gridgraph.FromStrings([]string{
		"Sox",
		"#*.",
		"x.E",
	})
	require.NoError(t, err)

	g.ResetSearch()
	assert.Equal(t, "S..\n#..\n..E", g.String())
	assert.NotNil(t, g.Start())
	assert.NotNil(t, g.End())
}

//----------------------------------------------------------------------------//
// ASCII format
//----------------------------------------------------------------------------//

// TestFromStrings_Errors covers empty, ragged and unknown input.
func TestFromStrings_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Empty", nil, gridgraph.ErrEmptyGrid},
		{"Ragged", []string{"..", "."}, gridgraph.ErrNonSquare},
		{"Wide", []string{"...", "..."}, gridgraph.ErrNonSquare},
		{"Glyph", []string{".?", ".."}, gridgraph.ErrBadGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromStrings(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromStrings_String parses every glyph and renders the same board back.
func TestFromStrings_String(t *testing.T) {
	rows := []string{
		"S.#o",
		"x*..",
		"....",
		"...E",
	}
	g, err := gridgraph.FromStrings(rows)
	require.NoError(t, err)

	assert.Equal(t, "S.#o\nx*..\n....\n...E", g.String())
	assert.Equal(t, gridgraph.Pos{Row: 0, Col: 0}, g.Start().Pos())
	assert.Equal(t, gridgraph.Pos{Row: 3, Col: 3}, g.End().Pos())
	assert.Equal(t, "barrier", g.At(0, 2).State().String())
}

func positions(cells []*gridgraph.Cell) []gridgraph.Pos {
	out := make([]gridgraph.Pos, 0, len(cells))
	for _, c := range cells {
		out = append(out, c.Pos())
	}
	return out
}
