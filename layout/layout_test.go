package layout_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/layout"
)

func emptyGrid(t *testing.T, n int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(n)
	require.NoError(t, err)
	return g
}

func withEndpoints(t *testing.T, n int) *gridgraph.Grid {
	t.Helper()
	g := emptyGrid(t, n)
	require.NoError(t, g.SetStart(gridgraph.Pos{}))
	require.NoError(t, g.SetEnd(gridgraph.Pos{Row: n - 1, Col: n - 1}))
	return g
}

func TestApply_Errors(t *testing.T) {
	_, err := layout.Apply(nil, layout.Maze)
	assert.ErrorIs(t, err, layout.ErrNilGrid)

	g := emptyGrid(t, 4)
	_, err = layout.Apply(g, layout.Kind(9))
	assert.ErrorIs(t, err, layout.ErrUnknownKind)

	_, err = layout.Apply(g, layout.Scatter, layout.WithDensity(1.5))
	assert.ErrorIs(t, err, layout.ErrBadDensity)
	_, err = layout.Apply(g, layout.Scatter, layout.WithDensity(-0.1))
	assert.ErrorIs(t, err, layout.ErrBadDensity)

	assert.Equal(t, 0, g.Count(gridgraph.Barrier), "failed calls paint nothing")
	assert.Panics(t, func() { layout.WithRand(nil) })
}

func TestParseKind(t *testing.T) {
	for _, k := range layout.Kinds {
		got, err := layout.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := layout.ParseKind(" MAZE ")
	require.NoError(t, err)
	assert.Equal(t, layout.Maze, got)

	got, err = layout.ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, layout.None, got)

	_, err = layout.ParseKind("spiral")
	assert.ErrorIs(t, err, layout.ErrUnknownKind)
	assert.Equal(t, "kind(7)", layout.Kind(7).String())
}

func TestApply_None(t *testing.T) {
	g := withEndpoints(t, 5)
	n, err := layout.Apply(g, layout.None)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, g.Count(gridgraph.Barrier))
}

func TestScatter_DensityBounds(t *testing.T) {
	g := withEndpoints(t, 5)
	n, err := layout.Apply(g, layout.Scatter, layout.WithDensity(0))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// Full density paints everything except the endpoints and their
	// neighbors: 25 - 2*3 corner cells.
	n, err = layout.Apply(g, layout.Scatter, layout.WithDensity(1))
	require.NoError(t, err)
	assert.Equal(t, 19, n)
	assert.Equal(t, 19, g.Count(gridgraph.Barrier))
	assert.Equal(t, gridgraph.Start, g.At(0, 0).State())
	assert.Equal(t, gridgraph.End, g.At(4, 4).State())
	assert.True(t, g.At(0, 1).IsEmpty())
	assert.True(t, g.At(3, 4).IsEmpty())
}

func TestScatter_Keep(t *testing.T) {
	g := emptyGrid(t, 5)
	n, err := layout.Apply(g, layout.Scatter,
		layout.WithDensity(1),
		layout.WithKeep(gridgraph.Pos{Row: 2, Col: 2}),
	)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	for _, p := range []gridgraph.Pos{{Row: 2, Col: 2}, {Row: 1, Col: 2}, {Row: 3, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 3}} {
		assert.True(t, g.Cell(p).IsEmpty(), "kept %v", p)
	}
}

func TestApply_OnlyPaintsEmptyCells(t *testing.T) {
	g := emptyGrid(t, 4)
	g.At(1, 1).Make(gridgraph.Path)
	g.At(2, 2).Make(gridgraph.Barrier)

	n, err := layout.Apply(g, layout.Scatter, layout.WithDensity(1))
	require.NoError(t, err)
	assert.Equal(t, 14, n)
	assert.Equal(t, gridgraph.Path, g.At(1, 1).State())
	assert.Equal(t, 15, g.Count(gridgraph.Barrier))
}

func TestApply_Deterministic(t *testing.T) {
	for _, k := range []layout.Kind{layout.Maze, layout.Scatter, layout.Walls} {
		t.Run(k.String(), func(t *testing.T) {
			a, b := withEndpoints(t, 15), withEndpoints(t, 15)
			_, err := layout.Apply(a, k, layout.WithSeed(7))
			require.NoError(t, err)
			_, err = layout.Apply(b, k, layout.WithRand(rand.New(rand.NewSource(7))))
			require.NoError(t, err)
			assert.Equal(t, a.String(), b.String())
		})
	}
}

func TestMaze_IsPerfect(t *testing.T) {
	g := emptyGrid(t, 7)
	n, err := layout.Apply(g, layout.Maze, layout.WithSeed(3))
	require.NoError(t, err)

	// 49 cells, 16 rooms, 15 knocked-out walls link the rooms into a tree.
	assert.Equal(t, 18, n)
	for r := 0; r < 7; r += 2 {
		for c := 0; c < 7; c += 2 {
			assert.True(t, g.At(r, c).IsEmpty())
		}
	}
	for r := 1; r < 7; r += 2 {
		for c := 1; c < 7; c += 2 {
			assert.True(t, g.At(r, c).IsBarrier())
		}
	}
	assert.Len(t, g.Reachable(gridgraph.Pos{}), 49-18, "every open cell is reachable")
}

func TestWalls_Count(t *testing.T) {
	g := emptyGrid(t, 6)
	n, err := layout.Apply(g, layout.Walls, layout.WithSeed(11))
	require.NoError(t, err)
	// Border ring of 20 cells plus column 3 (rows 1..4) minus one gap.
	assert.Equal(t, 23, n)
	assert.Equal(t, 3, g.Count(gridgraph.Barrier)-20)
}

func TestWithConnected(t *testing.T) {
	for _, k := range []layout.Kind{layout.Maze, layout.Scatter, layout.Walls} {
		t.Run(k.String(), func(t *testing.T) {
			g := withEndpoints(t, 12)
			n, err := layout.Apply(g, k,
				layout.WithSeed(5),
				layout.WithDensity(0.6),
				layout.WithConnected(),
			)
			require.NoError(t, err)
			assert.True(t, g.Connected(g.Start().Pos(), g.End().Pos()))
			assert.Equal(t, n, g.Count(gridgraph.Barrier))
		})
	}
}

func TestWithConnected_CountsOnlyPaintedCells(t *testing.T) {
	// The user's wall separates the endpoints; the layout paints nothing,
	// so carving through the wall must not make the count negative.
	g, err := gridgraph.FromStrings([]string{
		"S..",
		"###",
		"E..",
	})
	require.NoError(t, err)

	n, err := layout.Apply(g, layout.Scatter,
		layout.WithDensity(0),
		layout.WithConnected(),
	)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 2, g.Count(gridgraph.Barrier))
	assert.True(t, g.Connected(g.Start().Pos(), g.End().Pos()))
}
