package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// scatteredGrid builds an n×n grid with roughly 30% barriers.
func scatteredGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rnd := rand.New(rand.NewSource(42))
	g, err := gridgraph.NewGrid(n)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	for _, c := range g.Cells() {
		if rnd.Float64() < 0.3 {
			c.Make(gridgraph.Barrier)
		}
	}
	return g
}

// BenchmarkRefreshNeighbors measures the full neighbor recompute pass on a
// 500×500 grid.
// Complexity: O(N²)
func BenchmarkRefreshNeighbors(b *testing.B) {
	g := scatteredGrid(b, 500)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.RefreshNeighbors()
	}
}

// BenchmarkReachable floods a 500×500 grid from its corner.
// Complexity: O(N²)
func BenchmarkReachable(b *testing.B) {
	g := scatteredGrid(b, 500)
	g.At(0, 0).Reset()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Reachable(gridgraph.Pos{})
	}
}
