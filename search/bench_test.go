package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// openGrid returns an n×n grid with corner endpoints and fresh neighbors.
func openGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	g, err := gridgraph.NewGrid(n)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	_ = g.SetStart(gridgraph.Pos{})
	_ = g.SetEnd(gridgraph.Pos{Row: n - 1, Col: n - 1})
	g.RefreshNeighbors()
	return g
}

// benchmarkAlgorithm runs alg corner to corner on a 100×100 open board.
// Complexity: O(N² log N) for best-first, O(N²) for breadth-first.
func benchmarkAlgorithm(b *testing.B, alg search.Algorithm) {
	g := openGrid(b, 100)
	start, end := g.Start().Pos(), g.End().Pos()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetSearch()
		if _, err := search.Run(alg, g, start, end); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAStar(b *testing.B)      { benchmarkAlgorithm(b, search.AlgAStar) }
func BenchmarkDijkstra(b *testing.B)   { benchmarkAlgorithm(b, search.AlgDijkstra) }
func BenchmarkBruteForce(b *testing.B) { benchmarkAlgorithm(b, search.AlgBruteForce) }
