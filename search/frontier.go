package search

import "github.com/katalvlaran/gridpath/gridgraph"

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the A* heuristic.
// It never overestimates on a 4-directional unit-cost grid, and it is
// consistent, so A* finds shortest paths without reopening closed cells.
func Manhattan(a, b gridgraph.Pos) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// entry is a frontier element: a cell with its priority and the sequence
// number it was pushed with.
type entry struct {
	priority int
	seq      uint64
	cell     *gridgraph.Cell
}

// frontier is a min-heap of entries ordered by (priority, seq). Sequence
// numbers are unique, so cells themselves are never compared.
type frontier []entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = entry{}
	*f = old[:n-1]

	return item
}
