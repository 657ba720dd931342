// Package gridpath is a step-wise grid pathfinding engine with terminal and
// windowed visualizers.
//
// What is gridpath?
//
//	Paint walls, a start and an end on a square board, pick an algorithm, and
//	watch the search open and close cells one expansion at a time before the
//	shortest route lights up:
//		• A*          – frontier ordered by g + Manhattan distance
//		• Dijkstra    – frontier ordered by g alone
//		• Brute force – plain breadth-first flood
//
// Packages:
//
//	gridgraph/   – Grid, Cell, State; neighbor caches; editing; reachability
//	search/      – the three searches, the step protocol and cancellation
//	layout/      – seeded maze, scatter and walls boards
//	session/     – interactive board state shared by both front ends
//	metrics/     – Prometheus collectors for search runs
//	config/      – flag-bound settings and logrus logger
//	tui/         – tcell terminal front end with an optional beep chime
//	gui/         – ebiten window front end (gui/editor holds its logic)
//	cmd/pathviz, cmd/pathviz-gui – the binaries
//
// Quick ASCII example (S start, E end, # wall, * path):
//
//	S**
//	##*
//	E**
//
//	go run github.com/katalvlaran/gridpath/cmd/pathviz -layout maze
package gridpath
