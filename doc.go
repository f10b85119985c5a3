// Package maze is a maze-graph engine: a 2D lattice of cells treated as a
// graph, carved into perfect mazes by randomized spanning-tree algorithms
// and measured with breadth-first distances.
//
// The module is organized in one package per concern:
//
//	grid/       — Point, Direction, Cell, the Grid contract, Rect and Polar topologies
//	mask/       — which cells exist: text masks and raster image masks
//	algorithms/ — Binary Tree, Sidewinder, Aldous-Broder, Wilson's, Hunt-and-Kill,
//	              Recursive Backtracker, Kruskal, plus Verify
//	distances/  — BFS distances, shortest paths, farthest cell, longest path
//	render/     — ASCII, PNG (rectangular and polar) and tcell terminal output
//	cmd/maze/   — command-line front end
//
// Quick ASCII example, a 3×2 maze with distances from the top-left cell:
//
//	+---+---+---+
//	| 0   1   2 |
//	+---+---+   +
//	| 5   4   3 |
//	+---+---+---+
//
// Generation is single-threaded and deterministic for a given seed; every
// generator takes its *rand.Rand through options.
//
//	go get github.com/katalvlaran/maze
package maze
