// Package algorithms carves perfect mazes into a grid.Grid.
//
// It provides free-function generators, each also reachable through the
// Algorithm enum:
//
//   - Row scanners (biased, fast)
//     – Binary Tree
//     – Sidewinder
//
//   - Uniform spanning trees
//     – Aldous-Broder (random walk)
//     – Wilson's (loop-erased random walk)
//
//   - Walk and backtrack
//     – Hunt-and-Kill
//     – Recursive Backtracker (iterative, explicit stack)
//
//   - Edge-based
//     – Kruskal (shuffled edges, union-find)
//
// Every generator writes passages with grid.Grid.Link and leaves, on each
// lattice component of the grid, a spanning tree: N cells, N-1 passages, one
// path between any two cells. Masked cells never take part.
//
// Randomness is injected. WithRand hands in a caller-owned *rand.Rand and
// WithSeed builds one; without either a fixed default seed is used, so two
// calls with the same options carve the same maze.
//
// Verify checks the result: symmetric links, no cycles, one tree per lattice
// component.
package algorithms
