// Package grid treats a 2D lattice of cells as a maze graph.
//
// What:
//
//   - Point and Direction: integer coordinates with north/east/south/west
//     offsets (north is y-1).
//   - Cell: a node with four neighbor slots; each slot records the adjacent
//     coordinate and whether a passage (link) has been carved toward it.
//   - Grid: the shared contract (storage, linking, neighbor lookup, uniform
//     random selection, row iteration) implemented by two topologies:
//     Rect (rectangular) and Polar (rings of sectors).
//   - Components: lattice-connected islands of a masked grid.
//
// Storage:
//
//	Cells live in a dense arena indexed by y*Width+x. A masked position keeps
//	its arena slot but its entry in Cells() is nil, so lookup stays O(1) and
//	absent cells never take part in linking, neighbor queries or selection.
//
// Linking:
//
//	Link(a, b, true) updates both endpoints before returning. Linking points
//	that are not one cardinal step apart panics with ErrNotAdjacent; it would
//	silently corrupt the maze, so it is treated as an assertion.
//
// Complexity:
//
//   - Get, Index, Neighbors, Link, RandomCell: O(1).
//   - Construction, LinkCount, Components: O(W×H).
//
// Errors:
//
//   - ErrBadSize: non-positive dimensions.
//   - ErrNilMask: nil mask passed to RectFromMask/PolarFromMask.
//   - ErrEmptyGrid: RandomCell on a grid whose every cell is masked.
//   - ErrNilRand: RandomCell without a random source.
package grid
