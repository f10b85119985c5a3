// Package distances measures a carved maze.
//
// Compute runs a frontier breadth-first search from a root over passages
// only; two adjacent cells without a link between them are as far apart as
// the maze makes them. The result records, for every reached cell, its
// number of passages from the root. Cells the search never reached are
// absent, so Distance reports (0, false) for them rather than zero.
//
// On top of the distance map:
//
//   - PathTo walks back from a goal to the root, preferring neighbors in
//     the order north, south, east, west when several are one step closer.
//   - Breadcrumbs keeps only the cells of that path, for overlays.
//   - Max finds the farthest cell (ties go to the first in scan order).
//   - LongestPath returns the maze's diameter with two searches.
//
// Complexity: O(N) time and memory per search over N present cells.
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - ErrRootNotFound: the root is out of bounds, masked, or the grid is empty.
//   - ErrNotReached: a path was requested to an unreached cell.
//   - ErrOptionViolation: an invalid Option.
package distances
