package algorithms

import "github.com/katalvlaran/maze/grid"

// KruskalOn treats every pair of adjacent present cells as a candidate
// passage, shuffles them, and links a pair whenever its endpoints are still
// in different union-find sets. Each lattice component ends as one tree.
//
// An empty grid succeeds with no passages.
// Complexity: O(E·α(N)) for E = O(2·N) edges; memory O(N).
func KruskalOn(g grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	o := resolve(opts)

	cells := g.Cells()
	edges := latticeEdges(g)
	shuffle(edges, o.Rand)

	sets := newDSU(len(cells))
	want := g.Size() - len(grid.Components(g))
	for _, e := range edges {
		if want == 0 {
			break
		}
		if sets.union(e.a, e.b) {
			g.Link(cells[e.a].Point(), cells[e.b].Point(), true)
			want--
		}
	}
	return nil
}
