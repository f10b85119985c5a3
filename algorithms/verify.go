package algorithms

import (
	"fmt"

	"github.com/katalvlaran/maze/grid"
)

// Verify checks that g holds a perfect maze on every lattice component:
//
//   - every passage is recorded on both cells (ErrAsymmetricLink);
//   - passages never close a loop (ErrCycle);
//   - each component is a single tree (ErrDisconnected).
//
// An empty grid verifies trivially.
// Complexity: O(W×H·α(W×H)).
func Verify(g grid.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	cells := g.Cells()
	for _, c := range cells {
		if c == nil {
			continue
		}
		for _, q := range c.Links() {
			nb := g.Get(q)
			if nb == nil || !nb.IsLinked(c.Point()) {
				return fmt.Errorf("%w: %v -> %v", ErrAsymmetricLink, c.Point(), q)
			}
		}
	}

	sets := newDSU(len(cells))
	passages := 0
	for _, e := range latticeEdges(g) {
		if !linked(cells, e) {
			continue
		}
		passages++
		if !sets.union(e.a, e.b) {
			return fmt.Errorf("%w: closed by %v-%v", ErrCycle, cells[e.a].Point(), cells[e.b].Point())
		}
	}

	comps := grid.Components(g)
	if want := g.Size() - len(comps); passages != want {
		for _, comp := range comps {
			root := sets.find(comp[0])
			for _, i := range comp[1:] {
				if sets.find(i) != root {
					return fmt.Errorf("%w: %v unreachable from %v", ErrDisconnected, cells[i].Point(), cells[comp[0]].Point())
				}
			}
		}
	}
	return nil
}
