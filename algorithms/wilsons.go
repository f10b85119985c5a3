package algorithms

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/maze/grid"
)

// WilsonsOn grows a uniform spanning tree with loop-erased random walks.
//
// Steps:
//  1. Seed the tree with one uniformly chosen cell per lattice component.
//  2. While unvisited cells remain, pick one uniformly and walk randomly
//     until the walk touches the tree. Whenever the walk crosses its own
//     path, erase the loop back to the earlier visit.
//  3. Link the surviving path cell by cell and add it to the tree.
//
// Each move costs one step of the WithMaxSteps budget.
//
// Returns grid.ErrEmptyGrid on an empty grid, ErrStepLimit when the budget
// runs out.
// Complexity: expected O(mean hitting time), far below Aldous-Broder's cover
// time once the tree is large.
func WilsonsOn(g grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	if g.Size() == 0 {
		return grid.ErrEmptyGrid
	}
	o := resolve(opts)
	cells := g.Cells()
	steps := &budget{max: o.MaxSteps}

	// unvisited pool with O(1) removal
	pool := make([]int, 0, g.Size())
	pos := make([]int, len(cells))
	for i, c := range cells {
		pos[i] = -1
		if c != nil {
			pos[i] = len(pool)
			pool = append(pool, i)
		}
	}
	remove := func(i int) {
		j := pos[i]
		if j < 0 {
			return
		}
		last := pool[len(pool)-1]
		pool[j], pos[last] = last, j
		pool = pool[:len(pool)-1]
		pos[i] = -1
	}

	inTree := mapset.New[grid.Point]()
	for _, comp := range newIslands(g).comps {
		seed := sample(comp, o.Rand)
		inTree.Put(cells[seed].Point())
		remove(seed)
	}

	// onPath[i] is the position of cell i in the current walk, or -1.
	onPath := make([]int, len(cells))
	for i := range onPath {
		onPath[i] = -1
	}
	var path []grid.Point

	for len(pool) > 0 {
		start := sample(pool, o.Rand)
		cur := cells[start].Point()
		path = append(path[:0], cur)
		onPath[start] = 0

		for !inTree.Has(cur) {
			if err := steps.step(); err != nil {
				return err
			}
			cur = sample(g.Neighbors(cur), o.Rand)
			ci, _ := g.Index(cur)
			if k := onPath[ci]; k >= 0 {
				// erase the loop
				for _, q := range path[k+1:] {
					qi, _ := g.Index(q)
					onPath[qi] = -1
				}
				path = path[:k+1]
				continue
			}
			onPath[ci] = len(path)
			path = append(path, cur)
		}

		for k, p := range path {
			pi, _ := g.Index(p)
			onPath[pi] = -1
			if k+1 < len(path) {
				g.Link(p, path[k+1], true)
				inTree.Put(p)
				remove(pi)
			}
		}
	}
	return nil
}
