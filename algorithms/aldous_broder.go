package algorithms

import (
	"math/rand"

	"github.com/katalvlaran/maze/grid"
)

// AldousBroderOn performs a random walk from a uniformly chosen cell,
// stepping to a uniformly chosen present neighbor each move and linking into
// every cell on its first visit. The walk ends once its lattice component is
// covered; any other component is then walked from one of its own cells
// chosen uniformly.
//
// The result is a uniform spanning tree of each component, at the price of
// an expected cover time that grows quickly with grid size. Each move costs
// one step of the WithMaxSteps budget.
//
// Returns grid.ErrEmptyGrid on an empty grid, ErrStepLimit when the budget
// runs out.
func AldousBroderOn(g grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	o := resolve(opts)

	start, err := g.RandomCell(o.Rand)
	if err != nil {
		return err
	}
	isl := newIslands(g)
	visited := make([]bool, len(g.Cells()))
	steps := &budget{max: o.MaxSteps}

	first, _ := g.Index(start.Point())
	first = isl.of[first]
	if err = aldousBroderWalk(g, o.Rand, start.Point(), len(isl.comps[first]), visited, steps); err != nil {
		return err
	}
	for k, comp := range isl.comps {
		if k == first {
			continue
		}
		from := g.Cells()[sample(comp, o.Rand)].Point()
		if err = aldousBroderWalk(g, o.Rand, from, len(comp), visited, steps); err != nil {
			return err
		}
	}
	return nil
}

// aldousBroderWalk covers the size cells of the component holding from.
func aldousBroderWalk(g grid.Grid, rng *rand.Rand, from grid.Point, size int, visited []bool, steps *budget) error {
	i, _ := g.Index(from)
	visited[i] = true
	remaining := size - 1

	cur := from
	for remaining > 0 {
		if err := steps.step(); err != nil {
			return err
		}
		next := sample(g.Neighbors(cur), rng)
		j, _ := g.Index(next)
		if !visited[j] {
			g.Link(cur, next, true)
			visited[j] = true
			remaining--
		}
		cur = next
	}
	return nil
}
