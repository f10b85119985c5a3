package algorithms

import (
	"math/rand"

	"github.com/katalvlaran/maze/grid"
)

// HuntAndKillOn walks from a random cell into random unvisited neighbors,
// linking as it goes. When the walk is stuck it hunts: the grid is scanned
// in row-major order for the first unvisited cell that has a visited
// neighbor, which is linked to one of those neighbors at random and becomes
// the new walk head. If unvisited cells remain but none touches the visited
// region, they lie on another lattice component and the walk restarts from
// the first of them.
//
// Each walk move costs one step of the WithMaxSteps budget.
//
// Returns grid.ErrEmptyGrid on an empty grid, ErrStepLimit when the budget
// runs out.
// Complexity: O((W×H)²) worst case for the hunts.
func HuntAndKillOn(g grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	o := resolve(opts)

	start, err := g.RandomCell(o.Rand)
	if err != nil {
		return err
	}
	visited := make([]bool, len(g.Cells()))
	steps := &budget{max: o.MaxSteps}

	cur := start.Point()
	i, _ := g.Index(cur)
	visited[i] = true

	var fresh []grid.Point
	for {
		fresh = fresh[:0]
		for _, q := range g.Neighbors(cur) {
			if j, _ := g.Index(q); !visited[j] {
				fresh = append(fresh, q)
			}
		}
		if len(fresh) > 0 {
			if err = steps.step(); err != nil {
				return err
			}
			next := sample(fresh, o.Rand)
			g.Link(cur, next, true)
			j, _ := g.Index(next)
			visited[j] = true
			cur = next
			continue
		}

		next, ok := hunt(g, o.Rand, visited)
		if !ok {
			return nil
		}
		cur = next
	}
}

// hunt finds the next walk head and marks it visited.
func hunt(g grid.Grid, rng *rand.Rand, visited []bool) (grid.Point, bool) {
	island := -1
	var seen []grid.Point
	for i, c := range g.Cells() {
		if c == nil || visited[i] {
			continue
		}
		if island < 0 {
			island = i
		}
		seen = seen[:0]
		for _, q := range g.Neighbors(c.Point()) {
			if j, _ := g.Index(q); visited[j] {
				seen = append(seen, q)
			}
		}
		if len(seen) > 0 {
			g.Link(c.Point(), sample(seen, rng), true)
			visited[i] = true
			return c.Point(), true
		}
	}
	if island < 0 {
		return grid.Point{}, false
	}
	visited[island] = true
	return g.Cells()[island].Point(), true
}
