package algorithms

import "github.com/katalvlaran/maze/grid"

// RecursiveBacktrackerOn is a depth-first carve with an explicit stack.
//
// Steps:
//  1. Push a uniformly chosen start cell and mark it visited.
//  2. While the stack is non-empty: if the top has unvisited neighbors, link
//     to one at random, mark it and push it; otherwise pop.
//  3. When the stack empties with unvisited cells left (another lattice
//     component), push the first of them in scan order and continue.
//
// The result favors long winding corridors with few dead ends.
//
// Returns grid.ErrEmptyGrid on an empty grid.
// Complexity: O(W×H) time and stack memory.
func RecursiveBacktrackerOn(g grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	o := resolve(opts)

	start, err := g.RandomCell(o.Rand)
	if err != nil {
		return err
	}
	cells := g.Cells()
	visited := make([]bool, len(cells))
	stack := make([]grid.Point, 0, g.Size())

	push := func(p grid.Point) {
		i, _ := g.Index(p)
		visited[i] = true
		stack = append(stack, p)
	}
	push(start.Point())

	var fresh []grid.Point
	for scan := 0; ; {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			fresh = fresh[:0]
			for _, q := range g.Neighbors(top) {
				if j, _ := g.Index(q); !visited[j] {
					fresh = append(fresh, q)
				}
			}
			if len(fresh) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			next := sample(fresh, o.Rand)
			g.Link(top, next, true)
			push(next)
		}

		for scan < len(cells) && (cells[scan] == nil || visited[scan]) {
			scan++
		}
		if scan == len(cells) {
			return nil
		}
		push(cells[scan].Point())
	}
}
