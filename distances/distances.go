package distances

import (
	"fmt"

	"github.com/katalvlaran/maze/grid"
)

// Distances maps every cell reached from Root to its number of links from
// Root. Unreached cells are absent, never zero.
//
// A Distances keeps a read-only reference to the grid it was computed on;
// recomputing from another root never touches the grid's links.
type Distances struct {
	grid  grid.Grid
	root  grid.Point
	cells map[grid.Point]int
	order []grid.Point
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid     grid.Grid
	opts     Options
	frontier []grid.Point
	res      *Distances
}

// Compute runs a frontier (level-order) BFS over the linked graph of g from
// root. Adjacent cells that are not linked are invisible to the search.
// Returns ErrGridNil, ErrRootNotFound, ErrOptionViolation, or an error from
// the OnVisit hook.
//
// Complexity: O(N) time and memory for N present cells.
func Compute(g grid.Grid, root grid.Point, opts ...Option) (*Distances, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.Get(root) == nil {
		return nil, fmt.Errorf("%w: %v", ErrRootNotFound, root)
	}

	n := g.Size()
	w := &walker{
		grid: g,
		opts: o,
		res: &Distances{
			grid:  g,
			root:  root,
			cells: make(map[grid.Point]int, n),
			order: make([]grid.Point, 0, n),
		},
	}
	w.record(root, 0)
	w.frontier = []grid.Point{root}

	return w.res, w.loop()
}

// FromOrigin computes distances rooted at g.Origin(), the first present cell.
// Returns ErrRootNotFound for an entirely masked grid.
func FromOrigin(g grid.Grid, opts ...Option) (*Distances, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	root, ok := g.Origin()
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrRootNotFound, grid.ErrEmptyGrid)
	}
	return Compute(g, root, opts...)
}

// record assigns distance d to p.
func (w *walker) record(p grid.Point, d int) {
	w.res.cells[p] = d
	w.res.order = append(w.res.order, p)
}

// loop expands one distance level per iteration until the frontier is empty.
func (w *walker) loop() error {
	for depth := 0; len(w.frontier) > 0; depth++ {
		next := make([]grid.Point, 0, len(w.frontier))
		for _, p := range w.frontier {
			if err := w.opts.OnVisit(p, depth); err != nil {
				return fmt.Errorf("distances: OnVisit error at %v: %w", p, err)
			}
			if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
				continue
			}
			cell := w.grid.Get(p)
			if cell == nil {
				continue
			}
			for _, q := range cell.Links() {
				if _, seen := w.res.cells[q]; seen || w.grid.Get(q) == nil {
					continue
				}
				w.record(q, depth+1)
				next = append(next, q)
			}
		}
		w.frontier = next
	}
	return nil
}

// Root returns the cell the distances are measured from.
func (d *Distances) Root() grid.Point { return d.root }

// Distance returns the recorded distance of p, and false if p was not reached.
func (d *Distances) Distance(p grid.Point) (int, bool) {
	v, ok := d.cells[p]
	return v, ok
}

// Len returns the number of reached cells, root included.
func (d *Distances) Len() int { return len(d.cells) }

// Order returns the reached cells in BFS order, root first.
func (d *Distances) Order() []grid.Point {
	out := make([]grid.Point, len(d.order))
	copy(out, d.order)
	return out
}

// PathTo reconstructs a shortest path from Root to goal by walking back from
// goal, at each step taking the first linked neighbor (north, south, east,
// west) whose distance is strictly smaller.
// The result runs from Root to goal and has Distance(goal)+1 points.
// Returns ErrNotReached if goal was never reached.
//
// Complexity: O(L) for a path of L points.
func (d *Distances) PathTo(goal grid.Point) ([]grid.Point, error) {
	cur, ok := d.cells[goal]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, goal)
	}
	path := make([]grid.Point, 0, cur+1)
	path = append(path, goal)
	for p := goal; p != d.root; {
		next, found := d.stepBack(p, cur)
		if !found {
			// only possible when a one-sided link was followed forward
			return nil, fmt.Errorf("%w: no linked predecessor of %v", ErrNotReached, p)
		}
		p, cur = next, d.cells[next]
		path = append(path, p)
	}
	// reverse to get root → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// stepBack returns the first linked neighbor of p closer to the root than dist.
func (d *Distances) stepBack(p grid.Point, dist int) (grid.Point, bool) {
	cell := d.grid.Get(p)
	if cell == nil {
		return grid.Point{}, false
	}
	for _, q := range cell.Links() {
		if qd, ok := d.cells[q]; ok && qd < dist {
			return q, true
		}
	}
	return grid.Point{}, false
}

// Breadcrumbs returns the shortest path to goal as a Distances that only
// covers the path cells, each with its original distance. Renderers use it
// to overlay a solution.
func (d *Distances) Breadcrumbs(goal grid.Point) (*Distances, error) {
	path, err := d.PathTo(goal)
	if err != nil {
		return nil, err
	}
	crumbs := &Distances{
		grid:  d.grid,
		root:  d.root,
		cells: make(map[grid.Point]int, len(path)),
		order: path,
	}
	for _, p := range path {
		crumbs.cells[p] = d.cells[p]
	}
	return crumbs, nil
}

// Max returns the greatest recorded distance and its cell. Ties go to the
// first cell in grid scan order; with nothing beyond the root it returns
// (0, Root()).
//
// Complexity: O(W×H).
func (d *Distances) Max() (int, grid.Point) {
	best, at := 0, d.root
	for _, c := range d.grid.Cells() {
		if c == nil {
			continue
		}
		if v, ok := d.cells[c.Point()]; ok && v > best {
			best, at = v, c.Point()
		}
	}
	return best, at
}

// LongestPath returns a longest shortest path of the maze (its diameter)
// using two searches: from the origin to its farthest cell, then from that
// cell to its own farthest cell. On a perfect maze it is exact.
func LongestPath(g grid.Grid) ([]grid.Point, error) {
	first, err := FromOrigin(g)
	if err != nil {
		return nil, err
	}
	_, start := first.Max()
	second, err := Compute(g, start)
	if err != nil {
		return nil, err
	}
	_, goal := second.Max()
	return second.PathTo(goal)
}
