package algorithms

import "github.com/katalvlaran/maze/grid"

// SidewinderOn processes each row west to east, growing a run of cells
// linked eastward. A run closes at the eastern boundary (no east cell), or
// with probability ½ when the current cell has a north neighbor; closing
// links one uniformly chosen run member, among those with a north neighbor,
// northward, then starts a new run.
//
// Cells without a north neighbor never close a run by chance, so the
// northern boundary becomes one corridor per row segment. As with
// BinaryTreeOn, bridging stitches trees a mask left apart.
//
// An empty grid succeeds with no passages.
// Complexity: O(W×H).
func SidewinderOn(g grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	o := resolve(opts)

	run := make([]grid.Point, 0, g.Width())
	up := make([]grid.Point, 0, g.Width())
	for _, row := range g.Rows() {
		run = run[:0]
		for _, c := range row {
			if c == nil {
				continue
			}
			p := c.Point()
			run = append(run, p)

			atEast := g.Get(p.East()) == nil
			atNorth := g.Get(p.North()) == nil
			if !atEast && (atNorth || o.Rand.Intn(2) == 1) {
				g.Link(p, p.East(), true)
				continue
			}

			// close the run
			up = up[:0]
			for _, q := range run {
				if g.Get(q.North()) != nil {
					up = append(up, q)
				}
			}
			if len(up) > 0 {
				q := sample(up, o.Rand)
				g.Link(q, q.North(), true)
			}
			run = run[:0]
		}
	}

	if o.Bridging {
		bridge(g)
	}
	return nil
}
