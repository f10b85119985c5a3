package algorithms

import "github.com/katalvlaran/maze/grid"

// BinaryTreeOn visits cells in scan order and links each to its north or
// east neighbor, chosen uniformly among those present. The north-east corner
// of each component has neither and stays a leaf.
//
// On a fully open grid this yields a spanning tree biased toward long
// corridors along the north row and east column. A mask can leave several
// trees in one lattice component; with bridging on (the default) they are
// then joined by one passage each.
//
// An empty grid succeeds with no passages.
// Complexity: O(W×H).
func BinaryTreeOn(g grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	o := resolve(opts)

	var choices [2]grid.Point
	for _, row := range g.Rows() {
		for _, c := range row {
			if c == nil {
				continue
			}
			p := c.Point()
			n := 0
			if g.Get(p.North()) != nil {
				choices[n] = p.North()
				n++
			}
			if g.Get(p.East()) != nil {
				choices[n] = p.East()
				n++
			}
			if n == 0 {
				continue
			}
			g.Link(p, choices[o.Rand.Intn(n)], true)
		}
	}

	if o.Bridging {
		bridge(g)
	}
	return nil
}
