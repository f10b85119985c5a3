package grid

// Components finds the lattice-connected regions of present cells, using
// adjacency only (links are ignored).
// Returns one slice of flat indices per region; regions appear in the
// row-major order of their first cell and each region lists its cells in
// BFS discovery order.
//
// A mask can split the lattice into islands; generators use this to grow
// one spanning tree per island instead of walking forever.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func Components(g Grid) [][]int {
	w := g.Width()
	cells := g.Cells()
	seen := make([]bool, len(cells))
	var comps [][]int

	for i0, c := range cells {
		if c == nil || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			p := Point{u % w, u / w}
			for _, q := range g.Neighbors(p) {
				vi := q.Y*w + q.X
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
