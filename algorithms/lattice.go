package algorithms

import "github.com/katalvlaran/maze/grid"

// edge is an adjacent pair of present cells by flat index, a before b in
// scan order.
type edge struct {
	a, b int
}

// latticeEdges lists every adjacent pair of present cells once: for each
// cell in scan order, its east pair then its south pair.
//
// Complexity: O(W×H).
func latticeEdges(g grid.Grid) []edge {
	cells := g.Cells()
	out := make([]edge, 0, 2*g.Size())
	for i, c := range cells {
		if c == nil {
			continue
		}
		p := c.Point()
		for _, q := range [2]grid.Point{p.East(), p.South()} {
			if j, ok := g.Index(q); ok && cells[j] != nil {
				out = append(out, edge{i, j})
			}
		}
	}
	return out
}

// linked reports whether either side of e carries a passage.
func linked(cells []*grid.Cell, e edge) bool {
	a, b := cells[e.a], cells[e.b]
	return a.IsLinked(b.Point()) || b.IsLinked(a.Point())
}

// islands indexes the lattice components of a grid.
type islands struct {
	comps [][]int // flat indices per component, row-major by first cell
	of    []int   // flat index → component number; undefined for absent cells
}

func newIslands(g grid.Grid) islands {
	comps := grid.Components(g)
	of := make([]int, len(g.Cells()))
	for k, comp := range comps {
		for _, i := range comp {
			of[i] = k
		}
	}
	return islands{comps: comps, of: of}
}

// bridge links lattice-adjacent trees of the current passage forest, scanning
// edges in order, until every lattice component is a single tree. It returns
// the number of passages added; a grid that is already connected gets none.
//
// Complexity: O(W×H·α(W×H)).
func bridge(g grid.Grid) int {
	cells := g.Cells()
	edges := latticeEdges(g)
	forest := newDSU(len(cells))
	for _, e := range edges {
		if linked(cells, e) {
			forest.union(e.a, e.b)
		}
	}
	added := 0
	for _, e := range edges {
		if forest.union(e.a, e.b) {
			g.Link(cells[e.a].Point(), cells[e.b].Point(), true)
			added++
		}
	}
	return added
}
