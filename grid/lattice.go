package grid

import (
	"fmt"
	"iter"
	"math"
	"math/rand"

	"github.com/katalvlaran/maze/mask"
)

// lattice is the storage and linking logic shared by Rect and Polar.
// arena holds every cell densely; cells[i] points into arena or is nil.
type lattice struct {
	width, height int
	arena         []Cell
	cells         []*Cell
	live          []int // flat indices of present cells, ascending
}

// newLattice allocates a width×height lattice. Cells for which m reports
// false are left nil; a nil m keeps every cell.
// Complexity: O(W×H) time and memory.
func newLattice(width, height int, m *mask.Mask) (lattice, error) {
	if width < 1 || height < 1 || height > math.MaxInt/width {
		return lattice{}, fmt.Errorf("%w: got %dx%d", ErrBadSize, width, height)
	}
	n := width * height
	l := lattice{
		width:  width,
		height: height,
		arena:  make([]Cell, n),
		cells:  make([]*Cell, n),
		live:   make([]int, 0, n),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			l.arena[i] = newCell(Point{x, y})
			if m != nil && !m.Get(x, y) {
				continue
			}
			l.cells[i] = &l.arena[i]
			l.live = append(l.live, i)
		}
	}
	return l, nil
}

// Width returns the number of columns.
func (l *lattice) Width() int { return l.width }

// Height returns the number of rows.
func (l *lattice) Height() int { return l.height }

// Size returns the number of present cells.
func (l *lattice) Size() int { return len(l.live) }

// Cells returns the flat cell array; nil entries are absent cells.
func (l *lattice) Cells() []*Cell { return l.cells }

// InBounds reports whether p lies within the lattice boundaries.
// Complexity: O(1).
func (l *lattice) InBounds(p Point) bool {
	return p.X >= 0 && p.X < l.width && p.Y >= 0 && p.Y < l.height
}

// Index maps p to y*width+x when p is in bounds.
// Complexity: O(1).
func (l *lattice) Index(p Point) (int, bool) {
	if !l.InBounds(p) {
		return 0, false
	}
	return p.Y*l.width + p.X, true
}

// Coordinate converts a flat index back to its point.
// Complexity: O(1).
func (l *lattice) Coordinate(idx int) Point {
	return Point{idx % l.width, idx / l.width}
}

// Get returns the cell at p or nil.
// Complexity: O(1).
func (l *lattice) Get(p Point) *Cell {
	i, ok := l.Index(p)
	if !ok {
		return nil
	}
	return l.cells[i]
}

// Neighbors returns the present cells adjacent to p (north, south, east, west).
// Complexity: O(1).
func (l *lattice) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range NeighborOrder {
		q := p.Step(d)
		if l.Get(q) != nil {
			out = append(out, q)
		}
	}
	return out
}

// Link carves a passage from a to b, and from b to a when bidi is set.
// Both slots are written before Link returns.
func (l *lattice) Link(a, b Point, bidi bool) {
	d, ok := DirectionTo(a, b)
	if !ok {
		panic(fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, a, b))
	}
	ca, cb := l.Get(a), l.Get(b)
	if ca == nil || cb == nil {
		return
	}
	ca.link(d)
	if bidi {
		cb.link(d.Opposite())
	}
}

// RandomCell picks uniformly among present cells.
// Returns ErrEmptyGrid when every cell is masked and ErrNilRand for a nil rng.
// Complexity: O(1).
func (l *lattice) RandomCell(rng *rand.Rand) (*Cell, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if len(l.live) == 0 {
		return nil, ErrEmptyGrid
	}
	return l.cells[l.live[rng.Intn(len(l.live))]], nil
}

// Rows yields each row as a sub-slice of the flat array.
func (l *lattice) Rows() iter.Seq2[int, []*Cell] {
	return func(yield func(int, []*Cell) bool) {
		for y := 0; y < l.height; y++ {
			lo, hi := y*l.width, (y+1)*l.width
			if !yield(y, l.cells[lo:hi:hi]) {
				return
			}
		}
	}
}

// Origin returns the first present cell in row-major order.
func (l *lattice) Origin() (Point, bool) {
	if len(l.live) == 0 {
		return Point{}, false
	}
	return l.Coordinate(l.live[0]), true
}

// LinkCount counts passages once per cell pair, looking only east and south
// so that each pair is visited from exactly one side.
// Complexity: O(W×H).
func (l *lattice) LinkCount() int {
	n := 0
	for _, i := range l.live {
		c := l.cells[i]
		for _, d := range [2]Direction{East, South} {
			if c.LinkedTo(d) {
				n++
				continue
			}
			if nb := l.Get(c.slots[d].Point); nb != nil && nb.LinkedTo(d.Opposite()) {
				n++
			}
		}
	}
	return n
}
