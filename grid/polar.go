package grid

import "github.com/katalvlaran/maze/mask"

// Polar is the circular topology. Row y is ring y counted outward from the
// center and column x is the angular sector within that ring.
//
// Generation treats a Polar grid exactly like a Rect: north is the inner
// ring, east is the next sector clockwise, and the seam between the last and
// first sector is never crossed. The ring-aware helpers below exist for
// renderers only.
type Polar struct {
	lattice
}

var _ Grid = (*Polar)(nil)

// NewPolar returns a fully open polar grid with the given number of sectors
// per ring and rings.
// Returns ErrBadSize if either dimension is below one.
func NewPolar(sectors, rings int) (*Polar, error) {
	l, err := newLattice(sectors, rings, nil)
	if err != nil {
		return nil, err
	}
	return &Polar{lattice: l}, nil
}

// PolarFromMask builds a polar grid from m: mask columns are sectors and
// mask rows are rings.
// Returns ErrNilMask for a nil mask.
func PolarFromMask(m *mask.Mask) (*Polar, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	l, err := newLattice(m.Width(), m.Height(), m)
	if err != nil {
		return nil, err
	}
	return &Polar{lattice: l}, nil
}

// Rings returns the number of rings.
func (g *Polar) Rings() int { return g.height }

// Sectors returns the number of angular sectors in ring. Every ring of this
// lattice has the same count; out-of-range rings have none.
func (g *Polar) Sectors(ring int) int {
	if ring < 0 || ring >= g.height {
		return 0
	}
	return g.width
}

// Clockwise returns the sector after p in its ring, wrapping at the seam.
func (g *Polar) Clockwise(p Point) Point {
	return Point{mod(p.X+1, g.width), p.Y}
}

// CounterClockwise returns the sector before p in its ring, wrapping at the seam.
func (g *Polar) CounterClockwise(p Point) Point {
	return Point{mod(p.X-1, g.width), p.Y}
}

// Inward returns the sector one ring closer to the center.
func (g *Polar) Inward(p Point) Point { return p.North() }

// Outward returns the sector one ring farther from the center.
func (g *Polar) Outward(p Point) Point { return p.South() }

// mod is the non-negative remainder of a/n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
