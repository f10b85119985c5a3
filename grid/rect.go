package grid

import "github.com/katalvlaran/maze/mask"

// Rect is the rectangular topology: cardinal offsets map directly to
// Cartesian neighbors.
type Rect struct {
	lattice
}

var _ Grid = (*Rect)(nil)

// NewRect returns a fully open width×height rectangular grid.
// Returns ErrBadSize if either dimension is below one.
// Complexity: O(W×H).
func NewRect(width, height int) (*Rect, error) {
	l, err := newLattice(width, height, nil)
	if err != nil {
		return nil, err
	}
	return &Rect{lattice: l}, nil
}

// RectFromMask builds a rectangular grid with the dimensions of m, leaving
// cells absent wherever m is false. The mask is read once; later changes to
// m do not affect the grid.
// Returns ErrNilMask for a nil mask.
func RectFromMask(m *mask.Mask) (*Rect, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	l, err := newLattice(m.Width(), m.Height(), m)
	if err != nil {
		return nil, err
	}
	return &Rect{lattice: l}, nil
}
