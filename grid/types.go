// Package grid defines the maze lattice: points, cells, the Grid contract
// and its rectangular and polar topologies.
package grid

import (
	"errors"
	"iter"
	"math/rand"
)

// Sentinel errors for grid operations.
var (
	// ErrBadSize indicates a width or height below one, or a cell count
	// that overflows int.
	ErrBadSize = errors.New("grid: width and height must be positive")
	// ErrNilMask indicates a nil mask was passed to a FromMask constructor.
	ErrNilMask = errors.New("grid: mask is nil")
	// ErrEmptyGrid indicates every cell is masked out, so no cell can be selected.
	ErrEmptyGrid = errors.New("grid: grid has no unmasked cells")
	// ErrNilRand indicates a nil random source was supplied.
	ErrNilRand = errors.New("grid: random source is nil")
	// ErrNotAdjacent is the panic value of Link when the two points are not
	// exactly one cardinal step apart. It is a contract violation, never a
	// recoverable condition.
	ErrNotAdjacent = errors.New("grid: points are not lattice-adjacent")
)

// Grid is the topology contract every generator and renderer works against.
// Cells live in a flat row-major array (index = y*Width()+x); absent cells
// (masked or out of bounds) are nil and take no part in any operation.
type Grid interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// Size returns the number of present (unmasked) cells.
	Size() int
	// Cells returns the flat cell array. Callers must not modify it.
	Cells() []*Cell
	// Index maps an in-bounds point to its flat index.
	Index(p Point) (int, bool)
	// Get returns the cell at p, or nil when p is out of bounds or masked.
	Get(p Point) *Cell
	// Neighbors returns the present cells adjacent to p in NeighborOrder.
	Neighbors(p Point) []Point
	// Link carves a passage between adjacent points a and b. With bidi both
	// endpoints are updated. It panics with ErrNotAdjacent for non-adjacent
	// points and is a no-op if either endpoint is absent.
	Link(a, b Point, bidi bool)
	// RandomCell selects a present cell uniformly at random.
	RandomCell(rng *rand.Rand) (*Cell, error)
	// Rows yields (y, row) pairs lazily; every call restarts at row 0.
	Rows() iter.Seq2[int, []*Cell]
	// Origin returns the first present cell in scan order.
	Origin() (Point, bool)
	// LinkCount returns the number of carved passages.
	LinkCount() int
}
