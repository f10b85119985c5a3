package mask

import (
	"fmt"
	"math"
)

// Mask is a width×height occupancy map in row-major order.
// A true entry keeps the cell at (x, y); false removes it.
type Mask struct {
	width, height int
	cells         []bool
}

// New returns a width×height mask with every cell present.
// Returns ErrBadSize if either dimension is below one or width×height
// does not fit in an int.
// Complexity: O(W×H).
func New(width, height int) (*Mask, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	cells := make([]bool, width*height)
	for i := range cells {
		cells[i] = true
	}

	return &Mask{width: width, height: height, cells: cells}, nil
}

// checkSize rejects dimensions whose cell count cannot be allocated.
func checkSize(width, height int) error {
	if width < 1 || height < 1 || height > math.MaxInt/width {
		return fmt.Errorf("%w: got %dx%d", ErrBadSize, width, height)
	}
	return nil
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// InBounds reports whether (x, y) lies inside the mask.
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Set marks (x, y) as present (true) or removed (false).
// Out-of-bounds coordinates are ignored.
func (m *Mask) Set(x, y int, present bool) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[y*m.width+x] = present
}

// Get reports whether (x, y) is present. Out-of-bounds coordinates are absent.
func (m *Mask) Get(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.cells[y*m.width+x]
}

// Count returns the number of present cells.
// Complexity: O(W×H).
func (m *Mask) Count() int {
	n := 0
	for _, ok := range m.cells {
		if ok {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of m.
func (m *Mask) Clone() *Mask {
	cells := make([]bool, len(m.cells))
	copy(cells, m.cells)
	return &Mask{width: m.width, height: m.height, cells: cells}
}

// String renders m in the text mask format accepted by ParseText.
func (m *Mask) String() string {
	buf := make([]byte, 0, (m.width+1)*(m.height+1)+8)
	buf = fmt.Appendf(buf, "%d %d\n", m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y*m.width+x] {
				buf = append(buf, cellPresent)
			} else {
				buf = append(buf, cellRemoved)
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
