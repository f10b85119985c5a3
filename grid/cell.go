package grid

// Neighbor is one slot of a Cell: the adjacent coordinate and whether a
// passage has been carved toward it.
type Neighbor struct {
	Point  Point
	Linked bool
}

// Cell is a lattice node with four neighbor slots indexed by Direction.
// A slot only encodes the potential edge; the neighbor may be absent from
// the grid. Link state is mutated exclusively by the owning grid.
type Cell struct {
	point Point
	slots [4]Neighbor
}

// newCell returns an unlinked cell at p with all four slots populated.
func newCell(p Point) Cell {
	c := Cell{point: p}
	for d := range c.slots {
		c.slots[d] = Neighbor{Point: p.Step(Direction(d))}
	}
	return c
}

// Point returns the coordinate of c.
func (c *Cell) Point() Point { return c.point }

// Neighbor returns the slot for direction d.
func (c *Cell) Neighbor(d Direction) Neighbor { return c.slots[d&3] }

// LinkedTo reports whether a passage leads out of c in direction d.
func (c *Cell) LinkedTo(d Direction) bool { return c.slots[d&3].Linked }

// IsLinked reports whether c has a passage to p.
// A nil receiver is linked to nothing.
func (c *Cell) IsLinked(p Point) bool {
	if c == nil {
		return false
	}
	d, ok := DirectionTo(c.point, p)
	return ok && c.slots[d].Linked
}

// Links returns the linked neighbor coordinates in NeighborOrder.
func (c *Cell) Links() []Point {
	links := make([]Point, 0, 4)
	for _, d := range NeighborOrder {
		if c.slots[d].Linked {
			links = append(links, c.slots[d].Point)
		}
	}
	return links
}

// LinkCount returns the number of linked slots.
func (c *Cell) LinkCount() int {
	n := 0
	for _, s := range c.slots {
		if s.Linked {
			n++
		}
	}
	return n
}

// link marks the slot in direction d.
func (c *Cell) link(d Direction) { c.slots[d].Linked = true }
