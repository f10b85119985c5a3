package grid

import "fmt"

// Point is an integer lattice coordinate. Y grows southward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// North returns the point one row up.
func (p Point) North() Point { return Point{p.X, p.Y - 1} }

// South returns the point one row down.
func (p Point) South() Point { return Point{p.X, p.Y + 1} }

// East returns the point one column right.
func (p Point) East() Point { return Point{p.X + 1, p.Y} }

// West returns the point one column left.
func (p Point) West() Point { return Point{p.X - 1, p.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Step translates p one unit in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Offset()) }

// String formats p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction names one of the four cardinal neighbor slots of a cell.
type Direction int

const (
	// North is y-1.
	North Direction = iota
	// East is x+1.
	East
	// South is y+1.
	South
	// West is x-1.
	West
)

// directionOffsets is indexed by Direction.
var directionOffsets = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// NeighborOrder is the fixed order in which neighbors and links are reported:
// north, south, east, west. Path reconstruction breaks ties in this order.
var NeighborOrder = [4]Direction{North, South, East, West}

// Offset returns the unit translation for d.
func (d Direction) Offset() Point { return directionOffsets[d&3] }

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionTo reports the direction that leads from a to b, and false when
// the two points are not exactly one cardinal step apart.
func DirectionTo(a, b Point) (Direction, bool) {
	delta := b.Sub(a)
	for d, off := range directionOffsets {
		if delta == off {
			return Direction(d), true
		}
	}
	return 0, false
}
