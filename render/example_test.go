package render_test

import (
	"fmt"

	"github.com/katalvlaran/maze/distances"
	"github.com/katalvlaran/maze/grid"
	"github.com/katalvlaran/maze/render"
)

// ExampleText prints a hand-carved 3×2 maze with its distances.
func ExampleText() {
	g, _ := grid.NewRect(3, 2)
	g.Link(grid.Pt(0, 0), grid.Pt(1, 0), true)
	g.Link(grid.Pt(1, 0), grid.Pt(2, 0), true)
	g.Link(grid.Pt(2, 0), grid.Pt(2, 1), true)
	g.Link(grid.Pt(2, 1), grid.Pt(1, 1), true)
	g.Link(grid.Pt(1, 1), grid.Pt(0, 1), true)

	d, _ := distances.FromOrigin(g)
	fmt.Print(render.Text(g, d))
	// Output:
	// +---+---+---+
	// | 0   1   2 |
	// +---+---+   +
	// | 5   4   3 |
	// +---+---+---+
}
