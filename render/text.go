package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/maze/distances"
	"github.com/katalvlaran/maze/grid"
)

// Text returns the ASCII drawing of g, one "+---+" box per cell:
//
//	+---+---+
//	| 0   1 |
//	+---+---+
//
// A cell covered by d shows the last base-36 digit of its distance
// (distance mod 36); other cells and masked positions are blank. East and
// south walls are open when the passage is linked. d may be nil.
func Text(g grid.Grid, d *distances.Distances) string {
	return strings.Join(layout(g, d), "\n") + "\n"
}

// WriteText writes Text(g, d) to w.
func WriteText(w io.Writer, g grid.Grid, d *distances.Distances) error {
	bw := bufio.NewWriter(w)
	for _, line := range layout(g, d) {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// layout builds the 2·H+1 lines of the drawing, each 4·W+1 bytes wide.
// Row y of the grid owns lines 2y+1 (bodies) and 2y+2 (south walls).
func layout(g grid.Grid, d *distances.Distances) []string {
	w := g.Width()
	lines := make([]string, 0, 2*g.Height()+1)
	lines = append(lines, "+"+strings.Repeat("---+", w))

	var top, bottom strings.Builder
	for _, row := range g.Rows() {
		top.Reset()
		bottom.Reset()
		top.WriteByte('|')
		bottom.WriteByte('+')
		for _, c := range row {
			top.WriteByte(' ')
			top.WriteByte(glyph(c, d))
			top.WriteByte(' ')
			if c != nil && c.LinkedTo(grid.East) {
				top.WriteByte(' ')
			} else {
				top.WriteByte('|')
			}
			if c != nil && c.LinkedTo(grid.South) {
				bottom.WriteString("   +")
			} else {
				bottom.WriteString("---+")
			}
		}
		lines = append(lines, top.String(), bottom.String())
	}
	return lines
}

// glyph is the body character of c.
func glyph(c *grid.Cell, d *distances.Distances) byte {
	if c == nil || d == nil {
		return ' '
	}
	v, ok := d.Distance(c.Point())
	if !ok {
		return ' '
	}
	return strconv.FormatInt(int64(v%36), 36)[0]
}
