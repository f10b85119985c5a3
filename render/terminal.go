package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/maze/distances"
	"github.com/katalvlaran/maze/grid"
)

// Draw paints the Text layout of g into screen from the top-left corner,
// replacing ASCII walls with box-drawing runes. Cell bodies take the
// gradient color of their distance as foreground, and cells on
// Options.Path get Palette.Path as background. The caller shows the screen.
func Draw(screen tcell.Screen, g grid.Grid, d *distances.Distances, opts ...Option) {
	o := resolve(opts)
	base := tcell.StyleDefault.Background(termColor(o.Palette.Background))
	wall := base.Foreground(termColor(o.Palette.Wall))
	path := base.Background(termColor(o.Palette.Path))

	onPath := make(map[grid.Point]bool, len(o.Path))
	for _, p := range o.Path {
		onPath[p] = true
	}
	far := 0
	if d != nil {
		far, _ = d.Max()
	}

	lines := layout(g, d)
	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			if row%2 == 1 && col%4 != 0 {
				p := grid.Pt(col/4, row/2)
				st := base
				if onPath[p] {
					st = path
				}
				if d != nil {
					if v, ok := d.Distance(p); ok {
						st = st.Foreground(termColor(o.Palette.Shade(v, far)))
					}
				}
				screen.SetContent(col, row, rune(line[col]), nil, st)
				continue
			}
			screen.SetContent(col, row, boxRune(lines, row, col), nil, wall)
		}
	}
}

// boxRune maps a wall byte of the layout to its box-drawing rune, choosing
// junctions from the walls around a '+'.
func boxRune(lines []string, row, col int) rune {
	switch lines[row][col] {
	case '-':
		return tcell.RuneHLine
	case '|':
		return tcell.RuneVLine
	case '+':
	default:
		return ' '
	}
	up := row > 0 && lines[row-1][col] == '|'
	down := row+1 < len(lines) && lines[row+1][col] == '|'
	left := col > 0 && lines[row][col-1] == '-'
	right := col+1 < len(lines[row]) && lines[row][col+1] == '-'

	switch {
	case up && down && left && right:
		return tcell.RunePlus
	case up && down && right:
		return tcell.RuneLTee
	case up && down && left:
		return tcell.RuneRTee
	case left && right && down:
		return tcell.RuneTTee
	case left && right && up:
		return tcell.RuneBTee
	case down && right:
		return tcell.RuneULCorner
	case down && left:
		return tcell.RuneURCorner
	case up && right:
		return tcell.RuneLLCorner
	case up && left:
		return tcell.RuneLRCorner
	case up || down:
		return tcell.RuneVLine
	case left || right:
		return tcell.RuneHLine
	}
	return ' '
}

// View draws the maze and blocks until the user presses q, Esc or Ctrl-C,
// redrawing after every resize. The caller owns Init and Fini of screen.
func View(screen tcell.Screen, g grid.Grid, d *distances.Distances, opts ...Option) {
	redraw := func() {
		screen.Clear()
		Draw(screen, g, d, opts...)
		screen.Show()
	}
	redraw()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
		}
	}
}
