package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maze/algorithms"
	"github.com/katalvlaran/maze/distances"
	"github.com/katalvlaran/maze/grid"
	"github.com/katalvlaran/maze/mask"
	"github.com/katalvlaran/maze/render"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0, 0, 0, 0xff}
	green = color.RGBA{0, 128, 0, 0xff}
	red   = color.RGBA{0xff, 0, 0, 0xff}
)

// pair is a 2×1 grid with its two cells linked, plus distances from (0,0).
func pair(t *testing.T) (*grid.Rect, *distances.Distances) {
	t.Helper()
	g, err := grid.NewRect(2, 1)
	require.NoError(t, err)
	g.Link(grid.Pt(0, 0), grid.Pt(1, 0), true)
	d, err := distances.FromOrigin(g)
	require.NoError(t, err)
	return g, d
}

// TestText_Exact pins the ASCII layout.
func TestText_Exact(t *testing.T) {
	g, err := grid.NewRect(3, 2)
	require.NoError(t, err)
	g.Link(grid.Pt(0, 0), grid.Pt(1, 0), true)
	g.Link(grid.Pt(1, 0), grid.Pt(1, 1), true)
	g.Link(grid.Pt(1, 1), grid.Pt(2, 1), true)
	g.Link(grid.Pt(2, 1), grid.Pt(2, 0), true)
	g.Link(grid.Pt(0, 0), grid.Pt(0, 1), true)

	want := "" +
		"+---+---+---+\n" +
		"|       |   |\n" +
		"+   +   +   +\n" +
		"|   |       |\n" +
		"+---+---+---+\n"
	assert.Equal(t, want, render.Text(g, nil))

	d, err := distances.FromOrigin(g)
	require.NoError(t, err)
	withDist := "" +
		"+---+---+---+\n" +
		"| 0   1 | 4 |\n" +
		"+   +   +   +\n" +
		"| 1 | 2   3 |\n" +
		"+---+---+---+\n"
	assert.Equal(t, withDist, render.Text(g, d))

	var buf bytes.Buffer
	require.NoError(t, render.WriteText(&buf, g, d))
	assert.Equal(t, withDist, buf.String())
}

// TestText_MaskAndBase36 blanks masked cells and wraps digits at 36.
func TestText_MaskAndBase36(t *testing.T) {
	m, err := mask.ParseText(strings.NewReader("2 1\n.x\n"))
	require.NoError(t, err)
	g, err := grid.RectFromMask(m)
	require.NoError(t, err)
	assert.Equal(t, "+---+---+\n|   |   |\n+---+---+\n", render.Text(g, nil))

	line, err := grid.NewRect(40, 1)
	require.NoError(t, err)
	for x := 0; x+1 < 40; x++ {
		line.Link(grid.Pt(x, 0), grid.Pt(x+1, 0), true)
	}
	d, err := distances.FromOrigin(line)
	require.NoError(t, err)
	body := strings.Split(render.Text(line, d), "\n")[1]
	assert.Equal(t, byte('a'), body[4*10+2], "distance 10")
	assert.Equal(t, byte('z'), body[4*35+2], "distance 35")
	assert.Equal(t, byte('0'), body[4*36+2], "distance 36 wraps")
}

// TestImage_Pixels checks canvas size, walls, gradient and path overlay.
func TestImage_Pixels(t *testing.T) {
	g, d := pair(t)

	img := render.Image(g, nil, render.WithCellSize(4))
	require.Equal(t, 9, img.Bounds().Dx())
	require.Equal(t, 5, img.Bounds().Dy())
	assert.Equal(t, white, img.RGBAAt(0, 0), "corner")
	assert.Equal(t, white, img.RGBAAt(2, 0), "north wall")
	assert.Equal(t, white, img.RGBAAt(8, 2), "east wall")
	assert.Equal(t, black, img.RGBAAt(2, 2), "unshaded interior")
	assert.Equal(t, black, img.RGBAAt(4, 2), "open passage")

	img = render.Image(g, d, render.WithCellSize(4))
	assert.Equal(t, white, img.RGBAAt(2, 2), "root is Near")
	assert.Equal(t, green, img.RGBAAt(6, 2), "farthest is Far")

	path, err := d.PathTo(grid.Pt(1, 0))
	require.NoError(t, err)
	img = render.Image(g, d, render.WithCellSize(4), render.WithPath(path))
	assert.Equal(t, red, img.RGBAAt(4, 2))

	def := render.Image(g, nil)
	assert.Equal(t, 2*16+1, def.Bounds().Dx())
	assert.Equal(t, 16+1, def.Bounds().Dy())
}

// TestImage_Masked keeps removed cells as background.
func TestImage_Masked(t *testing.T) {
	m, err := mask.ParseText(strings.NewReader("3 1\n.x.\n"))
	require.NoError(t, err)
	g, err := grid.RectFromMask(m)
	require.NoError(t, err)
	d, err := distances.FromOrigin(g)
	require.NoError(t, err)

	img := render.Image(g, d, render.WithCellSize(4))
	assert.Equal(t, black, img.RGBAAt(6, 2), "masked cell")
	assert.Equal(t, white, img.RGBAAt(4, 2), "wall toward masked cell")
	assert.Equal(t, black, img.RGBAAt(10, 2), "unreached island")
}

// TestPolarImage_Size follows 2·size·rings+1 and draws the outer circle.
func TestPolarImage_Size(t *testing.T) {
	g, err := grid.NewPolar(8, 3)
	require.NoError(t, err)
	require.NoError(t, algorithms.RecursiveBacktrackerOn(g))

	img := render.PolarImage(g, nil, render.WithCellSize(10))
	require.Equal(t, 61, img.Bounds().Dx())
	require.Equal(t, 61, img.Bounds().Dy())
	edge := img.RGBAAt(60, 30)
	assert.Greater(t, edge.G, uint8(0x80), "outer circle at east")

	d, err := distances.FromOrigin(g)
	require.NoError(t, err)
	shaded := render.PolarImage(g, d, render.WithCellSize(10))
	assert.Greater(t, lit(shaded), lit(img))
}

// TestPolarImage_MaskedNeighbors closes walls toward removed sectors: the
// seam radial of ring 1 and the outer arc of ring 1, sector 0.
func TestPolarImage_MaskedNeighbors(t *testing.T) {
	m, err := mask.ParseText(strings.NewReader("8 3\n........\n.......x\nx.......\n"))
	require.NoError(t, err)
	g, err := grid.PolarFromMask(m)
	require.NoError(t, err)

	img := render.PolarImage(g, nil, render.WithCellSize(10))
	// center is 30.5; ring 1 spans radii 10..20
	assert.Equal(t, white, img.RGBAAt(45, 30), "radial at angle 0 next to the removed last sector")
	px := int(30.5 + 20*math.Cos(math.Pi/8))
	py := int(30.5 + 20*math.Sin(math.Pi/8))
	assert.NotEqual(t, black, img.RGBAAt(px, py), "arc toward the removed outer sector")
}

func lit(img interface{ RGBAAt(x, y int) color.RGBA }) int {
	n := 0
	for y := 0; y < 61; y++ {
		for x := 0; x < 61; x++ {
			if img.RGBAAt(x, y) != black {
				n++
			}
		}
	}
	return n
}

// TestPalette parses hex lists and shades between the ends.
func TestPalette(t *testing.T) {
	p, err := render.ParsePalette("#101010,ffffff,,#0000ff")
	require.NoError(t, err)
	r, g, b := p.Background.RGB255()
	assert.Equal(t, [3]uint8{0x10, 0x10, 0x10}, [3]uint8{r, g, b})
	assert.Equal(t, render.DefaultPalette().Near, p.Near)
	r, g, b = p.Far.RGB255()
	assert.Equal(t, [3]uint8{0, 0, 0xff}, [3]uint8{r, g, b})

	_, err = render.ParsePalette("#000000,#ffffff")
	assert.ErrorIs(t, err, render.ErrBadPalette)
	_, err = render.ParsePalette("#000000,#ffffff,#zzzzzz,#000000")
	assert.ErrorIs(t, err, render.ErrBadPalette)

	def := render.DefaultPalette()
	assert.Equal(t, def.Near, def.Shade(0, 0))
	assert.True(t, def.Shade(10, 10).AlmostEqualRgb(def.Far))
	mid := def.Shade(1, 2)
	assert.True(t, mid.AlmostEqualRgb(colorful.Color{R: 0.5, G: (1 + 128.0/255) / 2, B: 0.5}))

	assert.Panics(t, func() { render.WithCellSize(1) })
}

// TestSavePNG round-trips through the PNG encoder.
func TestSavePNG(t *testing.T) {
	g, d := pair(t)
	path := filepath.Join(t.TempDir(), "maze.png")
	require.NoError(t, render.SavePNG(path, render.Image(g, d, render.WithCellSize(4))))

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, render.Image(g, d, render.WithCellSize(4))))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 9, img.Bounds().Dx())

	assert.Error(t, render.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img))
}

// TestDraw_Simulation renders onto a tcell simulation screen.
func TestDraw_Simulation(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(20, 10)

	g, d := pair(t)
	path, _ := d.PathTo(grid.Pt(1, 0))
	render.Draw(s, g, d, render.WithPath(path))

	at := func(x, y int) (rune, tcell.Style) {
		r, _, st, _ := s.GetContent(x, y)
		return r, st
	}
	r, _ := at(0, 0)
	assert.Equal(t, tcell.RuneULCorner, r)
	r, _ = at(1, 0)
	assert.Equal(t, tcell.RuneHLine, r)
	r, _ = at(4, 0)
	assert.Equal(t, tcell.RuneHLine, r, "no wall below, plain line")
	r, _ = at(8, 2)
	assert.Equal(t, tcell.RuneLRCorner, r)
	r, st := at(2, 1)
	assert.Equal(t, '0', r)
	_, bg, _ := st.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0xff, 0, 0), bg, "path background")
	r, st = at(6, 1)
	assert.Equal(t, '1', r)
	fg, _, _ := st.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 128, 0), fg, "far foreground")
	r, _ = at(4, 1)
	assert.Equal(t, ' ', r, "open passage")
}

// TestView_Quit returns on q.
func TestView_Quit(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(20, 10)

	g, d := pair(t)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	render.View(s, g, d)

	r, _, _, _ := s.GetContent(2, 1)
	assert.Equal(t, '0', r)
}
