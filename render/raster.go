package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/katalvlaran/maze/distances"
	"github.com/katalvlaran/maze/grid"
)

// Image rasterizes g as a (W·size+1)×(H·size+1) picture. The canvas starts
// in Palette.Background; every cell covered by d is filled with
// Palette.Shade(distance, far); every side without a passage becomes a
// one-pixel wall. Masked positions keep the background and are outlined by
// the walls of their present neighbors. d may be nil.
//
// Complexity: O(W×H×size²).
func Image(g grid.Grid, d *distances.Distances, opts ...Option) *image.RGBA {
	o := resolve(opts)
	s := o.CellSize
	w, h := g.Width()*s+1, g.Height()*s+1
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(o.Palette.Background)), image.Point{}, draw.Src)

	if d != nil {
		far, _ := d.Max()
		for _, c := range g.Cells() {
			if c == nil {
				continue
			}
			v, ok := d.Distance(c.Point())
			if !ok {
				continue
			}
			x, y := c.Point().X*s, c.Point().Y*s
			fill := image.NewUniform(rgba(o.Palette.Shade(v, far)))
			draw.Draw(img, image.Rect(x, y, x+s+1, y+s+1), fill, image.Point{}, draw.Src)
		}
	}

	z := vector.NewRasterizer(w, h)
	for _, c := range g.Cells() {
		if c == nil {
			continue
		}
		x1, y1 := c.Point().X*s, c.Point().Y*s
		x2, y2 := x1+s, y1+s
		if !c.LinkedTo(grid.North) {
			box(z, x1, y1, x2+1, y1+1)
		}
		if !c.LinkedTo(grid.West) {
			box(z, x1, y1, x1+1, y2+1)
		}
		if !c.LinkedTo(grid.East) {
			box(z, x2, y1, x2+1, y2+1)
		}
		if !c.LinkedTo(grid.South) {
			box(z, x1, y2, x2+1, y2+1)
		}
	}
	z.Draw(img, img.Bounds(), image.NewUniform(rgba(o.Palette.Wall)), image.Point{})

	if len(o.Path) > 1 {
		z.Reset(w, h)
		width := float32(max(1, s/4))
		center := func(p grid.Point) (float32, float32) {
			return float32(p.X*s+s/2) + 0.5, float32(p.Y*s+s/2) + 0.5
		}
		for i := 0; i+1 < len(o.Path); i++ {
			x0, y0 := center(o.Path[i])
			x1, y1 := center(o.Path[i+1])
			stroke(z, x0, y0, x1, y1, width)
		}
		z.Draw(img, img.Bounds(), image.NewUniform(rgba(o.Palette.Path)), image.Point{})
	}
	return img
}

// box adds the axis-aligned rectangle [x0,x1)×[y0,y1), always clockwise.
func box(z *vector.Rasterizer, x0, y0, x1, y1 int) {
	z.MoveTo(float32(x0), float32(y0))
	z.LineTo(float32(x1), float32(y0))
	z.LineTo(float32(x1), float32(y1))
	z.LineTo(float32(x0), float32(y1))
	z.ClosePath()
}

// stroke adds the segment (x0,y0)-(x1,y1) as a quad of the given width.
// Quads keep the same orientation whatever the segment direction, so
// overlapping strokes never cancel.
func stroke(z *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %q: %w", path, err)
	}
	if err = WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %q: %w", path, err)
	}
	return f.Close()
}
