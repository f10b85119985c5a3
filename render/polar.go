package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/katalvlaran/maze/distances"
	"github.com/katalvlaran/maze/grid"
)

// PolarImage draws g as concentric rings on a square canvas of side
// 2·size·rings+1. Ring y spans radii [y·size, (y+1)·size) and sector x of a
// ring with n sectors spans angles [x, x+1)·2π/n, clockwise from the east.
//
// Each cell draws its inner arc unless linked north and its clockwise
// radial wall unless linked east; the whole maze is enclosed by the outer
// circle. Cells next to masked positions also close their outer and
// counter-clockwise sides. Cells covered by d are shaded as in Image.
//
// Complexity: O(rings²×size²) for the fill plus O(W×H) wall segments.
func PolarImage(g *grid.Polar, d *distances.Distances, opts ...Option) *image.RGBA {
	o := resolve(opts)
	s := o.CellSize
	rings := g.Rings()
	side := 2*s*rings + 1
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(o.Palette.Background)), image.Point{}, draw.Src)

	// pixel-centered origin
	c := float64(s*rings) + 0.5
	theta := func(ring int) float64 { return 2 * math.Pi / float64(g.Sectors(ring)) }

	if d != nil {
		far, _ := d.Max()
		for py := 0; py < side; py++ {
			for px := 0; px < side; px++ {
				fx, fy := float64(px)+0.5-c, float64(py)+0.5-c
				ring := int(math.Hypot(fx, fy) / float64(s))
				if ring >= rings {
					continue
				}
				a := math.Atan2(fy, fx)
				if a < 0 {
					a += 2 * math.Pi
				}
				sector := min(int(a/theta(ring)), g.Sectors(ring)-1)
				v, ok := d.Distance(grid.Pt(sector, ring))
				if !ok {
					continue
				}
				img.SetRGBA(px, py, rgba(o.Palette.Shade(v, far)))
			}
		}
	}

	z := vector.NewRasterizer(side, side)
	for _, cell := range g.Cells() {
		if cell == nil {
			continue
		}
		p := cell.Point()
		t := theta(p.Y)
		a0, a1 := float64(p.X)*t, float64(p.X+1)*t
		rin, rout := float64(p.Y*s), float64((p.Y+1)*s)

		if !cell.LinkedTo(grid.North) && rin > 0 {
			arc(z, c, rin, a0, a1)
		}
		if !cell.LinkedTo(grid.East) {
			radial(z, c, a1, rin, rout)
		}
		if g.Get(g.Outward(p)) == nil && p.Y+1 < rings {
			arc(z, c, rout, a0, a1)
		}
		if g.Get(g.CounterClockwise(p)) == nil {
			radial(z, c, a0, rin, rout)
		}
	}
	arc(z, c, float64(rings*s), 0, 2*math.Pi)
	z.Draw(img, img.Bounds(), image.NewUniform(rgba(o.Palette.Wall)), image.Point{})

	if len(o.Path) > 1 {
		z.Reset(side, side)
		width := float32(max(1, s/4))
		center := func(p grid.Point) (float32, float32) {
			r := (float64(p.Y) + 0.5) * float64(s)
			if p.Y == 0 {
				r = 0.6 * float64(s)
			}
			a := (float64(p.X) + 0.5) * theta(p.Y)
			return float32(c + r*math.Cos(a)), float32(c + r*math.Sin(a))
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

// arc approximates the circle of radius r around (c,c) between angles a0 and
// a1 with chords no longer than about four pixels.
func arc(z *vector.Rasterizer, c, r, a0, a1 float64) {
	n := int(math.Ceil(r*(a1-a0)/4)) + 1
	step := (a1 - a0) / float64(n)
	x0, y0 := c+r*math.Cos(a0), c+r*math.Sin(a0)
	for i := 1; i <= n; i++ {
		a := a0 + float64(i)*step
		x1, y1 := c+r*math.Cos(a), c+r*math.Sin(a)
		stroke(z, float32(x0), float32(y0), float32(x1), float32(y1), 1)
		x0, y0 = x1, y1
	}
}

// radial adds the wall along angle a from radius r0 to r1.
func radial(z *vector.Rasterizer, c, a, r0, r1 float64) {
	cos, sin := math.Cos(a), math.Sin(a)
	stroke(z, float32(c+r0*cos), float32(c+r0*sin), float32(c+r1*cos), float32(c+r1*sin), 1)
}
