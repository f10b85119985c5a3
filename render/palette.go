package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colors shared by every renderer.
type Palette struct {
	Background colorful.Color // canvas and unreached cells
	Wall       colorful.Color
	Near       colorful.Color // distance 0
	Far        colorful.Color // the maximum distance
	Path       colorful.Color // solution overlay
}

// DefaultPalette returns black background, white walls and a gradient from
// white at the root to dark green at the farthest cell.
func DefaultPalette() Palette {
	return Palette{
		Background: colorful.Color{R: 0, G: 0, B: 0},
		Wall:       colorful.Color{R: 1, G: 1, B: 1},
		Near:       colorful.Color{R: 1, G: 1, B: 1},
		Far:        colorful.Color{R: 0, G: 128.0 / 255.0, B: 0},
		Path:       colorful.Color{R: 1, G: 0, B: 0},
	}
}

// ParsePalette reads a comma-separated list of hex colors in the order
// background, wall, near, far and optionally path, e.g.
// "#000000,#ffffff,#ffffff,#008000". Empty entries keep the default.
func ParsePalette(s string) (Palette, error) {
	p := DefaultPalette()
	fields := strings.Split(s, ",")
	if len(fields) < 4 || len(fields) > 5 {
		return p, fmt.Errorf("%w: want 4 or 5 colors, got %d", ErrBadPalette, len(fields))
	}
	slots := []*colorful.Color{&p.Background, &p.Wall, &p.Near, &p.Far, &p.Path}
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if !strings.HasPrefix(f, "#") {
			f = "#" + f
		}
		c, err := colorful.Hex(f)
		if err != nil {
			return p, fmt.Errorf("%w: entry %d: %w", ErrBadPalette, i+1, err)
		}
		*slots[i] = c
	}
	return p, nil
}

// Shade blends Near toward Far by dist/maxDist. A zero maxDist yields Near.
func (p Palette) Shade(dist, maxDist int) colorful.Color {
	if maxDist <= 0 {
		return p.Near
	}
	t := float64(dist) / float64(maxDist)
	if t > 1 {
		t = 1
	}
	return p.Near.BlendRgb(p.Far, t).Clamped()
}

// rgba converts to an opaque 8-bit color.
func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// termColor converts to a true-color tcell color.
func termColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
