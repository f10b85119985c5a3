package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/maze/grid"
)

// ErrBadPalette is returned by ParsePalette for malformed input.
var ErrBadPalette = errors.New("render: invalid palette")

// Options configures the raster and terminal renderers.
type Options struct {
	// CellSize is the edge of one cell in pixels (raster) or the ring
	// thickness (polar).
	CellSize int

	// Palette colors background, walls and the distance gradient.
	Palette Palette

	// Path, if set, is drawn over the maze in Palette.Path.
	Path []grid.Point
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns 16-pixel cells, DefaultPalette and no path.
func DefaultOptions() Options {
	return Options{
		CellSize: 16,
		Palette:  DefaultPalette(),
	}
}

// WithCellSize sets the pixel size of a cell.
// Panics if n < 2.
func WithCellSize(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("render: WithCellSize(%d): need at least 2 pixels", n))
	}
	return func(o *Options) {
		o.CellSize = n
	}
}

// WithPalette replaces the default colors.
func WithPalette(p Palette) Option {
	return func(o *Options) {
		o.Palette = p
	}
}

// WithPath overlays a route, typically from distances.PathTo.
func WithPath(path []grid.Point) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
