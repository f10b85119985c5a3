package distances

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/maze/grid"
)

// Sentinel errors for distance computation.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("distances: grid is nil")

	// ErrRootNotFound is returned when the root is out of bounds, masked, or
	// the grid has no cells at all.
	ErrRootNotFound = errors.New("distances: root cell not found")

	// ErrNotReached is returned when a path is requested to a cell the BFS
	// never reached.
	ErrNotReached = errors.New("distances: goal not reached from root")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distances: invalid option supplied")
)

// Option configures a Compute call via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize the BFS.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this distance.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnVisit is called once per reached cell in BFS order. If it returns an
	// error, Compute aborts and propagates that error.
	OnVisit func(p grid.Point, distance int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		OnVisit:  func(grid.Point, int) error { return nil },
	}
}

// WithMaxDepth stops the search at the given distance (inclusive).
//
//	d > 0: cells farther than d are left unreached
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnVisit registers a callback run for every reached cell; returning an
// error from it stops the search.
func WithOnVisit(fn func(p grid.Point, distance int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
