package algorithms

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/maze/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("algorithms: grid is nil")

	// ErrUnknownAlgorithm indicates a name that Parse cannot map.
	ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

	// ErrStepLimit is returned when a random walk exceeds WithMaxSteps.
	ErrStepLimit = errors.New("algorithms: step limit exceeded")

	// ErrAsymmetricLink is reported by Verify for a one-sided passage.
	ErrAsymmetricLink = errors.New("algorithms: asymmetric link")

	// ErrCycle is reported by Verify when the passages contain a loop.
	ErrCycle = errors.New("algorithms: passages contain a cycle")

	// ErrDisconnected is reported by Verify when a lattice component holds
	// more than one tree.
	ErrDisconnected = errors.New("algorithms: component is not connected")
)

// Algorithm names a generation strategy.
type Algorithm int

const (
	// None leaves the grid untouched.
	None Algorithm = iota
	BinaryTree
	Sidewinder
	AldousBroder
	Wilsons
	HuntAndKill
	RecursiveBacktracker
	Kruskal
)

var algorithmNames = [...]string{
	None:                 "None",
	BinaryTree:           "BinaryTree",
	Sidewinder:           "Sidewinder",
	AldousBroder:         "AldousBroder",
	Wilsons:              "Wilsons",
	HuntAndKill:          "HuntAndKill",
	RecursiveBacktracker: "RecursiveBacktracker",
	Kruskal:              "Kruskal",
}

// String returns the canonical name, e.g. "RecursiveBacktracker".
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Generators lists every algorithm that carves passages, None excluded.
func Generators() []Algorithm {
	return []Algorithm{BinaryTree, Sidewinder, AldousBroder, Wilsons, HuntAndKill, RecursiveBacktracker, Kruskal}
}

// Parse maps a user-supplied name to an Algorithm. Matching ignores case,
// '-', '_' and spaces, so "recursive-backtracker" and "RecursiveBacktracker"
// are the same. "wilson" is accepted for Wilsons.
func Parse(name string) (Algorithm, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '\'':
			return -1
		}
		return r
	}, strings.ToLower(name))

	for a, n := range algorithmNames {
		if strings.ToLower(n) == key {
			return Algorithm(a), nil
		}
	}
	if key == "wilson" {
		return Wilsons, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// On runs the generator a names on g.
func (a Algorithm) On(g grid.Grid, opts ...Option) error {
	switch a {
	case None:
		if g == nil {
			return ErrGridNil
		}
		return nil
	case BinaryTree:
		return BinaryTreeOn(g, opts...)
	case Sidewinder:
		return SidewinderOn(g, opts...)
	case AldousBroder:
		return AldousBroderOn(g, opts...)
	case Wilsons:
		return WilsonsOn(g, opts...)
	case HuntAndKill:
		return HuntAndKillOn(g, opts...)
	case RecursiveBacktracker:
		return RecursiveBacktrackerOn(g, opts...)
	case Kruskal:
		return KruskalOn(g, opts...)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
}

// Options configures a generator run.
type Options struct {
	// Rand is the random source; callers own it and must not share it
	// across goroutines.
	Rand *rand.Rand

	// MaxSteps bounds the moves of the random-walk generators
	// (Aldous-Broder, Wilson's, Hunt-and-Kill). Zero means unbounded.
	MaxSteps int

	// Bridging joins adjacent forest components left by Binary Tree and
	// Sidewinder on masked grids.
	Bridging bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with a deterministic default stream,
// no step limit and bridging on.
func DefaultOptions() Options {
	return Options{
		Rand:     rngFromSeed(0),
		MaxSteps: 0,
		Bridging: true,
	}
}

// WithRand injects a caller-owned random source.
// Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("algorithms: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed uses a fresh deterministic source seeded with seed
// (0 selects the default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithMaxSteps caps random-walk moves; exceeding the cap returns ErrStepLimit.
// Panics if n is negative.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("algorithms: WithMaxSteps(%d): negative limit", n))
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithBridging toggles the connecting pass of the row-scan generators.
func WithBridging(on bool) Option {
	return func(o *Options) {
		o.Bridging = on
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// budget counts random-walk moves against Options.MaxSteps.
type budget struct {
	max  int
	used int
}

// step records one move and fails once the limit is crossed.
func (b *budget) step() error {
	if b.max == 0 {
		return nil
	}
	b.used++
	if b.used > b.max {
		return fmt.Errorf("%w: %d moves", ErrStepLimit, b.max)
	}
	return nil
}
