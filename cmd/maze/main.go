// Command maze generates a maze, optionally over a mask, and prints,
// rasterizes or displays it.
//
// Usage:
//
//	maze -algorithm wilsons -width 20 -height 12 -output -distances
//	maze -mask shape.txt -png -resolution 24 -out shape.png
//	maze -mask-image logo.png -polar-png -path
//	maze -view -path
//
// Fatal errors are logged with the "maze: " prefix and exit with status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/maze/algorithms"
	"github.com/katalvlaran/maze/distances"
	"github.com/katalvlaran/maze/grid"
	"github.com/katalvlaran/maze/mask"
	"github.com/katalvlaran/maze/render"
)

// Default dimensions when no mask is given.
const (
	defaultWidth  = 8
	defaultHeight = 8
)

var errUsage = errors.New("invalid flag combination")

// config is the validated command line.
type config struct {
	algorithm  algorithms.Algorithm
	maskPath   string
	maskImage  string
	width      int
	height     int
	output     bool
	distances  bool
	png        bool
	polarPNG   bool
	resolution int
	out        string
	polarOut   string
	seed       int64
	maxSteps   int
	palette    render.Palette
	verify     bool
	view       bool
	path       bool
	verbose    bool
}

// parseArgs reads and validates args (without the program name).
func parseArgs(args []string, stderr io.Writer) (config, error) {
	var (
		cfg        config
		algName    string
		paletteStr string
	)
	fs := flag.NewFlagSet("maze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&algName, "algorithm", "recursivebacktracker", "generation algorithm: none, binarytree, sidewinder, aldousbroder, wilsons, huntandkill, recursivebacktracker, kruskal")
	fs.StringVar(&cfg.maskPath, "mask", "", "text mask file of '.' and 'x' characters")
	fs.StringVar(&cfg.maskImage, "mask-image", "", "image mask file; black pixels remove cells")
	fs.IntVar(&cfg.width, "width", defaultWidth, "grid width when no mask is given")
	fs.IntVar(&cfg.height, "height", defaultHeight, "grid height when no mask is given")
	fs.BoolVar(&cfg.output, "output", false, "print the maze as text")
	fs.BoolVar(&cfg.distances, "distances", false, "show distances from the origin cell (needs -output or -view)")
	fs.BoolVar(&cfg.png, "png", false, "write the maze as a PNG image")
	fs.BoolVar(&cfg.polarPNG, "polar-png", false, "write a polar (circular) maze as a PNG image")
	fs.IntVar(&cfg.resolution, "resolution", 16, "cell size in pixels (needs -png or -polar-png)")
	fs.StringVar(&cfg.out, "out", "maze.png", "file for -png")
	fs.StringVar(&cfg.polarOut, "polar-out", "maze_polar.png", "file for -polar-png")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed; 0 picks one from the clock")
	fs.IntVar(&cfg.maxSteps, "max-steps", 0, "step limit for random-walk algorithms; 0 is unlimited")
	fs.StringVar(&paletteStr, "palette", "", "colors as background,wall,near,far[,path] hex list")
	fs.BoolVar(&cfg.verify, "verify", false, "check that the result is a perfect maze")
	fs.BoolVar(&cfg.view, "view", false, "show the maze in the terminal (q or Esc quits)")
	fs.BoolVar(&cfg.path, "path", false, "overlay the longest path")
	fs.BoolVar(&cfg.verbose, "v", false, "log progress")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	alg, err := algorithms.Parse(algName)
	if err != nil {
		return cfg, err
	}
	cfg.algorithm = alg

	switch {
	case cfg.maskPath != "" && cfg.maskImage != "":
		return cfg, fmt.Errorf("%w: -mask and -mask-image are mutually exclusive", errUsage)
	case (cfg.maskPath != "" || cfg.maskImage != "") && (set["width"] || set["height"]):
		return cfg, fmt.Errorf("%w: -width/-height conflict with a mask", errUsage)
	case cfg.distances && !cfg.output && !cfg.view:
		return cfg, fmt.Errorf("%w: -distances requires -output or -view", errUsage)
	case set["resolution"] && !cfg.png && !cfg.polarPNG:
		return cfg, fmt.Errorf("%w: -resolution requires -png or -polar-png", errUsage)
	case cfg.resolution < 2:
		return cfg, fmt.Errorf("%w: -resolution must be at least 2, got %d", errUsage, cfg.resolution)
	case cfg.width < 1 || cfg.height < 1:
		return cfg, fmt.Errorf("%w: dimensions must be positive, got %dx%d", errUsage, cfg.width, cfg.height)
	case cfg.maxSteps < 0:
		return cfg, fmt.Errorf("%w: -max-steps cannot be negative", errUsage)
	}

	cfg.palette = render.DefaultPalette()
	if paletteStr != "" {
		if cfg.palette, err = render.ParsePalette(paletteStr); err != nil {
			return cfg, err
		}
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// loadMask returns the mask named by cfg, or an all-open one.
func loadMask(cfg config) (*mask.Mask, error) {
	switch {
	case cfg.maskPath != "":
		return mask.LoadText(cfg.maskPath)
	case cfg.maskImage != "":
		return mask.LoadImage(cfg.maskImage)
	default:
		return mask.New(cfg.width, cfg.height)
	}
}

// carve runs the configured algorithm on g and checks it when asked to.
func carve(cfg config, g grid.Grid, opts []algorithms.Option) error {
	start := time.Now()
	if err := cfg.algorithm.On(g, opts...); err != nil {
		return fmt.Errorf("%v: %w", cfg.algorithm, err)
	}
	if cfg.verbose {
		log.Printf("%v carved %d passages over %d cells in %v", cfg.algorithm, g.LinkCount(), g.Size(), time.Since(start))
	}
	if cfg.verify {
		if err := algorithms.Verify(g); err != nil {
			return err
		}
		if cfg.verbose {
			log.Printf("verified: %d lattice components", len(grid.Components(g)))
		}
	}
	return nil
}

// solve returns distances from the origin and, with -path, the longest path.
func solve(g grid.Grid, withPath bool) (*distances.Distances, []grid.Point, error) {
	d, err := distances.FromOrigin(g)
	if err != nil {
		return nil, nil, err
	}
	if !withPath {
		return d, nil, nil
	}
	path, err := distances.LongestPath(g)
	if err != nil {
		return nil, nil, err
	}
	return d, path, nil
}

func run(cfg config, stdout io.Writer) error {
	m, err := loadMask(cfg)
	if err != nil {
		return err
	}
	if cfg.verbose {
		log.Printf("mask %dx%d with %d open cells, seed %d", m.Width(), m.Height(), m.Count(), cfg.seed)
	}

	// one stream for both grids; the polar maze is carved second
	opts := []algorithms.Option{
		algorithms.WithRand(rand.New(rand.NewSource(cfg.seed))),
		algorithms.WithMaxSteps(cfg.maxSteps),
	}

	rect, err := grid.RectFromMask(m)
	if err != nil {
		return err
	}
	if err = carve(cfg, rect, opts); err != nil {
		return err
	}

	needSolve := cfg.distances || cfg.png || cfg.path
	var (
		d    *distances.Distances
		path []grid.Point
	)
	if needSolve && rect.Size() > 0 {
		if d, path, err = solve(rect, cfg.path); err != nil {
			return err
		}
		if cfg.verbose {
			longest, far := d.Max()
			log.Printf("farthest cell %v at distance %d", far, longest)
		}
	}

	shown := d
	if !cfg.distances {
		shown = nil
	}
	if cfg.output {
		if err = render.WriteText(stdout, rect, shown); err != nil {
			return err
		}
	}

	ropts := []render.Option{render.WithCellSize(cfg.resolution), render.WithPalette(cfg.palette)}
	if path != nil {
		ropts = append(ropts, render.WithPath(path))
	}
	if cfg.png {
		if err = render.SavePNG(cfg.out, render.Image(rect, d, ropts...)); err != nil {
			return err
		}
		if cfg.verbose {
			log.Printf("wrote %s", cfg.out)
		}
	}

	if cfg.polarPNG {
		polar, err := grid.PolarFromMask(m)
		if err != nil {
			return err
		}
		if err = carve(cfg, polar, opts); err != nil {
			return err
		}
		popts := []render.Option{render.WithCellSize(cfg.resolution), render.WithPalette(cfg.palette)}
		var pd *distances.Distances
		if polar.Size() > 0 {
			var ppath []grid.Point
			if pd, ppath, err = solve(polar, cfg.path); err != nil {
				return err
			}
			if ppath != nil {
				popts = append(popts, render.WithPath(ppath))
			}
		}
		if err = render.SavePNG(cfg.polarOut, render.PolarImage(polar, pd, popts...)); err != nil {
			return err
		}
		if cfg.verbose {
			log.Printf("wrote %s", cfg.polarOut)
		}
	}

	if cfg.view {
		return view(rect, shown, path, cfg.palette)
	}
	return nil
}

// view opens the terminal and blocks until the user quits.
func view(g grid.Grid, d *distances.Distances, path []grid.Point, p render.Palette) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	render.View(screen, g, d, render.WithPalette(p), render.WithPath(path))
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("maze: ")

	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err = run(cfg, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
