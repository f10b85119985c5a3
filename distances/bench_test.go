package distances_test

import (
	"testing"

	"github.com/katalvlaran/maze/algorithms"
	"github.com/katalvlaran/maze/distances"
	"github.com/katalvlaran/maze/grid"
)

// BenchmarkCompute measures a full BFS over a 128×128 perfect maze.
func BenchmarkCompute(b *testing.B) {
	g, _ := grid.NewRect(128, 128)
	_ = algorithms.RecursiveBacktrackerOn(g, algorithms.WithSeed(1)) // pre-build maze once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distances.Compute(g, grid.Pt(0, 0))
	}
}

// BenchmarkLongestPath measures the double BFS.
func BenchmarkLongestPath(b *testing.B) {
	g, _ := grid.NewRect(128, 128)
	_ = algorithms.RecursiveBacktrackerOn(g, algorithms.WithSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distances.LongestPath(g)
	}
}
