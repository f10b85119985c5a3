package algorithms_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/maze/algorithms"
	"github.com/katalvlaran/maze/distances"
	"github.com/katalvlaran/maze/grid"
	"github.com/katalvlaran/maze/mask"
)

// PlusMaskSuite carves the 3×3 mask with the middle of the north and south
// rows removed:
//
//	. x .
//	. . .
//	. x .
type PlusMaskSuite struct {
	suite.Suite
	m *mask.Mask
}

func (s *PlusMaskSuite) SetupTest() {
	m, err := mask.ParseText(strings.NewReader("3 3\n.x.\n...\n.x."))
	require.NoError(s.T(), err)
	s.m = m
}

func (s *PlusMaskSuite) grid() *grid.Rect {
	g, err := grid.RectFromMask(s.m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, g.Size())
	return g
}

// TestEveryAlgorithm requires a 7-cell spanning tree that skips the holes.
func (s *PlusMaskSuite) TestEveryAlgorithm() {
	for _, alg := range algorithms.Generators() {
		for seed := int64(1); seed <= 25; seed++ {
			g := s.grid()
			require.NoError(s.T(), alg.On(g, algorithms.WithSeed(seed)), alg.String())
			require.NoError(s.T(), algorithms.Verify(g), "%v seed %d", alg, seed)
			require.Equal(s.T(), 6, g.LinkCount(), "%v seed %d", alg, seed)

			d, err := distances.FromOrigin(g)
			require.NoError(s.T(), err)
			require.Equal(s.T(), 7, d.Len(), "%v seed %d", alg, seed)
			_, reached := d.Distance(grid.Pt(1, 0))
			require.False(s.T(), reached, "masked cell reached")
			require.Nil(s.T(), g.Get(grid.Pt(1, 2)))
		}
	}
}

// TestBinaryTreeWithoutBridging shows the forest the row scan leaves behind.
func (s *PlusMaskSuite) TestBinaryTreeWithoutBridging() {
	g := s.grid()
	require.NoError(s.T(), algorithms.BinaryTreeOn(g, algorithms.WithBridging(false)))
	require.Equal(s.T(), 5, g.LinkCount())
	require.ErrorIs(s.T(), algorithms.Verify(g), algorithms.ErrDisconnected)
}

func TestPlusMaskSuite(t *testing.T) {
	suite.Run(t, new(PlusMaskSuite))
}
