package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispersiv/khuri/curve"
	"github.com/dispersiv/khuri/grid"
)

func TestGrid_SizesMatchRequested(t *testing.T) {
	t.Parallel()
	c, err := curve.VectorDecay(0.14, 0.5, 200.0)
	require.NoError(t, err)

	xSizes := []int{3, 3, 3, 3, 3}
	g, err := grid.NewGrid(c, xSizes, 4)
	require.NoError(t, err)
	require.Equal(t, 15, g.XSize())
	require.Equal(t, 4, g.ZSize())
}

func TestGrid_RejectsMismatchedSegmentCount(t *testing.T) {
	t.Parallel()
	c, err := curve.Real(4.0, 200.0)
	require.NoError(t, err)

	_, err = grid.NewGrid(c, []int{2, 2}, 4)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)
}

func TestGrid_PointCombinesXAndZ(t *testing.T) {
	t.Parallel()
	c, err := curve.Real(4.0, 200.0)
	require.NoError(t, err)

	g, err := grid.NewGrid(c, []int{5}, 3)
	require.NoError(t, err)

	p, err := g.Point(2, 1)
	require.NoError(t, err)

	x, err := g.X(2)
	require.NoError(t, err)
	require.Equal(t, x, p.X)

	z, err := g.Z(1)
	require.NoError(t, err)
	require.Equal(t, z, p.Z)
}

func TestGrid_OutOfRangeIndices(t *testing.T) {
	t.Parallel()
	c, err := curve.Real(4.0, 200.0)
	require.NoError(t, err)

	g, err := grid.NewGrid(c, []int{5}, 3)
	require.NoError(t, err)

	_, err = g.Point(100, 0)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)

	_, err = g.Point(0, 100)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)
}

func TestGrid_XParameterValuesLengthMatchesXSize(t *testing.T) {
	t.Parallel()
	c, err := curve.VectorDecay(0.14, 0.5, 200.0)
	require.NoError(t, err)

	g, err := grid.NewGrid(c, []int{2, 2, 2, 2, 2}, 3)
	require.NoError(t, err)
	require.Len(t, g.XParameterValues(), g.XSize())
}
