package ktbasis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispersiv/khuri/curve"
	"github.com/dispersiv/khuri/grid"
	"github.com/dispersiv/khuri/ktbasis"
	"github.com/dispersiv/khuri/ktkernel"
	"github.com/dispersiv/khuri/numeric"
	"github.com/dispersiv/khuri/omnes"
)

const (
	testPionMass   = 0.14
	testVirtuality = 0.5
	testCut        = 200.0
)

func buildTestBasis(t *testing.T, subtractions int) *ktbasis.Basis {
	t.Helper()
	c, err := curve.VectorDecay(testPionMass, testVirtuality, testCut)
	require.NoError(t, err)
	g, err := grid.NewGrid(c, []int{2, 2, 2, 2, 2}, 2)
	require.NoError(t, err)

	phase := func(s float64) float64 { return 0.3 }
	o, err := omnes.NewInfiniteCut(phase, 4.0*testPionMass*testPionMass, 1e-10, numeric.DefaultSettings())
	require.NoError(t, err)
	piPi := func(complex128) complex128 { return complex(0.05, 0.02) }

	b, err := ktbasis.New(o, piPi, subtractions, g, testPionMass, testVirtuality, ktkernel.Inverse, 0, 0)
	require.NoError(t, err)
	return b
}

func TestBasis_RejectsOutOfRangeSubtractionIndex(t *testing.T) {
	t.Parallel()
	b := buildTestBasis(t, 1)
	_, err := b.Eval(5, complex(10.0, 0))
	require.ErrorIs(t, err, ktbasis.ErrInvalidArgument)
}

func TestBasis_EvalOffContourIsFinite(t *testing.T) {
	t.Parallel()
	b := buildTestBasis(t, 1)
	value, err := b.Eval(0, complex(10.0, 5.0))
	require.NoError(t, err)
	require.False(t, math.IsNaN(real(value)))
	require.False(t, math.IsNaN(imag(value)))
}

func TestBasis_EvalNearThresholdAverages(t *testing.T) {
	t.Parallel()
	b := buildTestBasis(t, 1)
	threshold := 4.0 * testPionMass * testPionMass
	value, err := b.Eval(0, complex(threshold, 0))
	require.NoError(t, err)
	require.False(t, math.IsNaN(real(value)))
}

func TestBasis_SubtractionsMatchesRequestedCount(t *testing.T) {
	t.Parallel()
	b := buildTestBasis(t, 2)
	require.Equal(t, 2, b.Subtractions())
}
