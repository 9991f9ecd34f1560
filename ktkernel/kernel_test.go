package ktkernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispersiv/khuri/curve"
	"github.com/dispersiv/khuri/curvedomnes"
	"github.com/dispersiv/khuri/grid"
	"github.com/dispersiv/khuri/ktkernel"
	"github.com/dispersiv/khuri/numeric"
	"github.com/dispersiv/khuri/omnes"
)

const (
	testPionMass   = 0.14
	testVirtuality = 0.5
	testCut        = 200.0
)

func buildTestGrid(t *testing.T) *grid.Grid {
	t.Helper()
	c, err := curve.VectorDecay(testPionMass, testVirtuality, testCut)
	require.NoError(t, err)
	g, err := grid.NewGrid(c, []int{2, 2, 2, 2, 2}, 2)
	require.NoError(t, err)
	return g
}

func buildTestCurvedOmnes(t *testing.T) *curvedomnes.CurvedOmnes {
	t.Helper()
	phase := func(s float64) float64 { return 0.5 }
	o, err := omnes.NewInfiniteCut(phase, 4.0*testPionMass*testPionMass, 1e-10, numeric.DefaultSettings())
	require.NoError(t, err)
	c, err := curve.VectorDecay(testPionMass, testVirtuality, testCut)
	require.NoError(t, err)
	amplitude := func(complex128) complex128 { return complex(0.05, 0.05) }
	curved, err := curvedomnes.New(o, amplitude, c)
	require.NoError(t, err)
	return curved
}

func testPiPi(complex128) complex128 { return complex(1.0, 0) }

func TestGenerateKernel_HasExpectedShape(t *testing.T) {
	t.Parallel()
	g := buildTestGrid(t)
	curved := buildTestCurvedOmnes(t)

	kernel, err := ktkernel.GenerateKernel(curved, testPiPi, g, testPionMass, testVirtuality, 1)
	require.NoError(t, err)
	require.Equal(t, g.XSize()*g.ZSize(), kernel.Size())
}

func TestComputeBasis_RejectsUnknownMethod(t *testing.T) {
	t.Parallel()
	g := buildTestGrid(t)
	curved := buildTestCurvedOmnes(t)

	_, err := ktkernel.ComputeBasis(curved, testPiPi, 1, g, testPionMass, testVirtuality, ktkernel.Method(99), 0)
	require.ErrorIs(t, err, ktkernel.ErrUnknownMethod)
}

func TestComputeBasis_IterationAndInverseAgree(t *testing.T) {
	t.Parallel()
	g := buildTestGrid(t)
	curved := buildTestCurvedOmnes(t)

	viaInverse, err := ktkernel.ComputeBasis(curved, testPiPi, 1, g, testPionMass, testVirtuality, ktkernel.Inverse, 0)
	require.NoError(t, err)
	viaIteration, err := ktkernel.ComputeBasis(curved, testPiPi, 1, g, testPionMass, testVirtuality, ktkernel.Iteration, 1e-10)
	require.NoError(t, err)

	require.Len(t, viaInverse, 1)
	require.Len(t, viaIteration, 1)
	require.Equal(t, len(viaInverse[0]), len(viaIteration[0]))
	for i := range viaInverse[0] {
		require.False(t, math.IsNaN(real(viaInverse[0][i])))
		require.InDelta(t, real(viaInverse[0][i]), real(viaIteration[0][i]), 1e-3)
		require.InDelta(t, imag(viaInverse[0][i]), imag(viaIteration[0][i]), 1e-3)
	}
}

func TestIterate_RejectsMismatchedStart(t *testing.T) {
	t.Parallel()
	kernel, err := ktkernel.NewMatrix(2)
	require.NoError(t, err)
	_, err = ktkernel.Iterate(kernel, []complex128{1, 2, 3}, 1e-8)
	require.ErrorIs(t, err, ktkernel.ErrInvalidArgument)
}
