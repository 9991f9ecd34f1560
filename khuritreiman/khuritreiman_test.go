package khuritreiman_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispersiv/khuri/khuritreiman"
	"github.com/dispersiv/khuri/ktkernel"
)

const (
	testPionMass   = 0.1396
	testVirtuality = 0.77
	testCut        = 200.0
)

func flatPhase(s float64) float64 { return 0.35 }

func flatAmplitude(s complex128) complex128 { return complex(0.05, 0.01) }

func TestSolve_RejectsMissingPhase(t *testing.T) {
	t.Parallel()
	_, err := khuritreiman.Solve(khuritreiman.Config{
		Amplitude:    flatAmplitude,
		PionMass:     testPionMass,
		Subtractions: 1,
		Contour:      khuritreiman.VectorDecayContour,
		Cut:          testCut,
	})
	require.ErrorIs(t, err, khuritreiman.ErrMissingPhase)
}

func TestSolve_RejectsMissingAmplitude(t *testing.T) {
	t.Parallel()
	_, err := khuritreiman.Solve(khuritreiman.Config{
		Phase:        flatPhase,
		PionMass:     testPionMass,
		Subtractions: 1,
		Contour:      khuritreiman.VectorDecayContour,
		Cut:          testCut,
	})
	require.ErrorIs(t, err, khuritreiman.ErrMissingAmplitude)
}

func TestSolve_RejectsNonPositiveSubtractions(t *testing.T) {
	t.Parallel()
	_, err := khuritreiman.Solve(khuritreiman.Config{
		Phase:      flatPhase,
		Amplitude:  flatAmplitude,
		PionMass:   testPionMass,
		Virtuality: testVirtuality,
		Contour:    khuritreiman.VectorDecayContour,
		Cut:        testCut,
	})
	require.ErrorIs(t, err, khuritreiman.ErrInvalidSubtractions)
}

func TestSolve_RejectsUnknownContour(t *testing.T) {
	t.Parallel()
	_, err := khuritreiman.Solve(khuritreiman.Config{
		Phase:        flatPhase,
		Amplitude:    flatAmplitude,
		PionMass:     testPionMass,
		Virtuality:   testVirtuality,
		Subtractions: 1,
		Contour:      khuritreiman.ContourKind(99),
		Cut:          testCut,
	})
	require.ErrorIs(t, err, khuritreiman.ErrUnknownContour)
}

func TestSolve_VectorDecayContourProducesEvaluableBasis(t *testing.T) {
	t.Parallel()
	basis, err := khuritreiman.Solve(khuritreiman.Config{
		Phase:             flatPhase,
		Amplitude:         flatAmplitude,
		PionMass:          testPionMass,
		Virtuality:        testVirtuality,
		Subtractions:      1,
		Contour:           khuritreiman.VectorDecayContour,
		Cut:               testCut,
		SegmentKnotCounts: []int{2, 2, 2, 2, 2},
		ZKnotCount:        2,
		Solver:            ktkernel.Inverse,
	})
	require.NoError(t, err)
	require.Equal(t, 1, basis.Subtractions())

	value, err := basis.Eval(0, complex(10.0, 5.0))
	require.NoError(t, err)
	require.False(t, value == complex(0, 0))
}
