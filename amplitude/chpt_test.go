package amplitude_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispersiv/khuri/amplitude"
)

const (
	testPionMass  = 0.1396
	testPionDecay = 0.0924
	testLDiff     = 4.0
)

func TestChptLO_RealBelowThreshold(t *testing.T) {
	t.Parallel()
	threshold := 4.0 * testPionMass * testPionMass
	for _, s := range []float64{0.0, 0.01, threshold - 1e-6} {
		value := amplitude.ChptLO(testPionMass, complex(s, 0), testPionDecay)
		require.InDelta(t, 0.0, imag(value), 1e-12)
	}
}

func TestChptLO_VanishesAtThreshold(t *testing.T) {
	t.Parallel()
	threshold := 4.0 * testPionMass * testPionMass
	value := amplitude.ChptLO(testPionMass, complex(threshold, 0), testPionDecay)
	require.InDelta(t, 0.0, real(value), 1e-12)
	require.InDelta(t, 0.0, imag(value), 1e-12)
}

func TestChptNLO_FiniteWhereLONonzero(t *testing.T) {
	t.Parallel()
	s := complex(0.3, 0)
	lo := amplitude.ChptLO(testPionMass, s, testPionDecay)
	nlo := amplitude.ChptNLO(testPionMass, s, testPionDecay, testLDiff)
	require.False(t, cmplx.IsNaN(nlo))
	require.False(t, cmplx.IsInf(nlo))
	require.NotEqual(t, complex(0, 0), lo)
}

func TestChptNLO_FiniteAwayFromThreshold(t *testing.T) {
	t.Parallel()
	for _, s := range []complex128{complex(0.2, 0), complex(0.5, 0.01), complex(1.0, 0.1)} {
		value := amplitude.ChptNLO(testPionMass, s, testPionDecay, testLDiff)
		require.False(t, cmplx.IsNaN(value), "s=%v", s)
		require.False(t, cmplx.IsInf(value), "s=%v", s)
	}
}
