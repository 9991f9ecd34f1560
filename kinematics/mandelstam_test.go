package kinematics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispersiv/khuri/kinematics"
)

func TestT_DivisionByZero(t *testing.T) {
	t.Parallel()
	_, err := kinematics.T(0, 0.5, 1, 1, 1, 1)
	require.ErrorIs(t, err, kinematics.ErrDivisionByZero)
}

func TestU_IsTWithNegatedZAndSwappedMasses(t *testing.T) {
	t.Parallel()
	s := complex(10.0, 0)
	got, err := kinematics.U(s, 0.3, 1, 2, 3, 4)
	require.NoError(t, err)
	want, err := kinematics.T(s, -0.3, 1, 2, 4, 3)
	require.NoError(t, err)
	require.InDelta(t, real(want), real(got), 1e-12)
	require.InDelta(t, imag(want), imag(got), 1e-12)
}

func TestTPhotonPion_SumRelation(t *testing.T) {
	t.Parallel()
	// s + t(z) + t(-z) == 3*pionMass^2 + virtuality, for any s and z, since
	// the z-dependent term cancels exactly.
	const pionMass = 1.0
	const virtuality = 30.0
	s := complex(10.0, 0)

	for _, z := range []float64{-1.0, -0.5, 0.0, 0.5, 1.0} {
		tPlus, err := kinematics.TPhotonPion(s, z, pionMass, virtuality)
		require.NoError(t, err)
		tMinus, err := kinematics.TPhotonPion(s, -z, pionMass, virtuality)
		require.NoError(t, err)

		total := s + tPlus + tMinus
		require.InDelta(t, 3.0*pionMass*pionMass+virtuality, real(total), 1e-9)
		require.InDelta(t, 0.0, imag(total), 1e-9)
	}
}

func TestTPhotonPionMinMax_MatchZBoundaries(t *testing.T) {
	t.Parallel()
	const pionMass = 0.14
	const virtuality = 1.0
	s := complex(5.0, 0)

	min, err := kinematics.TPhotonPionMin(s, pionMass, virtuality)
	require.NoError(t, err)
	want, err := kinematics.TPhotonPion(s, -1.0, pionMass, virtuality)
	require.NoError(t, err)
	require.Equal(t, want, min)

	max, err := kinematics.TPhotonPionMax(s, pionMass, virtuality)
	require.NoError(t, err)
	want, err = kinematics.TPhotonPion(s, 1.0, pionMass, virtuality)
	require.NoError(t, err)
	require.Equal(t, want, max)
}

func TestSGreater_RejectsNegativeVirtuality(t *testing.T) {
	t.Parallel()
	_, err := kinematics.SGreater(0.14, -1.0)
	require.ErrorIs(t, err, kinematics.ErrInvalidArgument)
}

func TestCritical_BoundingSquare(t *testing.T) {
	t.Parallel()
	c := kinematics.Critical{PionMass: 0.14, Virtuality: 1.0}
	require.True(t, c.Left() < c.Right())
	require.Greater(t, c.ImaginaryRadius(), 0.0)
}
