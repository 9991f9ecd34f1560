package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispersiv/khuri/numeric"
)

func TestQAG_FiniteInterval(t *testing.T) {
	t.Parallel()
	q, err := numeric.NewQAG(numeric.DefaultSettings())
	require.NoError(t, err)

	value, _, err := q.Integrate(math.Sin, 0, math.Pi)
	require.NoError(t, err)
	require.InDelta(t, 2.0, value, 1e-6)
}

func TestCQUAD_FiniteInterval(t *testing.T) {
	t.Parallel()
	c, err := numeric.NewCQUAD(numeric.DefaultSettings())
	require.NoError(t, err)

	value, _, err := c.Integrate(func(x float64) float64 { return x * x }, 0, 3)
	require.NoError(t, err)
	require.InDelta(t, 9.0, value, 1e-6)
}

func TestCQUAD_SemiInfiniteInterval(t *testing.T) {
	t.Parallel()
	c, err := numeric.NewCQUAD(numeric.DefaultSettings())
	require.NoError(t, err)

	// integral_0^inf e^{-x} dx = 1
	value, _, err := c.Integrate(func(x float64) float64 { return math.Exp(-x) }, 0, math.Inf(1))
	require.NoError(t, err)
	require.InDelta(t, 1.0, value, 1e-5)
}

func TestCQUAD_DoublyInfiniteInterval(t *testing.T) {
	t.Parallel()
	c, err := numeric.NewCQUAD(numeric.DefaultSettings())
	require.NoError(t, err)

	// integral_{-inf}^{inf} e^{-x^2} dx = sqrt(pi)
	value, _, err := c.Integrate(func(x float64) float64 { return math.Exp(-x * x) }, math.Inf(-1), math.Inf(1))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(math.Pi), value, 1e-4)
}

func TestQAG_NonFiniteIntegrandFails(t *testing.T) {
	t.Parallel()
	q, err := numeric.NewQAG(numeric.DefaultSettings())
	require.NoError(t, err)

	_, _, err = q.Integrate(func(x float64) float64 { return 1.0 / x }, -1, 1)
	require.Error(t, err)
}

func TestNewQAG_RejectsZeroWorkspace(t *testing.T) {
	t.Parallel()
	_, err := numeric.NewQAG(numeric.Settings{Workspace: 0})
	require.ErrorIs(t, err, numeric.ErrAllocation)
}

func TestCQUAD_TightTolerance_MaySubdivide(t *testing.T) {
	t.Parallel()
	settings := numeric.DefaultSettings()
	settings.RelativePrecision = 1e-12
	settings.Workspace = 50
	c, err := numeric.NewCQUAD(settings)
	require.NoError(t, err)

	// A mildly oscillatory integrand that needs several subdivisions at
	// this tolerance but should still be tractable within the workspace.
	value, _, err := c.Integrate(func(x float64) float64 { return math.Sin(10 * x) }, 0, 2*math.Pi)
	if err != nil {
		require.ErrorIs(t, err, numeric.ErrMaxSubdivisions)
	}
	require.InDelta(t, 0.0, value, 1e-3)
}
