package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispersiv/khuri/curve"
)

func TestPiecewise_RejectsMismatchedCounts(t *testing.T) {
	t.Parallel()
	_, err := curve.NewPiecewise([]complex128{0, 1, 2}, []curve.Parametrisation{curve.Linear})
	require.ErrorIs(t, err, curve.ErrInvalidArgument)
}

func TestPiecewise_RejectsCoincidentKnots(t *testing.T) {
	t.Parallel()
	_, err := curve.NewPiecewise([]complex128{0, 0}, []curve.Parametrisation{curve.Linear})
	require.ErrorIs(t, err, curve.ErrInvalidArgument)
}

// TestPiecewise_S6 reproduces scenario S6: knots (0, 1+i, 2+2i), linear
// parametrisations; eval(0.5) = 0.5+0.5i, derivative on segment 0 = 1+i,
// hits(1.5+1.5i) = Some((1,2)).
func TestPiecewise_S6(t *testing.T) {
	t.Parallel()
	knots := []complex128{0, complex(1, 1), complex(2, 2)}
	p, err := curve.NewPiecewise(knots, curve.AllLinear(2))
	require.NoError(t, err)

	value, err := p.Eval(0.5)
	require.NoError(t, err)
	require.InDelta(t, 0.5, real(value), 1e-12)
	require.InDelta(t, 0.5, imag(value), 1e-12)

	deriv, err := p.Deriv(0.25)
	require.NoError(t, err)
	require.InDelta(t, 1.0, real(deriv), 1e-12)
	require.InDelta(t, 1.0, imag(deriv), 1e-12)

	lo, hi, ok := p.Hits(complex(1.5, 1.5))
	require.True(t, ok)
	require.Equal(t, 1.0, lo)
	require.Equal(t, 2.0, hi)
}

func TestPiecewise_EndpointsInvariant(t *testing.T) {
	t.Parallel()
	knots := []complex128{0, complex(1, 1), complex(2, -1), complex(5, 0)}
	p, err := curve.NewPiecewise(knots, curve.AllLinear(3))
	require.NoError(t, err)

	boundaries := p.Boundaries()
	require.Len(t, boundaries, 4)

	first, err := p.Eval(boundaries[0])
	require.NoError(t, err)
	require.Equal(t, knots[0], first)

	last, err := p.Eval(boundaries[len(boundaries)-1])
	require.NoError(t, err)
	require.Equal(t, knots[len(knots)-1], last)
}

func TestPiecewise_HitsRoundTrip(t *testing.T) {
	t.Parallel()
	knots := []complex128{0, complex(1, 1), complex(2, -1), complex(5, 0)}
	p, err := curve.NewPiecewise(knots, curve.AllLinear(3))
	require.NoError(t, err)

	for _, u := range []float64{0.0, 0.5, 1.0, 1.5, 2.5, 3.0} {
		value, err := p.Eval(u)
		require.NoError(t, err)
		lo, _, ok := p.Hits(value)
		require.True(t, ok)
		expectedLo := float64(int(u))
		if u == float64(int(u)) && u > 0 {
			// a knot can be reported as the end of the previous segment
			// or the start of the next; both are valid round trips.
			require.True(t, lo == expectedLo || lo == expectedLo-1)
		} else {
			require.Equal(t, expectedLo, lo)
		}
	}
}

func TestPiecewise_OutOfRangeEval(t *testing.T) {
	t.Parallel()
	p, err := curve.NewPiecewise([]complex128{0, 1}, curve.AllLinear(1))
	require.NoError(t, err)
	_, err = p.Eval(2.0)
	require.ErrorIs(t, err, curve.ErrOutOfRange)
}

func TestPiecewise_QuadraticSegment(t *testing.T) {
	t.Parallel()
	p, err := curve.NewPiecewise([]complex128{0, complex(4, 0)}, []curve.Parametrisation{curve.Quadratic})
	require.NoError(t, err)

	value, err := p.Eval(0.5)
	require.NoError(t, err)
	require.InDelta(t, 1.0, real(value), 1e-12) // 4*(0.5)^2 = 1

	deriv, err := p.Deriv(0.5)
	require.NoError(t, err)
	require.InDelta(t, 4.0, real(deriv), 1e-12) // 2*4*0.5 = 4
}
