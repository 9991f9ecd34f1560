package curve

import (
	"fmt"

	"github.com/dispersiv/khuri/kinematics"
)

// Real is a two-knot linear contour running along the real axis from
// threshold to cut.
func Real(threshold, cut float64) (*Piecewise, error) {
	knots := []complex128{complex(threshold, 0), complex(cut, 0)}
	p, err := NewPiecewise(knots, []Parametrisation{Linear})
	if err != nil {
		return nil, fmt.Errorf("Real: %w", err)
	}
	return p, nil
}

// VectorDecay is the six-knot linear contour of Gasser and Rusetsky for
// the decay kinematics: it dips below the real axis around the
// two-pion threshold before returning to hit the real axis at the
// kinematic boundary s+ and running out to cut.
func VectorDecay(pionMass, virtuality, cut float64) (*Piecewise, error) {
	m2 := pionMass * pionMass
	a := virtuality - 2.5*m2
	b := -7.0 * m2

	sGreater, err := kinematics.SGreater(pionMass, virtuality)
	if err != nil {
		return nil, fmt.Errorf("VectorDecay: %w", err)
	}

	knots := []complex128{
		complex(4.0*m2, 0),
		complex(5.0*m2, b),
		complex(a, b),
		complex(a, 0),
		complex(sGreater, 0),
		complex(cut, 0),
	}
	p, err := NewPiecewise(knots, AllLinear(5))
	if err != nil {
		return nil, fmt.Errorf("VectorDecay: %w", err)
	}
	return p, nil
}

// Adaptive is the six-knot linear contour that works for arbitrary
// virtualities above the three-pion threshold and arbitrary pion masses,
// shaped by the Critical-region descriptor rather than fixed offsets.
func Adaptive(pionMass, virtuality, cut float64) (*Piecewise, error) {
	m2 := pionMass * pionMass
	critical := kinematics.Critical{PionMass: pionMass, Virtuality: virtuality}
	lower := -critical.ImaginaryRadius()
	right := critical.Right() + m2

	sGreater, err := kinematics.SGreater(pionMass, virtuality)
	if err != nil {
		return nil, fmt.Errorf("Adaptive: %w", err)
	}

	knots := []complex128{
		complex(4.0*m2, 0),
		complex(4.0*m2, lower),
		complex(right, lower),
		complex(right, 0),
		complex(sGreater, 0),
		complex(cut, 0),
	}
	p, err := NewPiecewise(knots, AllLinear(5))
	if err != nil {
		return nil, fmt.Errorf("Adaptive: %w", err)
	}
	return p, nil
}
