package amplitude

import (
	"math/cmplx"

	"github.com/dispersiv/khuri/kinematics"
)

func complexExp2i(phase complex128) complex128 {
	return cmplx.Exp(complex(0, 2) * phase)
}

// FromCot builds a two-body partial wave amplitude from its cotangent of
// phase shift, elastic and unitary by construction.
func FromCot(mass float64, cotPhase func(complex128) complex128) func(complex128) complex128 {
	return func(s complex128) complex128 {
		return 1.0 / (cotPhase(s) - complex(0, 1)) / kinematics.Rho(mass, s)
	}
}

// FromPhase builds a two-body partial wave amplitude from a phase shift and
// an optional inelasticity. A nil inelasticity is taken to be identically 1,
// the purely elastic case.
func FromPhase(mass float64, phase func(complex128) complex128, inelasticity func(complex128) complex128) func(complex128) complex128 {
	if inelasticity == nil {
		inelasticity = func(complex128) complex128 { return complex(1, 0) }
	}
	return func(s complex128) complex128 {
		numerator := inelasticity(s)*complexExp2i(phase(s)) - complex(1, 0)
		return numerator / (complex(0, 2) * kinematics.Rho(mass, s))
	}
}

// SecondSheet continues a first-sheet amplitude onto the second Riemann
// sheet through the two-particle unitarity cut.
func SecondSheet(mass float64, amp func(complex128) complex128) func(complex128) complex128 {
	return func(s complex128) complex128 {
		first := amp(s)
		return first / (complex(1, 0) + complex(0, 2)*kinematics.Rho(mass, s)*first)
	}
}

// FirstSheet is the inverse of SecondSheet, recovering the first-sheet
// amplitude from its second-sheet continuation.
func FirstSheet(mass float64, amp func(complex128) complex128) func(complex128) complex128 {
	return func(s complex128) complex128 {
		second := amp(s)
		return second / (complex(1, 0) - complex(0, 2)*kinematics.Rho(mass, s)*second)
	}
}
