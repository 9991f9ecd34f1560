package amplitude

import (
	"math"
	"math/cmplx"

	"github.com/dispersiv/khuri/kinematics"
)

// ChptLO is the I=J=1 pi-pi -> pi-pi chiral perturbation theory partial
// wave amplitude at leading order, in terms of the pion decay constant.
func ChptLO(mass float64, s complex128, pionDecay float64) complex128 {
	return (s - complex(4.0*mass*mass, 0)) / complex(96.0*pionDecay*pionDecay*math.Pi, 0)
}

func sigmaFraction(mass float64, s complex128) complex128 {
	sigma := kinematics.Sigma(mass, s)
	return (1.0 + sigma) / (1.0 - sigma)
}

func logSigma(mass float64, s complex128) complex128 {
	return cmplx.Log(sigmaFraction(mass, s))
}

func lSigma(mass float64, s complex128) complex128 {
	sigma := kinematics.Sigma(mass, s)
	frac := 1.0 / sigma
	return frac * frac * (0.5*frac*logSigma(mass, s) - 1.0)
}

// ChptNLO is the same amplitude at next-to-leading order, given the pion
// decay constant in the chiral limit and the low-energy-constant
// combination lDiff := 48*pi^2*(l2 - 2*l1).
func ChptNLO(mass float64, s complex128, pionDecay, lDiff float64) complex128 {
	sigma := kinematics.Sigma(mass, s)
	sigmaSq := sigma * sigma
	lo := ChptLO(mass, s, pionDecay)
	l := lSigma(mass, s)

	coeff := s * sigmaSq / complex(4608.0*math.Pi*math.Pi*math.Pi*pionDecay*pionDecay*pionDecay*pionDecay, 0)
	cTerm := s*(complex(lDiff, 0)+complex(1.0/3.0, 0)) - complex(7.5*mass*mass, 0)
	mass4 := mass * mass * mass * mass
	bTerm := complex(mass4*0.5, 0) / s * ((complex(15.0, 0)-complex(96.0, 0)*sigmaSq+complex(9.0, 0)*sigmaSq*sigmaSq)*l*l -
		(complex(146.0, 0)-complex(50.0, 0)*sigmaSq)*l + complex(41.0, 0))
	imagPart := kinematics.Rho(mass, s) * lo * lo
	return coeff*(cTerm-bTerm) + complex(0, 1)*imagPart
}
