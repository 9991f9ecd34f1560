package kinematics

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Kaellen is the Kaellen (triangle) function
// lambda(a,b,c) = a^2 + b^2 + c^2 - 2(ab+ac+bc).
func Kaellen(a, b, c complex128) complex128 {
	return a*a + b*b + c*c - 2.0*(a*b+a*c+b*c)
}

// T is the Mandelstam variable t in the centre-of-mass system for a
// general four-particle process with external masses squared
// squared1..squared4, at Mandelstam s and scattering-angle cosine z.
func T(s complex128, z, squared1, squared2, squared3, squared4 float64) (complex128, error) {
	if s == 0 {
		return 0, fmt.Errorf("T: %w", ErrDivisionByZero)
	}
	sum := squared1 + squared2 + squared3 + squared4
	delta1 := squared1 - squared2
	delta2 := squared3 - squared4
	kaellen1 := Kaellen(s, complex(squared1, 0), complex(squared2, 0))
	kaellen2 := Kaellen(s, complex(squared3, 0), complex(squared4, 0))
	return (complex(sum, 0) - s -
		(complex(delta1*delta2, 0)-complex(z, 0)*cmplx.Sqrt(kaellen1*kaellen2))/s) / 2.0, nil
}

// U is the Mandelstam variable u in the centre-of-mass system, related to
// T by z -> -z and swapping the third and fourth external masses.
func U(s complex128, z, squared1, squared2, squared3, squared4 float64) (complex128, error) {
	return T(s, -z, squared1, squared2, squared4, squared3)
}

// SGreater is the upper bound of the region in which T is complex for
// photon+pion -> pion+pion, as a function of the pion mass and the
// photon virtuality.
func SGreater(pionMass, virtuality float64) (float64, error) {
	if virtuality < 0.0 {
		return 0, fmt.Errorf("SGreater: %w", ErrInvalidArgument)
	}
	temp := math.Sqrt(virtuality) + pionMass
	return temp * temp, nil
}

// SSmaller is the lower bound of the same region, obtained from SGreater
// with the pion mass negated.
func SSmaller(pionMass, virtuality float64) (float64, error) {
	return SGreater(-pionMass, virtuality)
}

// APhotonPion is the z-independent part of TPhotonPion.
func APhotonPion(s complex128, pionMass, virtuality float64) complex128 {
	return (complex(3.0*pionMass*pionMass+virtuality, 0) - s) / 2.0
}

// BPhotonPion is the coefficient of z in TPhotonPion.
func BPhotonPion(s complex128, pionMass, virtuality float64) (complex128, error) {
	if virtuality <= 0.0 {
		return 0.5 * Rho(pionMass, s) * cmplx.Sqrt(Kaellen(s, complex(virtuality, 0), complex(pionMass*pionMass, 0))), nil
	}
	sGreater, err := SGreater(pionMass, virtuality)
	if err != nil {
		return 0, fmt.Errorf("BPhotonPion: %w", err)
	}
	sSmaller, err := SSmaller(pionMass, virtuality)
	if err != nil {
		return 0, fmt.Errorf("BPhotonPion: %w", err)
	}
	sqrt1 := cmplx.Sqrt(s - complex(sGreater, 0))
	sqrt2 := cmplx.Sqrt(s - complex(sSmaller, 0))
	return 0.5 * Rho(pionMass, s) * sqrt1 * sqrt2, nil
}

// TPhotonPion is the Mandelstam variable t for photon+pion -> pion+pion in
// the centre-of-mass system.
func TPhotonPion(s complex128, z, pionMass, virtuality float64) (complex128, error) {
	b, err := BPhotonPion(s, pionMass, virtuality)
	if err != nil {
		return 0, fmt.Errorf("TPhotonPion: %w", err)
	}
	return APhotonPion(s, pionMass, virtuality) + complex(z, 0)*b, nil
}

// TPhotonPionMin is TPhotonPion evaluated at z = -1.
func TPhotonPionMin(s complex128, pionMass, virtuality float64) (complex128, error) {
	return TPhotonPion(s, -1.0, pionMass, virtuality)
}

// TPhotonPionMax is TPhotonPion evaluated at z = +1.
func TPhotonPionMax(s complex128, pionMass, virtuality float64) (complex128, error) {
	return TPhotonPion(s, 1.0, pionMass, virtuality)
}

// Critical describes the singular region where the photon+pion Mandelstam
// t hits the branch point at the two-pion threshold: a square in the
// complex plane bounded by vertical lines at Left and Right and horizontal
// lines at +/-ImaginaryRadius.
type Critical struct {
	PionMass   float64
	Virtuality float64
}

// ImaginaryRadius is an upper bound on the maximal imaginary extent of the
// critical region.
func (c Critical) ImaginaryRadius() float64 {
	return math.Abs(c.Virtuality-8.0*c.PionMass*c.PionMass) / 3.0
}

// Left is the left edge of the bounding square.
func (c Critical) Left() float64 {
	return 0.5 * (c.Virtuality - c.PionMass*c.PionMass)
}

// Right is the right edge of the bounding square.
func (c Critical) Right() float64 {
	return c.Virtuality - 5.0*c.PionMass*c.PionMass
}
