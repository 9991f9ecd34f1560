package kinematics

import "math/cmplx"

// signumIm returns 1 if the imaginary part of x is non-negative, -1
// otherwise.
func signumIm(x complex128) float64 {
	if imag(x) >= 0.0 {
		return 1
	}
	return -1
}

// altSqrt is the square root with its branch cut on the positive real
// axis, unlike cmplx.Sqrt whose cut lies on the negative real axis.
func altSqrt(x complex128) complex128 {
	return complex(signumIm(x), 0) * cmplx.Sqrt(x)
}

// Rho is the two-body phase space with cuts along [4*mass^2, +inf) and
// (-inf, 0].
func Rho(mass float64, s complex128) complex128 {
	return altSqrt(1.0 - complex(4.0*mass*mass, 0)/s)
}

// Sigma is the two-body phase space with a single cut along [0, 4*mass^2].
func Sigma(mass float64, s complex128) complex128 {
	return cmplx.Sqrt(1.0 - complex(4.0*mass*mass, 0)/s)
}
