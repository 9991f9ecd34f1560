// Package ktbasis turns the discrete basis vectors ktkernel solves for
// into analytic functions of the Mandelstam variable: it interpolates the
// s-independent part of the dispersive integrand and applies either the
// Cauchy principal-value (on-contour) or ordinary (off-contour)
// prescription, averaging across the two-pion threshold where neither
// applies cleanly.
package ktbasis
