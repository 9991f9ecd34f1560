// Package omnes evaluates the Omnes function of an arbitrary real phase:
// an analytic function whose phase equals the supplied phase along a
// branch cut and which solves the corresponding homogeneous dispersion
// relation. It provides the threshold, on-cut, and ordinary prescriptions
// needed to evaluate arbitrarily close to or on the cut, the derivative
// at the origin, and the second-Riemann-sheet continuation needed by the
// KT kernel.
package omnes
