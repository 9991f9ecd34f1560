// Package kinematics provides the two-body phase-space functions and
// Mandelstam-variable machinery the rest of this module builds contours
// and kernels around: rho and sigma, the Kaellen function, the Mandelstam
// t and u variables for a general four-particle process, their
// specialisation to photon+pion -> pion+pion, a descriptor of the region
// where that specialisation's t variable goes complex, and a parametrised
// contour ("the egg") winding once around that region.
package kinematics
