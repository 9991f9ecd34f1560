// Package curvedomnes builds an Omnes function whose cut follows an
// arbitrary piecewise curve instead of the real axis, by detecting when
// an evaluation point falls behind the cut on the second Riemann sheet
// and continuing the ordinary Omnes function there.
package curvedomnes
