// Package curve provides parametrised complex contours: a Curve contract
// (evaluate, differentiate, test whether a point lies on the curve,
// report segment boundaries) and a concrete Piecewise implementation
// built from an ordered list of complex knots, each segment linear or
// quadratic in the curve parameter. Real, VectorDecay, and Adaptive build
// specific Piecewise instances for the three contour families the KT
// solver chooses between.
package curve
