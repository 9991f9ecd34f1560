// Package grid builds the tensor-product (x,z) sampling grid the KT
// kernel is assembled over: Gauss–Legendre knots along a curve package
// Curve in the complex x-plane (piecewise, segment by segment), crossed
// with Gauss–Legendre knots for the scattering-angle cosine z in [-1,1].
package grid
