// Package numeric provides the numerical primitives the rest of this module
// is built on: fixed-order Gauss–Legendre quadrature, adaptive 1-D
// integration over finite and infinite intervals, and 1-D interpolation
// over strictly ascending abscissae, together with straightforward
// complex-valued extensions of each (a complex integral is its real and
// imaginary parts integrated independently; a complex interpolator is two
// real interpolators, one per component).
//
// None of this is specific to dispersion relations — it is the same kind
// of leaf-level numerics layer the rest of the module leans on the way a
// graph library leans on its core adjacency primitives.
package numeric
