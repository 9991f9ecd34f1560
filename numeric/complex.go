package numeric

import "fmt"

// ComplexSample is a single knot of a complex-valued function sampled
// along a real parameter line: its value, the real integration weight
// attached to that knot (if any), and the derivative of the underlying
// parametrisation at that point (if any). Packages downstream use this as
// the common currency for "a complex function tabulated on a grid".
type ComplexSample struct {
	Value      complex128
	Weight     float64
	Derivative complex128
}

// ComplexIntegrate integrates a complex-valued function of one real
// variable by integrating its real and imaginary parts independently with
// the supplied Integrator, in the manner of the reference implementation's
// c_integrate: a complex integral is nothing more than two real integrals
// run side by side.
func ComplexIntegrate(f func(float64) complex128, lower, upper float64, integrator Integrator) (complex128, float64, float64, error) {
	reValue, reErr, err := integrator.Integrate(func(x float64) float64 { return real(f(x)) }, lower, upper)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("ComplexIntegrate: real part: %w", err)
	}
	imValue, imErr, err := integrator.Integrate(func(x float64) float64 { return imag(f(x)) }, lower, upper)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("ComplexIntegrate: imaginary part: %w", err)
	}
	return complex(reValue, imValue), reErr, imErr, nil
}

// Curve is the minimal contour shape ComplexIntegrateAlongCurve needs:
// a point and its derivative at a real parameter u. The curve package's
// Curve interface satisfies this.
type Curve interface {
	Eval(u float64) complex128
	Deriv(u float64) complex128
}

// ComplexIntegrateAlongCurve integrates g along a parametrised contour c
// over u in [lower, upper] by composing g(c(u))·c'(u) and delegating to
// ComplexIntegrate, exactly the two-argument curve-aware overload the
// reference implementation's c_integrate provides alongside the plain
// one-argument form.
func ComplexIntegrateAlongCurve(g func(complex128) complex128, c Curve, lower, upper float64, integrator Integrator) (complex128, float64, float64, error) {
	integrand := func(u float64) complex128 {
		return g(c.Eval(u)) * c.Deriv(u)
	}
	value, reErr, imErr, err := ComplexIntegrate(integrand, lower, upper, integrator)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("ComplexIntegrateAlongCurve: %w", err)
	}
	return value, reErr, imErr, nil
}

// ComplexInterpolator interpolates a complex-valued function of one real
// variable by delegating separately to a real interpolator for the real
// part and one for the imaginary part, exactly as the reference
// implementation's Interpolate class does.
type ComplexInterpolator struct {
	re Interpolator
	im Interpolator
}

// NewComplexInterpolator builds a ComplexInterpolator from two
// independently constructed real interpolators, one per component.
func NewComplexInterpolator(re, im Interpolator) *ComplexInterpolator {
	return &ComplexInterpolator{re: re, im: im}
}

// Eval returns the interpolated complex value at x.
func (c *ComplexInterpolator) Eval(x float64) (complex128, error) {
	re, err := c.re.Eval(x)
	if err != nil {
		return 0, fmt.Errorf("ComplexInterpolator.Eval: real part: %w", err)
	}
	im, err := c.im.Eval(x)
	if err != nil {
		return 0, fmt.Errorf("ComplexInterpolator.Eval: imaginary part: %w", err)
	}
	return complex(re, im), nil
}

// NewComplexLinear builds a ComplexInterpolator backed by two Linear
// interpolators, one per component. This is the common case the KT basis
// evaluator uses to reconstruct a complex integrand from discrete samples.
func NewComplexLinear(xs []float64, ys []complex128, tolerant bool) (*ComplexInterpolator, error) {
	reYs := make([]float64, len(ys))
	imYs := make([]float64, len(ys))
	for i, y := range ys {
		reYs[i] = real(y)
		imYs[i] = imag(y)
	}
	re, err := NewLinear(xs, reYs, tolerant)
	if err != nil {
		return nil, fmt.Errorf("NewComplexLinear: %w", err)
	}
	im, err := NewLinear(xs, imYs, tolerant)
	if err != nil {
		return nil, fmt.Errorf("NewComplexLinear: %w", err)
	}
	return NewComplexInterpolator(re, im), nil
}
