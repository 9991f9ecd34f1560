package grid

import (
	"fmt"

	"github.com/dispersiv/khuri/curve"
	"github.com/dispersiv/khuri/numeric"
)

// Point is a single sample in the (x,z)-plane: a complex x-value (and its
// weight and curve derivative) paired with a real z-value and its weight.
type Point struct {
	X           complex128
	XWeight     float64
	XDerivative complex128
	Z           float64
	ZWeight     float64
}

const (
	zLower = -1.0
	zUpper = 1.0
)

// sample is one Gauss-Legendre knot along the x-curve: the curve's
// value, its derivative, the raw parameter abscissa, and the quadrature
// weight at that abscissa.
type sample struct {
	x          complex128
	derivative complex128
	parameter  float64
	weight     float64
}

// Grid is the tensor product of Gauss–Legendre knots along a Curve in the
// complex x-plane and Gauss–Legendre knots for z in [-1,1].
type Grid struct {
	curve          curve.Curve
	xLower, xUpper float64
	xKnots         []sample
	zKnots         []numeric.Knot
}

// NewGrid builds a Grid over c, sampling xSizes[k] Gauss–Legendre knots
// along segment k (so len(xSizes) must equal the number of segments of
// c) and zSize knots along z.
func NewGrid(c curve.Curve, xSizes []int, zSize int) (*Grid, error) {
	boundaries := c.Boundaries()
	if len(boundaries) != len(xSizes)+1 {
		return nil, fmt.Errorf("NewGrid: each segment requires a number of knots: %w", ErrInvalidArgument)
	}

	var xKnots []sample
	for i, n := range xSizes {
		segment, err := knotsAlongCurve(c, boundaries[i], boundaries[i+1], n)
		if err != nil {
			return nil, fmt.Errorf("NewGrid: %w", err)
		}
		xKnots = append(xKnots, segment...)
	}

	zGL, err := numeric.NewGaussLegendre(zSize)
	if err != nil {
		return nil, fmt.Errorf("NewGrid: %w", err)
	}
	zKnots := make([]numeric.Knot, zSize)
	for i := 0; i < zSize; i++ {
		k, err := zGL.Point(zLower, zUpper, i)
		if err != nil {
			return nil, fmt.Errorf("NewGrid: %w", err)
		}
		zKnots[i] = k
	}

	return &Grid{
		curve:  c,
		xLower: boundaries[0],
		xUpper: boundaries[len(boundaries)-1],
		xKnots: xKnots,
		zKnots: zKnots,
	}, nil
}

// knotsAlongCurve samples n Gauss-Legendre knots of c and its derivative
// over the parameter interval [start, end].
func knotsAlongCurve(c curve.Curve, start, end float64, n int) ([]sample, error) {
	gl, err := numeric.NewGaussLegendre(n)
	if err != nil {
		return nil, err
	}
	result := make([]sample, n)
	for i := 0; i < n; i++ {
		k, err := gl.Point(start, end, i)
		if err != nil {
			return nil, err
		}
		value, err := c.Eval(k.Point)
		if err != nil {
			return nil, err
		}
		deriv, err := c.Deriv(k.Point)
		if err != nil {
			return nil, err
		}
		result[i] = sample{x: value, derivative: deriv, parameter: k.Point, weight: k.Weight}
	}
	return result, nil
}

// Point returns the grid point at x-index i and z-index a.
func (g *Grid) Point(i, a int) (Point, error) {
	if i < 0 || i >= len(g.xKnots) {
		return Point{}, fmt.Errorf("Point: x index %d: %w", i, ErrInvalidArgument)
	}
	if a < 0 || a >= len(g.zKnots) {
		return Point{}, fmt.Errorf("Point: z index %d: %w", a, ErrInvalidArgument)
	}
	x := g.xKnots[i]
	z := g.zKnots[a]
	return Point{
		X:           x.x,
		XWeight:     x.weight,
		XDerivative: x.derivative,
		Z:           z.Point,
		ZWeight:     z.Weight,
	}, nil
}

// X returns the x-value at x-index i.
func (g *Grid) X(i int) (complex128, error) {
	if i < 0 || i >= len(g.xKnots) {
		return 0, fmt.Errorf("X: index %d: %w", i, ErrInvalidArgument)
	}
	return g.xKnots[i].x, nil
}

// Derivative returns the curve derivative at x-index i.
func (g *Grid) Derivative(i int) (complex128, error) {
	if i < 0 || i >= len(g.xKnots) {
		return 0, fmt.Errorf("Derivative: index %d: %w", i, ErrInvalidArgument)
	}
	return g.xKnots[i].derivative, nil
}

// Z returns the z-value at z-index a.
func (g *Grid) Z(a int) (float64, error) {
	if a < 0 || a >= len(g.zKnots) {
		return 0, fmt.Errorf("Z: index %d: %w", a, ErrInvalidArgument)
	}
	return g.zKnots[a].Point, nil
}

// XSize is the number of x-knots.
func (g *Grid) XSize() int { return len(g.xKnots) }

// ZSize is the number of z-knots.
func (g *Grid) ZSize() int { return len(g.zKnots) }

// XParameterLower is the curve parameter at the start of the x-curve.
func (g *Grid) XParameterLower() float64 { return g.xLower }

// XParameterUpper is the curve parameter at the end of the x-curve.
func (g *Grid) XParameterUpper() float64 { return g.xUpper }

// XParameterValues returns the raw parameter abscissae of the x-knots, in
// the order they were sampled. The basis evaluator interpolates over
// these values.
func (g *Grid) XParameterValues() []float64 {
	result := make([]float64, len(g.xKnots))
	for i, k := range g.xKnots {
		result[i] = k.parameter
	}
	return result
}

// Eval evaluates the underlying curve at parameter u. Grid acts as a
// decorator over the curve it samples, so this delegates directly to it,
// the way the reference implementation's Grid<T> inherits from its
// curve type T.
func (g *Grid) Eval(u float64) (complex128, error) { return g.curve.Eval(u) }

// Deriv evaluates the underlying curve's derivative at parameter u.
func (g *Grid) Deriv(u float64) (complex128, error) { return g.curve.Deriv(u) }

// Hits reports whether s lies on the underlying curve and, if so, the
// parameter bounds of the segment it hits.
func (g *Grid) Hits(s complex128) (lo, hi float64, ok bool) { return g.curve.Hits(s) }

// Boundaries returns the parameter values bounding the underlying
// curve's segments, delegating to it.
func (g *Grid) Boundaries() []float64 { return g.curve.Boundaries() }
