package ktbasis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/dispersiv/khuri/curve"
	"github.com/dispersiv/khuri/curvedomnes"
	"github.com/dispersiv/khuri/grid"
	"github.com/dispersiv/khuri/kinematics"
	"github.com/dispersiv/khuri/ktkernel"
	"github.com/dispersiv/khuri/numeric"
	"github.com/dispersiv/khuri/omnes"
)

// defaultThresholdDistance is the reference implementation's default
// minimal_distance used to average across the two-pion threshold.
const defaultThresholdDistance = 1e-4

// Basis is the solution basis to a Khuri-Treiman equation: subtractions
// independent solutions, each evaluable as an analytic function of a
// Mandelstam variable via dispersive reconstruction from discrete samples
// on a Grid.
type Basis struct {
	integrate       numeric.Integrator
	curvedOmnes     *curvedomnes.CurvedOmnes
	subtractions    int
	pionMass        float64
	minimalDistance float64
	grid            *grid.Grid
	integrands      []*numeric.ComplexInterpolator
}

// New builds the basis of the solution space to a KT problem: it
// assembles the integration kernel once and solves it for each
// subtraction power (via ktkernel.ComputeBasis), then prepares the interpolated,
// Mandelstam-s independent part of the dispersive integrand needed to
// evaluate each resulting basis function.
func New(omn *omnes.Omnes, piPi func(complex128) complex128, subtractions int, g *grid.Grid, pionMass, virtuality float64, method ktkernel.Method, accuracy, minimalDistance float64) (*Basis, error) {
	curved, err := curvedomnes.New(omn, piPi, g)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	vectors, err := ktkernel.ComputeBasis(curved, piPi, subtractions, g, pionMass, virtuality, method, accuracy)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	integrands := make([]*numeric.ComplexInterpolator, subtractions)
	for i, vector := range vectors {
		interp, err := basisIntegrand(omn, piPi, vector, g, pionMass)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		integrands[i] = interp
	}

	if minimalDistance <= 0 {
		minimalDistance = defaultThresholdDistance
	}
	integrator, err := numeric.NewCQUAD(numeric.DefaultSettings())
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Basis{
		integrate:       integrator,
		curvedOmnes:     curved,
		subtractions:    subtractions,
		pionMass:        pionMass,
		minimalDistance: minimalDistance,
		grid:            g,
		integrands:      integrands,
	}, nil
}

func index(xIndex, zIndex, zSize int) int { return xIndex*zSize + zIndex }

// discreteBasisIntegrand returns the Mandelstam-s independent part of the
// integrand needed to evaluate a basis function, sampled at every x-knot
// of g.
func discreteBasisIntegrand(o *omnes.Omnes, piPi func(complex128) complex128, basisVector []complex128, g *grid.Grid, pionMass float64) ([]complex128, error) {
	nX, nZ := g.XSize(), g.ZSize()
	result := make([]complex128, nX)
	for j := 0; j < nX; j++ {
		var sum complex128
		for b := 0; b < nZ; b++ {
			point, err := g.Point(j, b)
			if err != nil {
				return nil, fmt.Errorf("discreteBasisIntegrand: %w", err)
			}
			angular := complex(1.0-point.Z*point.Z, 0)
			sum += angular * basisVector[index(j, b, nZ)] * complex(point.ZWeight, 0)
		}
		x, err := g.X(j)
		if err != nil {
			return nil, fmt.Errorf("discreteBasisIntegrand: %w", err)
		}
		omnesAtX, err := o.Eval(x)
		if err != nil {
			return nil, fmt.Errorf("discreteBasisIntegrand: %w", err)
		}
		result[j] = sum * piPi(x) * kinematics.Sigma(pionMass, x) / omnesAtX
	}
	return result, nil
}

// basisIntegrand interpolates discreteBasisIntegrand linearly over the
// grid's x-parameter values, the cauchy::Interpolate counterpart in the
// reference implementation.
func basisIntegrand(o *omnes.Omnes, piPi func(complex128) complex128, basisVector []complex128, g *grid.Grid, pionMass float64) (*numeric.ComplexInterpolator, error) {
	discrete, err := discreteBasisIntegrand(o, piPi, basisVector, g, pionMass)
	if err != nil {
		return nil, fmt.Errorf("basisIntegrand: %w", err)
	}
	interp, err := numeric.NewComplexLinear(g.XParameterValues(), discrete, true)
	if err != nil {
		return nil, fmt.Errorf("basisIntegrand: %w", err)
	}
	return interp, nil
}

// isLinearSegment reports whether the curve's derivative is constant over
// [lower,upper], the condition the cut prescription's principal-value
// construction assumes. The reference implementation only ever exercises
// this on linear segments and documents the restriction in a comment
// rather than checking it; here it is checked explicitly.
func isLinearSegment(g *grid.Grid, lower, upper float64) (bool, error) {
	mid := (lower + upper) / 2.0
	dLower, err := g.Deriv(lower)
	if err != nil {
		return false, fmt.Errorf("isLinearSegment: %w", err)
	}
	dMid, err := g.Deriv(mid)
	if err != nil {
		return false, fmt.Errorf("isLinearSegment: %w", err)
	}
	return cmplx.Abs(dLower-dMid) < 1e-9, nil
}

// cutPrescription computes the dispersive integral assuming s sits on the
// contour and hits the linear segment [lower,upper], via Cauchy principal
// value.
func (b *Basis) cutPrescription(lower, upper float64, s complex128, f *numeric.ComplexInterpolator) (complex128, error) {
	linear, err := isLinearSegment(b.grid, lower, upper)
	if err != nil {
		return 0, fmt.Errorf("cutPrescription: %w", err)
	}
	if !linear {
		return 0, fmt.Errorf("cutPrescription: %w", curve.ErrQuadraticPV)
	}

	start, err := b.grid.Eval(lower)
	if err != nil {
		return 0, fmt.Errorf("cutPrescription: %w", err)
	}
	end, err := b.grid.Eval(upper)
	if err != nil {
		return 0, fmt.Errorf("cutPrescription: %w", err)
	}
	singularity := real((s-start)/(end-start)) + lower
	fs, err := f.Eval(singularity)
	if err != nil {
		return 0, fmt.Errorf("cutPrescription: %w", err)
	}
	logTerm := cmplx.Log((1.0 - s/end) / (s/start - 1.0))
	subMinusOne := complex(float64(b.subtractions-1), 0)

	h := func(x float64) complex128 {
		cx, err := b.grid.Eval(x)
		if err != nil {
			return cmplx.NaN()
		}
		fx, err := f.Eval(x)
		if err != nil {
			return cmplx.NaN()
		}
		return (fx/cmplx.Pow(cx, subMinusOne) - fs/cmplx.Pow(s, subMinusOne)) / cx / complex(x-singularity, 0)
	}
	result, _, _, err := numeric.ComplexIntegrate(h, lower, upper, b.integrate)
	if err != nil {
		return 0, fmt.Errorf("cutPrescription: %w", err)
	}
	return cmplx.Pow(s, complex(float64(b.subtractions), 0))*result +
		fs*(complex(0, math.Pi)+logTerm), nil
}

// ordinaryPrescription computes the dispersive integral over [lower,upper]
// assuming s does not hit the contour there.
func (b *Basis) ordinaryPrescription(lower, upper float64, s complex128, f *numeric.ComplexInterpolator) (complex128, error) {
	power := complex(float64(b.subtractions), 0)
	h := func(x float64) complex128 {
		cx, err := b.grid.Eval(x)
		if err != nil {
			return cmplx.NaN()
		}
		dx, err := b.grid.Deriv(x)
		if err != nil {
			return cmplx.NaN()
		}
		fx, err := f.Eval(x)
		if err != nil {
			return cmplx.NaN()
		}
		return fx / cmplx.Pow(cx, power) / (cx - s) * dx
	}
	result, _, _, err := numeric.ComplexIntegrate(h, lower, upper, b.integrate)
	if err != nil {
		return 0, fmt.Errorf("ordinaryPrescription: %w", err)
	}
	return cmplx.Pow(s, power) * result, nil
}

const tolerantEqualTolerance = 1e-16

func tolerantEqual(a, b float64) bool {
	return a-b < tolerantEqualTolerance && b-a < tolerantEqualTolerance
}

// segments returns all pairs of non-equal successive values in points.
func segments(points []float64) [][2]float64 {
	if len(points) < 2 {
		return nil
	}
	var result [][2]float64
	for i := 0; i < len(points)-1; i++ {
		if !tolerantEqual(points[i], points[i+1]) {
			result = append(result, [2]float64{points[i], points[i+1]})
		}
	}
	return result
}

// segmentsWithout returns segments(points) excluding value.
func segmentsWithout(points []float64, value [2]float64) [][2]float64 {
	all := segments(points)
	result := make([][2]float64, 0, len(all))
	for _, s := range all {
		if s != value {
			result = append(result, s)
		}
	}
	return result
}

// Eval evaluates the i-th basis function (the one whose subtraction
// polynomial is s^i) at the Mandelstam variable s.
func (b *Basis) Eval(i int, s complex128) (complex128, error) {
	if i < 0 || i >= b.subtractions {
		return 0, fmt.Errorf("Eval: subtraction index %d: %w", i, ErrInvalidArgument)
	}

	threshold := 4.0 * b.pionMass * b.pionMass
	if cmplx.Abs(s-complex(threshold, 0)) < b.minimalDistance {
		shift := b.minimalDistance * 1.1
		lower, err := b.Eval(i, s-complex(shift, 0))
		if err != nil {
			return 0, err
		}
		upper, err := b.Eval(i, s+complex(shift, 0))
		if err != nil {
			return 0, err
		}
		return (lower + upper) / 2.0, nil
	}

	integrand := b.integrands[i]
	var dispersiveIntegral complex128
	if lo, hi, ok := b.grid.Hits(s); ok {
		x0 := b.grid.XParameterLower()
		x3 := b.grid.XParameterUpper()
		hitSegment := [2]float64{lo, hi}
		intervals := segmentsWithout([]float64{x0, lo, hi, x3}, hitSegment)

		value, err := b.cutPrescription(lo, hi, s, integrand)
		if err != nil {
			return 0, fmt.Errorf("Eval: %w", err)
		}
		dispersiveIntegral = value
		for _, interval := range intervals {
			contribution, err := b.ordinaryPrescription(interval[0], interval[1], s, integrand)
			if err != nil {
				return 0, fmt.Errorf("Eval: %w", err)
			}
			dispersiveIntegral += contribution
		}
	} else {
		value, err := b.ordinaryPrescription(b.grid.XParameterLower(), b.grid.XParameterUpper(), s, integrand)
		if err != nil {
			return 0, fmt.Errorf("Eval: %w", err)
		}
		dispersiveIntegral = value
	}

	curvedValue, err := b.curvedOmnes.Eval(s)
	if err != nil {
		return 0, fmt.Errorf("Eval: %w", err)
	}
	power := cmplx.Pow(s, complex(float64(i), 0))
	return curvedValue * (power + complex(1.5/math.Pi, 0)*dispersiveIntegral), nil
}

// Subtractions returns the number of basis functions.
func (b *Basis) Subtractions() int { return b.subtractions }
