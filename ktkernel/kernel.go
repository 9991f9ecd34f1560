package ktkernel

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/dispersiv/khuri/curvedomnes"
	"github.com/dispersiv/khuri/grid"
	"github.com/dispersiv/khuri/kinematics"
)

// index converts a two-dimensional (x,z) grid index into the flat
// one-dimensional index the kernel matrix and its vectors use.
func index(xIndex, zIndex, zSize int) int { return xIndex*zSize + zIndex }

// angular is the 1-z^2 angular weight attached to a grid's z-knots.
func angular(z float64) float64 { return 1.0 - z*z }

// tAt evaluates Mandelstam t at grid point (xIndex,zIndex).
func tAt(g *grid.Grid, xIndex, zIndex int, pionMass, virtuality float64) (complex128, error) {
	p, err := g.Point(xIndex, zIndex)
	if err != nil {
		return 0, fmt.Errorf("tAt: %w", err)
	}
	t, err := kinematics.TPhotonPion(p.X, p.Z, pionMass, virtuality)
	if err != nil {
		return 0, fmt.Errorf("tAt: %w", err)
	}
	return t, nil
}

// SampleOnGrid samples f at Mandelstam t over every (x,z) knot of g,
// flattening the result in the kernel's row-major index order.
func SampleOnGrid(f func(complex128) complex128, g *grid.Grid, pionMass, virtuality float64) ([]complex128, error) {
	nX, nZ := g.XSize(), g.ZSize()
	result := make([]complex128, nX*nZ)
	for i := 0; i < nX; i++ {
		for a := 0; a < nZ; a++ {
			t, err := tAt(g, i, a, pionMass, virtuality)
			if err != nil {
				return nil, fmt.Errorf("SampleOnGrid: %w", err)
			}
			result[index(i, a, nZ)] = f(t)
		}
	}
	return result, nil
}

// generateXDependent computes the x_j-dependent terms of the integration
// kernel: pi_pi(x)/o(x) * sigma(pion_mass, x) / x^subtractions.
func generateXDependent(o omnesEval, piPi func(complex128) complex128, g *grid.Grid, pionMass float64, subtractions int) ([]complex128, error) {
	nX := g.XSize()
	result := make([]complex128, nX)
	for j := 0; j < nX; j++ {
		x, err := g.X(j)
		if err != nil {
			return nil, fmt.Errorf("generateXDependent: %w", err)
		}
		omnesAtX, err := o.Eval(x)
		if err != nil {
			return nil, fmt.Errorf("generateXDependent: %w", err)
		}
		result[j] = piPi(x) / omnesAtX * kinematics.Sigma(pionMass, x) / cmplx.Pow(x, complex(float64(subtractions), 0))
	}
	return result, nil
}

// omnesEval is the minimal contract generateXDependent and GenerateKernel
// need from an Omnes-like function: ordinary for the x-dependent terms,
// curved for the t-dependent ones below.
type omnesEval interface {
	Eval(s complex128) (complex128, error)
}

// GenerateKernel computes the dense integration kernel matrix for a KT
// problem on grid g, following generate_kernel's assembly exactly: an
// x_j-dependent column factor, a t(x_i,z_a)-dependent row factor, and a
// Cauchy denominator coupling the two.
func GenerateKernel(o *curvedomnes.CurvedOmnes, piPi func(complex128) complex128, g *grid.Grid, pionMass, virtuality float64, subtractions int) (*Matrix, error) {
	nX, nZ := g.XSize(), g.ZSize()
	n := nX * nZ
	result, err := NewMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("GenerateKernel: %w", err)
	}

	xDependent, err := generateXDependent(o.Original(), piPi, g, pionMass, subtractions)
	if err != nil {
		return nil, fmt.Errorf("GenerateKernel: %w", err)
	}

	t := make([]complex128, n)
	tDependent := make([]complex128, n)
	for i := 0; i < nX; i++ {
		for a := 0; a < nZ; a++ {
			in := index(i, a, nZ)
			value, err := tAt(g, i, a, pionMass, virtuality)
			if err != nil {
				return nil, fmt.Errorf("GenerateKernel: %w", err)
			}
			t[in] = value
			omnesAtT, err := o.Eval(value)
			if err != nil {
				return nil, fmt.Errorf("GenerateKernel: %w", err)
			}
			tDependent[in] = omnesAtT * cmplx.Pow(value, complex(float64(subtractions), 0))
		}
	}

	coeff := complex(1.5/math.Pi, 0)
	for i := 0; i < nX; i++ {
		for a := 0; a < nZ; a++ {
			in := index(i, a, nZ)
			tTerm := tDependent[in]
			for j := 0; j < nX; j++ {
				xTerm := xDependent[j]
				xj, err := g.X(j)
				if err != nil {
					return nil, fmt.Errorf("GenerateKernel: %w", err)
				}
				cauchy := xj - t[in]
				for b := 0; b < nZ; b++ {
					point, err := g.Point(j, b)
					if err != nil {
						return nil, fmt.Errorf("GenerateKernel: %w", err)
					}
					weight := complex(point.XWeight*point.ZWeight, 0)
					value := coeff * xTerm * tTerm * weight * complex(angular(point.Z), 0) * point.XDerivative / cauchy
					result.Set(in, index(j, b, nZ), value)
				}
			}
		}
	}
	return result, nil
}

// maxSquaredDistance returns the largest squared entrywise difference
// between a and b.
func maxSquaredDistance(a, b []complex128) float64 {
	max := 0.0
	for i := range a {
		d := a[i] - b[i]
		sq := real(d)*real(d) + imag(d)*imag(d)
		if sq > max {
			max = sq
		}
	}
	return max
}

// Iterate solves (I-kernel)*x = start by Neumann iteration:
// x_0 = start, x_{n+1} = start + kernel*x_n, until the squared entrywise
// difference between successive iterates falls below accuracy.
func Iterate(kernel *Matrix, start []complex128, accuracy float64) ([]complex128, error) {
	previous := start
	contribution, err := kernel.MulVec(previous)
	if err != nil {
		return nil, fmt.Errorf("Iterate: %w", err)
	}
	next := addVec(start, contribution)
	for maxSquaredDistance(previous, next) > accuracy {
		previous = next
		contribution, err = kernel.MulVec(next)
		if err != nil {
			return nil, fmt.Errorf("Iterate: %w", err)
		}
		next = addVec(start, contribution)
	}
	return next, nil
}

func addVec(a, b []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Invert solves (I-kernel)*x = start by direct LU-based inversion.
func Invert(kernel *Matrix, start []complex128) ([]complex128, error) {
	identity, err := Identity(kernel.Size())
	if err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	system, err := Sub(identity, kernel)
	if err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	x, err := Solve(system, start)
	if err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	return x, nil
}

// Method selects how ComputeBasis solves the KT linear system.
type Method int

const (
	// Iteration solves via Neumann iteration.
	Iteration Method = iota
	// Inverse solves via direct LU-based matrix inversion.
	Inverse
)

const defaultIterationAccuracy = 1e-8

// ComputeBasis computes the subtractions basis vectors for a KT problem:
// for each power i in [0,subtractions), solves (I-kernel)*x = t^i*Omega(t)
// by the requested method, returning one solution vector per subtraction.
func ComputeBasis(o *curvedomnes.CurvedOmnes, piPi func(complex128) complex128, subtractions int, g *grid.Grid, pionMass, virtuality float64, method Method, accuracy float64) ([][]complex128, error) {
	kernel, err := GenerateKernel(o, piPi, g, pionMass, virtuality, subtractions)
	if err != nil {
		return nil, fmt.Errorf("ComputeBasis: %w", err)
	}
	omnesStart, err := SampleOnGrid(func(s complex128) complex128 {
		value, evalErr := o.Eval(s)
		if evalErr != nil {
			return cmplx.NaN()
		}
		return value
	}, g, pionMass, virtuality)
	if err != nil {
		return nil, fmt.Errorf("ComputeBasis: %w", err)
	}

	if accuracy <= 0 {
		accuracy = defaultIterationAccuracy
	}

	result := make([][]complex128, subtractions)
	for i := 0; i < subtractions; i++ {
		power := i
		polynomial, err := SampleOnGrid(func(s complex128) complex128 {
			return cmplx.Pow(s, complex(float64(power), 0))
		}, g, pionMass, virtuality)
		if err != nil {
			return nil, fmt.Errorf("ComputeBasis: %w", err)
		}
		start := make([]complex128, len(polynomial))
		for k := range start {
			start[k] = polynomial[k] * omnesStart[k]
		}

		switch method {
		case Iteration:
			solution, err := Iterate(kernel, start, accuracy)
			if err != nil {
				return nil, fmt.Errorf("ComputeBasis: %w", err)
			}
			result[i] = solution
		case Inverse:
			solution, err := Invert(kernel, start)
			if err != nil {
				return nil, fmt.Errorf("ComputeBasis: %w", err)
			}
			result[i] = solution
		default:
			return nil, fmt.Errorf("ComputeBasis: %w", ErrUnknownMethod)
		}
	}
	return result, nil
}
