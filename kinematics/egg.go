package kinematics

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Egg is a closed contour winding once around the "egg"-shaped critical
// region where TPhotonPion becomes complex, parametrised by a single real
// variable x in [0, 4*unit]. It is not wired into the kernel solver
// itself (which places its contour via Critical instead), but is a
// self-contained piece of kinematics useful for diagnosing the region a
// dispersive contour must avoid.
type Egg struct {
	PionMass   float64
	Virtuality float64

	sGreater float64
	sSmaller float64
	unit     float64
}

// NewEgg builds the Egg parametrisation for the given pion mass and
// photon virtuality.
func NewEgg(pionMass, virtuality float64) (*Egg, error) {
	sGreater, err := SGreater(pionMass, virtuality)
	if err != nil {
		return nil, fmt.Errorf("NewEgg: %w", err)
	}
	sSmaller, err := SSmaller(pionMass, virtuality)
	if err != nil {
		return nil, fmt.Errorf("NewEgg: %w", err)
	}
	unit := math.Sqrt2 * math.Sqrt(sGreater-4.0*pionMass*pionMass)
	return &Egg{
		PionMass:   pionMass,
		Virtuality: virtuality,
		sGreater:   sGreater,
		sSmaller:   sSmaller,
		unit:       unit,
	}, nil
}

// change is the parameter value splitting the lower and upper segments of
// the winding, the midpoint of the full [0, 4*unit] range.
func (e *Egg) change() float64 {
	return 2.0 * e.unit
}

func changeOfVariables1(x, pionMass float64) float64 {
	return 4.0*pionMass*pionMass + x*x/4.0
}

func changeOfVariables2(x, pionMass, virtuality, unit float64) float64 {
	sGreater, _ := SGreater(pionMass, virtuality)
	temp := 2*unit - x
	return sGreater - temp*temp/4.0
}

func (e *Egg) insideRegion(x float64) error {
	if x < 0.0 || 2.0*e.unit < x {
		return fmt.Errorf("Egg: %w", ErrDomain)
	}
	return nil
}

// LowerSegment evaluates the lower half of the egg at parameter x in
// [0, 2*unit].
func (e *Egg) LowerSegment(x float64) (complex128, error) {
	if err := e.insideRegion(x); err != nil {
		return 0, fmt.Errorf("LowerSegment: %w", err)
	}
	var y float64
	if x <= e.unit {
		y = changeOfVariables1(x, e.PionMass)
	} else {
		y = changeOfVariables2(x, e.PionMass, e.Virtuality, e.unit)
	}
	return TPhotonPionMin(complex(y, 0), e.PionMass, e.Virtuality)
}

// UpperSegment evaluates the upper half of the egg at parameter x in
// [2*unit, 4*unit], defined as the complex conjugate of the lower segment
// reflected about the midpoint.
func (e *Egg) UpperSegment(x float64) (complex128, error) {
	lower, err := e.LowerSegment(4.0*e.unit - x)
	if err != nil {
		return 0, fmt.Errorf("UpperSegment: %w", err)
	}
	return cmplx.Conj(lower), nil
}

// Eval evaluates the full winding at parameter x in [0, 4*unit].
func (e *Egg) Eval(x float64) (complex128, error) {
	if x <= e.change() {
		return e.LowerSegment(x)
	}
	return e.UpperSegment(x)
}

// firstHalf is the derivative of LowerSegment for x <= unit.
func (e *Egg) firstHalf(x float64) complex128 {
	y := changeOfVariables1(x, e.PionMass)
	sig := real(Sigma(e.PionMass, complex(y, 0)))
	sq := math.Sqrt((y - e.sSmaller) * (e.sGreater - y))
	re := -x / 4.0
	m2 := e.PionMass * e.PionMass
	im := m2/(y*y)*sq*math.Sqrt(y) + x/8.0*sig*(e.sGreater+e.sSmaller-2.0*y)/sq
	return complex(re, -im)
}

// secondHalf is the derivative of LowerSegment for x > unit.
func (e *Egg) secondHalf(x float64) complex128 {
	y := changeOfVariables2(x, e.PionMass, e.Virtuality, e.unit)
	sig := real(Sigma(e.PionMass, complex(y, 0)))
	sq := math.Sqrt(y - e.sSmaller)
	shift := x/2.0 - e.unit
	re := shift / 2.0
	m2 := e.PionMass * e.PionMass
	im := -shift*m2/(y*y)*sq*math.Sqrt(y*(e.sGreater-y)/(y-4.0*m2)) +
		sig/4.0*(e.sGreater+e.sSmaller-2.0*y)/sq
	return complex(re, -im)
}

// LowerDerivative is the derivative of LowerSegment with respect to x.
func (e *Egg) LowerDerivative(x float64) (complex128, error) {
	if err := e.insideRegion(x); err != nil {
		return 0, fmt.Errorf("LowerDerivative: %w", err)
	}
	if x <= e.unit {
		return e.firstHalf(x), nil
	}
	return e.secondHalf(x), nil
}

// UpperDerivative is the derivative of UpperSegment with respect to x.
func (e *Egg) UpperDerivative(x float64) (complex128, error) {
	lower, err := e.LowerDerivative(4.0*e.unit - x)
	if err != nil {
		return 0, fmt.Errorf("UpperDerivative: %w", err)
	}
	return -cmplx.Conj(lower), nil
}

// Derivative is the derivative of Eval with respect to x over the full
// winding.
func (e *Egg) Derivative(x float64) (complex128, error) {
	if x <= e.change() {
		return e.LowerDerivative(x)
	}
	return e.UpperDerivative(x)
}

// Lower returns the winding parameter x at which the lower segment
// crosses a given real Mandelstam s in [4*pionMass^2, sGreater].
func (e *Egg) Lower(s float64) (float64, error) {
	threshold := 4 * e.PionMass * e.PionMass
	if s < threshold || e.sGreater < s {
		return 0, fmt.Errorf("Lower: %w", ErrDomain)
	}
	boundary := (e.sGreater + threshold) / 2.0
	if s < boundary {
		return 2.0 * math.Sqrt(s-threshold), nil
	}
	return 2.0 * (e.unit - math.Sqrt(e.sGreater-s)), nil
}

// Upper returns the winding parameter corresponding to the upper segment
// at the same real Mandelstam s.
func (e *Egg) Upper(s float64) (float64, error) {
	lower, err := e.Lower(s)
	if err != nil {
		return 0, fmt.Errorf("Upper: %w", err)
	}
	return 4.0*e.unit - lower, nil
}
