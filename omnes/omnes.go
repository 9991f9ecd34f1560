package omnes

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/dispersiv/khuri/numeric"
)

// Omnes evaluates the Omnes function for a specific real phase. Each
// instance captures a different phase, threshold, and (optionally) an
// asymptotic constant and a finite cut where the phase saturates.
type Omnes struct {
	phaseBelow      func(float64) float64
	constant        float64
	threshold       float64
	cut             float64
	minimalDistance float64
	integrate       numeric.Integrator
	derivative      float64
}

// NewInfiniteCut builds an Omnes function whose phase is phase on
// [threshold, +inf) with no asymptotic constant: the common case where
// the phase is supplied (and assumed sensible) all the way to infinity.
func NewInfiniteCut(phase func(float64) float64, threshold, minimalDistance float64, settings numeric.Settings) (*Omnes, error) {
	return newOmnes(phase, 0.0, threshold, math.Inf(1), minimalDistance, settings)
}

// NewFiniteCut builds an Omnes function whose phase is phase on
// [threshold, cut) and constant for s >= cut.
func NewFiniteCut(phase func(float64) float64, constant, threshold, cut, minimalDistance float64, settings numeric.Settings) (*Omnes, error) {
	return newOmnes(phase, constant, threshold, cut, minimalDistance, settings)
}

func newOmnes(phase func(float64) float64, constant, threshold, cut, minimalDistance float64, settings numeric.Settings) (*Omnes, error) {
	if minimalDistance <= 0 {
		return nil, fmt.Errorf("NewOmnes: %w", ErrInvalidArgument)
	}
	integrate, err := numeric.NewCQUAD(settings)
	if err != nil {
		return nil, fmt.Errorf("NewOmnes: %w", err)
	}
	o := &Omnes{
		phaseBelow:      phase,
		constant:        constant,
		threshold:       threshold,
		cut:             cut,
		minimalDistance: minimalDistance,
		integrate:       integrate,
	}
	deriv, err := derivative0(phase, threshold, cut, constant, integrate)
	if err != nil {
		return nil, fmt.Errorf("NewOmnes: %w", err)
	}
	o.derivative = deriv
	return o, nil
}

// derivative0 computes the derivative of the Omnes function at s=0:
// (1/pi)*(integral_threshold^cut phase(x)/x^2 dx + constant/cut).
func derivative0(phase func(float64) float64, threshold, cut, constant float64, integrate numeric.Integrator) (float64, error) {
	first, _, err := integrate.Integrate(func(x float64) float64 {
		return phase(x) / (x * x)
	}, threshold, cut)
	if err != nil {
		return 0, fmt.Errorf("derivative0: %w", err)
	}
	second := constant / cut
	return (first + second) / math.Pi, nil
}

// DerivativeAtZero returns the Omnes function's derivative at the
// origin, computed once at construction time.
func (o *Omnes) DerivativeAtZero() float64 { return o.derivative }

// Eval evaluates the Omnes function at s, applying the Schwartz
// reflection principle for Im(s) < 0.
func (o *Omnes) Eval(s complex128) (complex128, error) {
	if imag(s) < 0 {
		value, err := o.upper(cmplx.Conj(s))
		if err != nil {
			return 0, err
		}
		return cmplx.Conj(value), nil
	}
	return o.upper(s)
}

func (o *Omnes) upper(s complex128) (complex128, error) {
	if o.hitsThreshold(s) {
		return o.thresholdPrescription(real(s))
	}
	if o.hitsCut(s) {
		return o.cutPrescription(real(s))
	}
	return o.ordinaryPrescription(s)
}

func (o *Omnes) hitsThreshold(s complex128) bool {
	return cmplx.Abs(s-complex(o.threshold, 0)) <= o.minimalDistance
}

func (o *Omnes) hitsCut(s complex128) bool {
	return real(s) >= o.threshold && math.Abs(imag(s)) <= o.minimalDistance
}

// thresholdPrescription averages the cut prescription just above
// threshold and the ordinary prescription just below it.
func (o *Omnes) thresholdPrescription(float64) (complex128, error) {
	cutSide, err := o.cutPrescription(o.threshold + o.minimalDistance)
	if err != nil {
		return 0, fmt.Errorf("thresholdPrescription: %w", err)
	}
	ordinarySide, err := o.ordinaryPrescription(complex(o.threshold-o.minimalDistance, 0))
	if err != nil {
		return 0, fmt.Errorf("thresholdPrescription: %w", err)
	}
	return (cutSide + ordinarySide) / 2.0, nil
}

// ordinaryPrescription is the principal-value-free dispersive integral,
// valid away from the cut and the threshold band.
func (o *Omnes) ordinaryPrescription(s complex128) (complex128, error) {
	aboveCut := cmplx.Log(1.0 - s/complex(o.cut, 0))
	integral, _, _, err := numeric.ComplexIntegrate(func(z float64) complex128 {
		return complex(o.phaseBelow(z), 0) / (complex(z, 0) * (complex(z, 0) - s))
	}, o.threshold, o.cut, o.integrate)
	if err != nil {
		return 0, fmt.Errorf("ordinaryPrescription: %w", err)
	}
	return cmplx.Exp((s*integral - complex(o.constant, 0)*aboveCut) / complex(math.Pi, 0)), nil
}

// cutPrescription evaluates Omega along the cut by computing its modulus
// and phase separately.
func (o *Omnes) cutPrescription(s float64) (complex128, error) {
	abs, err := o.absCut(s)
	if err != nil {
		return 0, fmt.Errorf("cutPrescription: %w", err)
	}
	return complex(abs, 0) * cmplx.Exp(complex(0, o.phase(s))), nil
}

func (o *Omnes) phase(s float64) float64 {
	if s < o.cut {
		return o.phaseBelow(s)
	}
	return o.constant
}

// absHelper computes log|1/(1-s/value)|, the closed-form log term that
// appears in the on-cut modulus formula.
func absHelper(s, value float64) float64 {
	temp := 1.0 - s/value
	return math.Log(math.Abs(1.0 / temp))
}

func (o *Omnes) absCut(s float64) (float64, error) {
	phaseAtS := o.phase(s)
	integral, _, err := o.integrate.Integrate(func(z float64) float64 {
		return (o.phaseBelow(z) - phaseAtS) / (z * (z - s))
	}, o.threshold, o.cut)
	if err != nil {
		return 0, fmt.Errorf("absCut: %w", err)
	}
	a := 0.0
	if s < o.cut {
		a = o.constant - phaseAtS
	}
	value := (s*integral + a*absHelper(s, o.cut) + phaseAtS*absHelper(s, o.threshold)) / math.Pi
	return math.Exp(value), nil
}

// SecondSheet evaluates the analytic continuation of Omega to the second
// Riemann sheet through the unitarity cut, given the ππ amplitude A
// associated with the phase.
func (o *Omnes) SecondSheet(s complex128, amplitude func(complex128) complex128) (complex128, error) {
	first, err := o.Eval(s)
	if err != nil {
		return 0, fmt.Errorf("SecondSheet: %w", err)
	}
	mass := math.Sqrt(o.threshold / 4.0)
	rho := rhoPhaseSpace(mass, s)
	return first / (1.0 + 2i*rho*amplitude(s)), nil
}

// rhoPhaseSpace mirrors kinematics.Rho without importing the kinematics
// package: Omnes's second sheet only needs rho, so it is inlined here
// rather than pulled in through a wider import.
func rhoPhaseSpace(mass float64, s complex128) complex128 {
	arg := 1.0 - complex(4.0*mass*mass, 0)/s
	root := cmplx.Sqrt(arg)
	if imag(arg) >= 0 {
		return root
	}
	return -root
}
