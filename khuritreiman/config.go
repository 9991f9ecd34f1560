package khuritreiman

import (
	"github.com/dispersiv/khuri/ktkernel"
	"github.com/dispersiv/khuri/numeric"
)

// ContourKind selects which curve family Solve builds the integration
// contour from, mirroring the closed set curve.Real/VectorDecay/Adaptive
// already implement.
type ContourKind int

const (
	// RealContour is the two-knot contour running along the real axis
	// from Threshold to Cut; valid only below the three-pion threshold.
	RealContour ContourKind = iota
	// VectorDecayContour is the six-knot Gasser-Rusetsky contour for decay
	// kinematics at a fixed virtuality.
	VectorDecayContour
	// AdaptiveContour is the six-knot contour shaped from the Critical
	// descriptor, valid for arbitrary virtualities above threshold.
	AdaptiveContour
)

// Deterministic defaults, named rather than inlined.
const (
	defaultSegmentKnots    = 8
	defaultZKnotCount      = 8
	defaultThresholdDist  = 1e-4
	defaultOmnesMinDist   = 1e-10
	defaultIterationAccur = 1e-8
)

// Config collects every knob needed to set up and solve a Khuri-Treiman
// problem in one call to Solve. Phase, Amplitude, PionMass, Virtuality,
// Cut and a positive Subtractions are used as given (Solve rejects a
// non-positive Subtractions); Threshold, SegmentKnotCounts, ZKnotCount,
// IntegratorSettings, ThresholdDistance, OmnesMinDistance and
// IterationAccuracy resolve to deterministic defaults when left unset.
type Config struct {
	// Phase is the elastic pi-pi scattering phase shift (radians) feeding
	// the Omnes function.
	Phase func(float64) float64
	// Amplitude is the pi-pi partial wave amplitude used by the kernel's
	// curved-Omnes second-sheet continuation.
	Amplitude func(complex128) complex128

	PionMass     float64
	Virtuality   float64
	Subtractions int

	Contour   ContourKind
	Threshold float64 // RealContour only; defaults to 4*PionMass^2
	Cut       float64 // all contours

	SegmentKnotCounts []int // defaults to defaultSegmentKnots per segment
	ZKnotCount        int   // defaults to defaultZKnotCount

	Solver             ktkernel.Method
	IntegratorSettings numeric.Settings
	ThresholdDistance  float64 // default 1e-4
	OmnesMinDistance   float64 // default 1e-10
	IterationAccuracy  float64 // default 1e-8, used only when Solver == Iteration
}

func (cfg Config) resolveDefaults() Config {
	resolved := cfg
	if resolved.Threshold == 0 {
		resolved.Threshold = 4.0 * resolved.PionMass * resolved.PionMass
	}
	if resolved.ZKnotCount == 0 {
		resolved.ZKnotCount = defaultZKnotCount
	}
	if resolved.ThresholdDistance == 0 {
		resolved.ThresholdDistance = defaultThresholdDist
	}
	if resolved.OmnesMinDistance == 0 {
		resolved.OmnesMinDistance = defaultOmnesMinDist
	}
	if resolved.IterationAccuracy == 0 {
		resolved.IterationAccuracy = defaultIterationAccur
	}
	if (resolved.IntegratorSettings == numeric.Settings{}) {
		resolved.IntegratorSettings = numeric.DefaultSettings()
	}
	return resolved
}
