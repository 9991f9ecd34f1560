package khuritreiman

import (
	"fmt"

	"github.com/dispersiv/khuri/curve"
	"github.com/dispersiv/khuri/grid"
	"github.com/dispersiv/khuri/ktbasis"
	"github.com/dispersiv/khuri/omnes"
)

// Solve builds the contour, grid and Omnes function a Config describes,
// then solves the Khuri-Treiman equation for the requested number of
// subtractions, returning a Basis of analytic solution functions.
func Solve(cfg Config) (*ktbasis.Basis, error) {
	if cfg.Phase == nil {
		return nil, fmt.Errorf("Solve: %w", ErrMissingPhase)
	}
	if cfg.Amplitude == nil {
		return nil, fmt.Errorf("Solve: %w", ErrMissingAmplitude)
	}
	if cfg.Subtractions <= 0 {
		return nil, fmt.Errorf("Solve: %w", ErrInvalidSubtractions)
	}

	resolved := cfg.resolveDefaults()

	c, err := buildContour(resolved)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	segmentCounts := resolved.SegmentKnotCounts
	if len(segmentCounts) == 0 {
		boundaries := c.Boundaries()
		segmentCounts = make([]int, len(boundaries)-1)
		for i := range segmentCounts {
			segmentCounts[i] = defaultSegmentKnots
		}
	}

	g, err := grid.NewGrid(c, segmentCounts, resolved.ZKnotCount)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	o, err := omnes.NewInfiniteCut(resolved.Phase, 4.0*resolved.PionMass*resolved.PionMass, resolved.OmnesMinDistance, resolved.IntegratorSettings)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	basis, err := ktbasis.New(o, resolved.Amplitude, resolved.Subtractions, g, resolved.PionMass, resolved.Virtuality, resolved.Solver, resolved.IterationAccuracy, resolved.ThresholdDistance)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	return basis, nil
}

func buildContour(cfg Config) (*curve.Piecewise, error) {
	switch cfg.Contour {
	case RealContour:
		return curve.Real(cfg.Threshold, cfg.Cut)
	case VectorDecayContour:
		return curve.VectorDecay(cfg.PionMass, cfg.Virtuality, cfg.Cut)
	case AdaptiveContour:
		return curve.Adaptive(cfg.PionMass, cfg.Virtuality, cfg.Cut)
	default:
		return nil, ErrUnknownContour
	}
}
