package khuritreiman

import "errors"

var (
	// ErrMissingPhase is returned when a Config has no elastic phase shift.
	ErrMissingPhase = errors.New("khuritreiman: missing phase")
	// ErrMissingAmplitude is returned when a Config has no pi-pi amplitude.
	ErrMissingAmplitude = errors.New("khuritreiman: missing amplitude")
	// ErrInvalidSubtractions is returned for a non-positive subtraction count.
	ErrInvalidSubtractions = errors.New("khuritreiman: subtractions must be positive")
	// ErrUnknownContour is returned for a ContourKind outside the closed set
	// Real, VectorDecay and Adaptive.
	ErrUnknownContour = errors.New("khuritreiman: unknown contour kind")
)
