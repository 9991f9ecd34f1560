package numeric

import "errors"

// Sentinel errors returned by the adaptive integrators and interpolators in
// this package. Callers should use errors.Is to match against these rather
// than comparing error strings; the wrapping convention is
// fmt.Errorf("Func: %w", ErrX).
var (
	// ErrDivergent is returned when the integrand appears not to converge
	// on the requested interval.
	ErrDivergent = errors.New("numeric: integral appears divergent")

	// ErrMaxSubdivisions is returned when an adaptive integrator exhausts
	// its subdivision budget before reaching the requested tolerance.
	ErrMaxSubdivisions = errors.New("numeric: maximum subdivisions reached")

	// ErrRoundoff is returned when further subdivision cannot improve the
	// estimate because roundoff error dominates.
	ErrRoundoff = errors.New("numeric: roundoff error prevents convergence")

	// ErrBadIntegrand is returned when the integrand produced a
	// non-finite value (NaN or Inf) during evaluation.
	ErrBadIntegrand = errors.New("numeric: integrand produced a non-finite value")

	// ErrDomain is returned when an argument lies outside the domain a
	// function is defined on (e.g. strict-mode interpolation evaluated
	// outside the sampled interval).
	ErrDomain = errors.New("numeric: argument outside valid domain")

	// ErrAllocation is returned when a workspace of the requested size
	// cannot be prepared.
	ErrAllocation = errors.New("numeric: workspace allocation failed")

	// ErrInvalidArgument is returned for malformed configuration, such as
	// mismatched slice lengths or a non-positive point count.
	ErrInvalidArgument = errors.New("numeric: invalid argument")
)
