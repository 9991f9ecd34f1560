package curve

import "errors"

var (
	// ErrInvalidArgument is returned when a Piecewise is built with a
	// mismatched number of knots and segment parametrisations, or when
	// two consecutive knots coincide.
	ErrInvalidArgument = errors.New("curve: invalid argument")

	// ErrOutOfRange is returned when Eval or Deriv is asked for a
	// parameter value outside [0, n].
	ErrOutOfRange = errors.New("curve: parameter outside domain of definition")

	// ErrUnknownParametrisation is returned for a segment tag other than
	// Linear or Quadratic.
	ErrUnknownParametrisation = errors.New("curve: invalid choice of parametrisation")

	// ErrQuadraticPV is returned by callers that need a principal-value
	// prescription on a quadratic segment; the reference implementation
	// never specifies that prescription (it assumes linear segments), so
	// this module surfaces the gap rather than guessing at one.
	ErrQuadraticPV = errors.New("curve: principal-value prescription is undefined on a quadratic segment")
)
