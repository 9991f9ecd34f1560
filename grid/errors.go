package grid

import "errors"

var (
	// ErrInvalidArgument is returned when the number of per-segment knot
	// counts does not match the number of curve segments, or an index is
	// requested outside the grid's bounds.
	ErrInvalidArgument = errors.New("grid: invalid argument")
)
