package ktkernel

import "errors"

// ErrInvalidArgument is returned for malformed solver arguments, such as
// a non-square kernel or a start vector of the wrong length.
var ErrInvalidArgument = errors.New("ktkernel: invalid argument")

// ErrSingular is returned when the direct solver encounters a zero pivot
// during LU decomposition.
var ErrSingular = errors.New("ktkernel: matrix is singular")

// ErrUnknownMethod is returned when ComputeBasis is asked to solve with a
// Method value other than Iteration or Inverse.
var ErrUnknownMethod = errors.New("ktkernel: unknown method")
