package omnes

import "errors"

// ErrInvalidArgument is returned for malformed constructor arguments,
// such as a non-positive minimal distance.
var ErrInvalidArgument = errors.New("omnes: invalid argument")
