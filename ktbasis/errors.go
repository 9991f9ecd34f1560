package ktbasis

import "errors"

// ErrInvalidArgument is returned for malformed basis-function arguments,
// such as a subtraction index outside the basis's range.
var ErrInvalidArgument = errors.New("ktbasis: invalid argument")
