package curvedomnes

import "errors"

// ErrInsufficientBoundaries reports a curve with fewer boundary knots than
// a lookup of its leading points needs. New does not return it: a curve
// with fewer than four boundary knots is evaluated on the first sheet.
var ErrInsufficientBoundaries = errors.New("curvedomnes: curve has fewer than four boundary points")
