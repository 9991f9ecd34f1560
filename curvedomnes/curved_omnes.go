package curvedomnes

import (
	"fmt"

	"github.com/dispersiv/khuri/curve"
	"github.com/dispersiv/khuri/omnes"
)

// CurvedOmnes wraps an ordinary Omnes function so that it continues onto
// the second Riemann sheet whenever the argument falls behind a curved
// cut instead of the real axis.
type CurvedOmnes struct {
	o         *omnes.Omnes
	amplitude func(complex128) complex128
	points    []complex128
}

// New builds a CurvedOmnes from the ordinary Omnes function o, the
// two-to-two amplitude associated with its phase, and the curve the cut
// follows. When the curve has at least four boundary knots, the first four
// are taken as a rectangle extending into the lower half plane and points
// inside it are evaluated on the second sheet; the predicate understands
// only that shape. A curve with fewer than four boundary knots, such as the
// two-knot real contour, carves out no rectangle, and the result evaluates
// on the first sheet everywhere.
func New(o *omnes.Omnes, amplitude func(complex128) complex128, c curve.Curve) (*CurvedOmnes, error) {
	if len(c.Boundaries()) < 4 {
		return &CurvedOmnes{o: o, amplitude: amplitude}, nil
	}
	points, err := firstPoints(c, 4)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return &CurvedOmnes{o: o, amplitude: amplitude, points: points}, nil
}

func firstPoints(c curve.Curve, size int) ([]complex128, error) {
	boundaries := c.Boundaries()
	if len(boundaries) < size {
		return nil, fmt.Errorf("%w: curve has %d, need %d", ErrInsufficientBoundaries, len(boundaries), size)
	}
	points := make([]complex128, size)
	for i := 0; i < size; i++ {
		p, err := c.Eval(boundaries[i])
		if err != nil {
			return nil, fmt.Errorf("firstPoints: %w", err)
		}
		points[i] = p
	}
	return points, nil
}

// onSecondSheet reports whether mandelstamS lies inside the rectangle
// carved out by the curve's first four boundary points, the signal that
// it has crossed behind the cut onto the second Riemann sheet. With fewer
// than four points it always reports false.
func onSecondSheet(points []complex128, mandelstamS complex128) bool {
	return len(points) >= 4 &&
		real(points[0]) < real(mandelstamS) &&
		real(mandelstamS) < real(points[3]) &&
		imag(points[1]) < imag(mandelstamS) &&
		imag(mandelstamS) < 0.0
}

// Eval evaluates the curved Omnes function at mandelstamS, continuing
// onto the second sheet when the point falls behind the curved cut.
func (c *CurvedOmnes) Eval(mandelstamS complex128) (complex128, error) {
	if onSecondSheet(c.points, mandelstamS) {
		value, err := c.o.SecondSheet(mandelstamS, c.amplitude)
		if err != nil {
			return 0, fmt.Errorf("CurvedOmnes.Eval: %w", err)
		}
		return value, nil
	}
	value, err := c.o.Eval(mandelstamS)
	if err != nil {
		return 0, fmt.Errorf("CurvedOmnes.Eval: %w", err)
	}
	return value, nil
}

// Original returns the ordinary (uncurved) Omnes function this
// CurvedOmnes wraps, needed wherever a kernel assembly step wants the
// right-hand-cut behaviour rather than the curved continuation.
func (c *CurvedOmnes) Original() *omnes.Omnes { return c.o }
