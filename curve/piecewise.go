package curve

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Parametrisation tags the curve family a Piecewise segment follows.
type Parametrisation int

const (
	// Linear segments are A + B*(u-k).
	Linear Parametrisation = iota
	// Quadratic segments are A + B*(u-k)^2.
	Quadratic
)

// minimalDistance is the geometric tolerance used both to reject
// coincident knots and to decide whether a probe point lies on a
// segment's connecting line.
const minimalDistance = 1e-10

// piece holds the per-segment representation: delta (the difference
// between consecutive knots, or its generalisation) and offset (the
// segment's starting knot).
type piece struct {
	delta  complex128
	offset complex128
}

// Curve is the minimal contract every contour satisfies: evaluate and
// differentiate at a real parameter, test whether a complex point lies on
// the contour (and in which segment), and report the parameter values of
// the knots.
type Curve interface {
	Eval(u float64) (complex128, error)
	Deriv(u float64) (complex128, error)
	Hits(s complex128) (lo, hi float64, ok bool)
	Boundaries() []float64
}

// Piecewise is a contour built from an ordered sequence of complex knots
// connected by linear or quadratic segments. Parameter u ranges over
// [0, n] where n is the number of segments; segment k spans u in [k,k+1].
type Piecewise struct {
	parametrisations []Parametrisation
	pieces           []piece
	adjacent         [][2]complex128
}

// AllLinear returns a slice of n Linear tags, the common case of an
// entirely straight-line polyline.
func AllLinear(n int) []Parametrisation {
	out := make([]Parametrisation, n)
	for i := range out {
		out[i] = Linear
	}
	return out
}

// NewPiecewise builds a piecewise contour through knots connected
// according to parametrisations. len(parametrisations) must equal
// len(knots)-1, and consecutive knots must differ by at least
// minimalDistance.
func NewPiecewise(knots []complex128, parametrisations []Parametrisation) (*Piecewise, error) {
	if len(parametrisations)+1 != len(knots) {
		return nil, fmt.Errorf("NewPiecewise: each curve segment needs one parametrisation: %w", ErrInvalidArgument)
	}
	if len(knots) < 2 {
		return nil, fmt.Errorf("NewPiecewise: at least two knots required: %w", ErrInvalidArgument)
	}
	n := len(parametrisations)
	pieces := make([]piece, n)
	adjacent := make([][2]complex128, n)
	for i := 0; i < n; i++ {
		if cmplx.Abs(knots[i+1]-knots[i]) < minimalDistance {
			return nil, fmt.Errorf("NewPiecewise: knots %d and %d coincide: %w", i, i+1, ErrInvalidArgument)
		}
		pieces[i] = piece{delta: knots[i+1] - knots[i], offset: knots[i]}
		adjacent[i] = [2]complex128{knots[i], knots[i+1]}
	}
	return &Piecewise{parametrisations: parametrisations, pieces: pieces, adjacent: adjacent}, nil
}

// Lower is the parameter value at the start of the curve: always 0.
func (p *Piecewise) Lower() float64 { return 0.0 }

// Upper is the parameter value at the end of the curve: the segment
// count.
func (p *Piecewise) Upper() float64 { return float64(len(p.pieces)) }

// PieceIndex returns the index of the segment containing parameter x,
// saturating at the last segment when x equals Upper().
func (p *Piecewise) PieceIndex(x float64) (int, error) {
	if x < p.Lower() || x > p.Upper() {
		return 0, fmt.Errorf("PieceIndex(%g): %w", x, ErrOutOfRange)
	}
	index := int(x)
	if float64(index) == p.Upper() {
		return index - 1, nil
	}
	return index, nil
}

// Eval implements Curve.
func (p *Piecewise) Eval(x float64) (complex128, error) {
	k, err := p.PieceIndex(x)
	if err != nil {
		return 0, fmt.Errorf("Eval: %w", err)
	}
	pc := p.pieces[k]
	u := complex(x-float64(k), 0)
	switch p.parametrisations[k] {
	case Linear:
		return pc.delta*u + pc.offset, nil
	case Quadratic:
		return pc.delta*u*u + pc.offset, nil
	default:
		return 0, fmt.Errorf("Eval: %w", ErrUnknownParametrisation)
	}
}

// Deriv implements Curve.
func (p *Piecewise) Deriv(x float64) (complex128, error) {
	k, err := p.PieceIndex(x)
	if err != nil {
		return 0, fmt.Errorf("Deriv: %w", err)
	}
	pc := p.pieces[k]
	switch p.parametrisations[k] {
	case Linear:
		return pc.delta, nil
	case Quadratic:
		return 2.0 * pc.delta * complex(x-float64(k), 0), nil
	default:
		return 0, fmt.Errorf("Deriv: %w", ErrUnknownParametrisation)
	}
}

// inBetween reports whether x lies on the segment connecting a and b,
// within minimalDistance, using the classic "sum of distances equals the
// segment length" test.
func inBetween(x, a, b complex128) bool {
	difference := cmplx.Abs(x-a) + cmplx.Abs(x-b) - cmplx.Abs(a-b)
	return math.Abs(difference) < minimalDistance
}

// Hits implements Curve: it reports the segment parameter interval
// containing s, if any.
func (p *Piecewise) Hits(s complex128) (lo, hi float64, ok bool) {
	for i, adj := range p.adjacent {
		if inBetween(s, adj[0], adj[1]) {
			return float64(i), float64(i + 1), true
		}
	}
	return 0, 0, false
}

// Boundaries implements Curve: the parameter values 0, 1, ..., n of the
// knots.
func (p *Piecewise) Boundaries() []float64 {
	result := make([]float64, len(p.pieces)+1)
	for i := range result {
		result[i] = p.Lower() + float64(i)
	}
	return result
}
