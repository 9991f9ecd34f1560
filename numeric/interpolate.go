package numeric

import (
	"fmt"
	"sort"
)

// Interpolator evaluates an interpolated function of one real variable.
// Implementations are immutable once constructed and therefore safe to
// share and evaluate concurrently.
type Interpolator interface {
	// Eval returns the interpolated value at x. In tolerant mode x outside
	// the sampled interval is clamped to the nearest endpoint value; in
	// strict mode it returns ErrDomain.
	Eval(x float64) (float64, error)
}

// boundary holds the abscissae shared by every concrete interpolator and
// implements the tolerant/strict out-of-range policy common to all of
// them.
type boundary struct {
	xs       []float64
	tolerant bool
}

func newBoundary(xs []float64, ys []float64, minSize int, tolerant bool) (boundary, error) {
	if len(xs) != len(ys) {
		return boundary{}, fmt.Errorf("newBoundary: %w", ErrInvalidArgument)
	}
	if len(xs) < minSize {
		return boundary{}, fmt.Errorf("newBoundary: need at least %d points: %w", minSize, ErrInvalidArgument)
	}
	if !sort.Float64sAreSorted(xs) {
		return boundary{}, fmt.Errorf("newBoundary: abscissae must be strictly ascending: %w", ErrInvalidArgument)
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] {
			return boundary{}, fmt.Errorf("newBoundary: abscissae must be strictly ascending: %w", ErrInvalidArgument)
		}
	}
	return boundary{xs: xs, tolerant: tolerant}, nil
}

// clamp returns the effective evaluation point, or an error in strict mode
// if x lies outside [xs[0], xs[len-1]].
func (b boundary) clamp(x float64) (float64, error) {
	front, back := b.xs[0], b.xs[len(b.xs)-1]
	if x < front {
		if !b.tolerant {
			return 0, fmt.Errorf("Eval(%g): %w", x, ErrDomain)
		}
		return front, nil
	}
	if x > back {
		if !b.tolerant {
			return 0, fmt.Errorf("Eval(%g): %w", x, ErrDomain)
		}
		return back, nil
	}
	return x, nil
}

// segment returns the index i such that xs[i] <= x <= xs[i+1].
func (b boundary) segment(x float64) int {
	i := sort.Search(len(b.xs)-1, func(i int) bool { return b.xs[i+1] >= x })
	if i >= len(b.xs)-1 {
		i = len(b.xs) - 2
	}
	return i
}

// Linear is piecewise-linear interpolation between consecutive samples.
type Linear struct {
	boundary
	ys []float64
}

// NewLinear builds a linear interpolator over (xs, ys). xs must be
// strictly ascending and at least two points are required.
func NewLinear(xs, ys []float64, tolerant bool) (*Linear, error) {
	b, err := newBoundary(xs, ys, 2, tolerant)
	if err != nil {
		return nil, fmt.Errorf("NewLinear: %w", err)
	}
	return &Linear{boundary: b, ys: ys}, nil
}

// Eval implements Interpolator.
func (l *Linear) Eval(x float64) (float64, error) {
	xc, err := l.clamp(x)
	if err != nil {
		return 0, err
	}
	i := l.segment(xc)
	x0, x1 := l.xs[i], l.xs[i+1]
	y0, y1 := l.ys[i], l.ys[i+1]
	t := (xc - x0) / (x1 - x0)
	return y0 + t*(y1-y0), nil
}

// Cubic is a natural cubic spline (zero second derivative at both ends).
type Cubic struct {
	boundary
	ys []float64
	m  []float64 // quadratic coefficients (half the second derivative) at each knot
}

// NewCubic builds a natural cubic spline over (xs, ys). At least three
// points are required.
func NewCubic(xs, ys []float64, tolerant bool) (*Cubic, error) {
	b, err := newBoundary(xs, ys, 3, tolerant)
	if err != nil {
		return nil, fmt.Errorf("NewCubic: %w", err)
	}
	m := naturalSplineSecondDerivatives(xs, ys)
	return &Cubic{boundary: b, ys: ys, m: m}, nil
}

// naturalSplineSecondDerivatives solves the tridiagonal system of the
// natural cubic spline via the standard Thomas algorithm and returns the
// quadratic coefficient of each knot's spline piece, which is half the
// second derivative there.
func naturalSplineSecondDerivatives(xs, ys []float64) []float64 {
	n := len(xs)
	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
	}
	alpha := make([]float64, n)
	for i := 1; i < n-1; i++ {
		alpha[i] = 3*(ys[i+1]-ys[i])/h[i] - 3*(ys[i]-ys[i-1])/h[i-1]
	}
	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)
	l[0] = 1
	for i := 1; i < n-1; i++ {
		l[i] = 2*(xs[i+1]-xs[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
	l[n-1] = 1
	c := make([]float64, n)
	for j := n - 2; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
	}
	return c
}

// Eval implements Interpolator.
func (c *Cubic) Eval(x float64) (float64, error) {
	xc, err := c.clamp(x)
	if err != nil {
		return 0, err
	}
	i := c.segment(xc)
	h := c.xs[i+1] - c.xs[i]
	a := c.ys[i]
	cI, cI1 := c.m[i], c.m[i+1]
	b := (c.ys[i+1]-c.ys[i])/h - h*(2*cI+cI1)/3
	d := (cI1 - cI) / (3 * h)
	dx := xc - c.xs[i]
	return a + b*dx + cI*dx*dx + d*dx*dx*dx, nil
}

// Akima interpolation, which is less prone to overshoot near outliers than
// a cubic spline because its slopes are built from local differences
// rather than a global tridiagonal solve.
type Akima struct {
	boundary
	ys     []float64
	slopes []float64 // slope at each knot
}

// NewAkima builds an Akima interpolator. At least five points are
// required, matching the minimum GSL imposes on its Akima implementation.
func NewAkima(xs, ys []float64, tolerant bool) (*Akima, error) {
	b, err := newBoundary(xs, ys, 5, tolerant)
	if err != nil {
		return nil, fmt.Errorf("NewAkima: %w", err)
	}
	slopes := akimaSlopes(xs, ys)
	return &Akima{boundary: b, ys: ys, slopes: slopes}, nil
}

func akimaSlopes(xs, ys []float64) []float64 {
	n := len(xs)
	// Secant slopes, extended by two points on each side via linear
	// extrapolation, as Akima's original construction requires.
	m := make([]float64, n+3)
	secant := func(i int) float64 { return (ys[i+1] - ys[i]) / (xs[i+1] - xs[i]) }
	for i := 0; i < n-1; i++ {
		m[i+2] = secant(i)
	}
	m[1] = 2*m[2] - m[3]
	m[0] = 2*m[1] - m[2]
	m[n+1] = 2*m[n] - m[n-1]
	m[n+2] = 2*m[n+1] - m[n]

	t := make([]float64, n)
	for i := 0; i < n; i++ {
		k := i + 2
		w1 := abs(m[k+1] - m[k])
		w2 := abs(m[k-1] - m[k-2])
		if w1+w2 == 0 {
			t[i] = (m[k-1] + m[k]) / 2
		} else {
			t[i] = (w1*m[k-1] + w2*m[k]) / (w1 + w2)
		}
	}
	return t
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Eval implements Interpolator.
func (a *Akima) Eval(x float64) (float64, error) {
	xc, err := a.clamp(x)
	if err != nil {
		return 0, err
	}
	i := a.segment(xc)
	h := a.xs[i+1] - a.xs[i]
	t0, t1 := a.slopes[i], a.slopes[i+1]
	p0, p1 := a.ys[i], a.ys[i+1]
	dx := xc - a.xs[i]
	// Hermite basis with Akima-derived slopes.
	t := dx / h
	h00 := 2*t*t*t - 3*t*t + 1
	h10 := t*t*t - 2*t*t + t
	h01 := -2*t*t*t + 3*t*t
	h11 := t*t*t - t*t
	return h00*p0 + h10*h*t0 + h01*p1 + h11*h*t1, nil
}

// Steffen interpolation produces a monotonicity-preserving cubic Hermite
// spline: the slope at each interior knot is chosen so the interpolant
// never overshoots between monotone data, following Steffen (1990).
type Steffen struct {
	boundary
	ys     []float64
	slopes []float64
}

// NewSteffen builds a Steffen interpolator. At least three points are
// required.
func NewSteffen(xs, ys []float64, tolerant bool) (*Steffen, error) {
	b, err := newBoundary(xs, ys, 3, tolerant)
	if err != nil {
		return nil, fmt.Errorf("NewSteffen: %w", err)
	}
	slopes := steffenSlopes(xs, ys)
	return &Steffen{boundary: b, ys: ys, slopes: slopes}, nil
}

func steffenSlopes(xs, ys []float64) []float64 {
	n := len(xs)
	h := make([]float64, n-1)
	s := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
		s[i] = (ys[i+1] - ys[i]) / h[i]
	}
	slopes := make([]float64, n)
	sign := func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	}
	minAbs3 := func(a, b, c float64) float64 {
		m := abs(a)
		if abs(b) < m {
			m = abs(b)
		}
		if abs(c) < m {
			m = abs(c)
		}
		return m
	}
	for i := 1; i < n-1; i++ {
		p := (s[i-1]*h[i] + s[i]*h[i-1]) / (h[i-1] + h[i])
		if sign(s[i-1]) != sign(s[i]) || s[i-1] == 0 || s[i] == 0 {
			slopes[i] = 0
		} else {
			bound := 2 * minAbs3(s[i-1], s[i], p)
			if abs(p) > bound {
				slopes[i] = sign(s[i-1]) * bound
			} else {
				slopes[i] = p
			}
		}
	}
	slopes[0] = s[0]
	slopes[n-1] = s[n-2]
	return slopes
}

// Polynomial is a single global Lagrange interpolating polynomial through
// all the supplied points, evaluated by Neville's algorithm. It is only
// practical for a handful of points; for larger data sets prefer Cubic or
// Steffen.
type Polynomial struct {
	boundary
	ys []float64
}

// NewPolynomial builds a global polynomial interpolator. At least two
// points are required.
func NewPolynomial(xs, ys []float64, tolerant bool) (*Polynomial, error) {
	b, err := newBoundary(xs, ys, 2, tolerant)
	if err != nil {
		return nil, fmt.Errorf("NewPolynomial: %w", err)
	}
	return &Polynomial{boundary: b, ys: ys}, nil
}

// Eval implements Interpolator via Neville's algorithm.
func (p *Polynomial) Eval(x float64) (float64, error) {
	xc, err := p.clamp(x)
	if err != nil {
		return 0, err
	}
	n := len(p.xs)
	work := make([]float64, n)
	copy(work, p.ys)
	for level := 1; level < n; level++ {
		for i := 0; i < n-level; i++ {
			x0, x1 := p.xs[i], p.xs[i+level]
			work[i] = ((xc-x1)*work[i] - (xc-x0)*work[i+1]) / (x0 - x1)
		}
	}
	return work[0], nil
}

// CubicPeriodic is a cubic spline whose endpoints are constrained to equal
// value and derivative, for data that repeats with period xs.back-xs.front.
type CubicPeriodic struct {
	boundary
	ys []float64
	m  []float64
}

// NewCubicPeriodic builds a periodic cubic spline. At least three points
// are required, and ys[0] must equal ys[len-1] (the shared periodic
// boundary value).
func NewCubicPeriodic(xs, ys []float64, tolerant bool) (*CubicPeriodic, error) {
	b, err := newBoundary(xs, ys, 3, tolerant)
	if err != nil {
		return nil, fmt.Errorf("NewCubicPeriodic: %w", err)
	}
	if ys[0] != ys[len(ys)-1] {
		return nil, fmt.Errorf("NewCubicPeriodic: periodic data requires ys[0] == ys[last]: %w", ErrInvalidArgument)
	}
	m := periodicSplineSecondDerivatives(xs, ys)
	return &CubicPeriodic{boundary: b, ys: ys, m: m}, nil
}

// periodicSplineSecondDerivatives solves the cyclic tridiagonal system for
// a periodic cubic spline. The system is n x n on the n distinct periodic
// knots (xs[0]..xs[n-1], since ys[n]==ys[0] by construction), solved by
// the Sherman–Morrison reduction of the cyclic system to two ordinary
// tridiagonal solves.
func periodicSplineSecondDerivatives(xs, ys []float64) []float64 {
	n := len(xs) - 1 // distinct periodic knots
	h := make([]float64, n)
	for i := 0; i < n; i++ {
		h[i] = xs[i+1] - xs[i]
	}
	nextY := func(i int) float64 {
		if i == n-1 {
			return ys[1] // one period ahead of ys[0]
		}
		return ys[i+2]
	}
	diag := make([]float64, n)
	sub := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		hPrev := h[(i-1+n)%n]
		diag[i] = 2 * (hPrev + h[i])
		sub[i] = hPrev
		sup[i] = h[i]
		yNext := nextY(i)
		rhs[i] = 3 * ((yNext-ys[i+1])/h[i] - (ys[i+1]-ys[i])/hPrev)
	}

	gamma := -diag[0]
	d := make([]float64, n)
	copy(d, diag)
	d[0] -= gamma
	d[n-1] -= sub[0] * sup[n-1] / gamma

	y := solveTridiagonal(sub, d, sup, rhs)
	u := make([]float64, n)
	u[0] = gamma
	u[n-1] = sup[n-1]
	z := solveTridiagonal(sub, d, sup, u)

	fact := (y[0] + sub[0]*y[n-1]/gamma) / (1 + z[0] + sub[0]*z[n-1]/gamma)
	c := make([]float64, n+1)
	for i := 0; i < n; i++ {
		c[i] = y[i] - fact*z[i]
	}
	c[n] = c[0]
	return c
}

// solveTridiagonal solves a plain tridiagonal system with sub-diagonal
// sub, main diagonal d, super-diagonal sup, and right-hand side rhs, via
// the Thomas algorithm. sub[0] and sup[n-1] are ignored.
func solveTridiagonal(sub, d, sup, rhs []float64) []float64 {
	n := len(d)
	cp := make([]float64, n)
	dp := make([]float64, n)
	cp[0] = sup[0] / d[0]
	dp[0] = rhs[0] / d[0]
	for i := 1; i < n; i++ {
		m := d[i] - sub[i]*cp[i-1]
		if i < n-1 {
			cp[i] = sup[i] / m
		}
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / m
	}
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x
}

// Eval implements Interpolator.
func (c *CubicPeriodic) Eval(x float64) (float64, error) {
	xc, err := c.clamp(x)
	if err != nil {
		return 0, err
	}
	i := c.segment(xc)
	h := c.xs[i+1] - c.xs[i]
	a := c.ys[i]
	cI, cI1 := c.m[i], c.m[i+1]
	b := (c.ys[i+1]-c.ys[i])/h - h*(2*cI+cI1)/3
	d := (cI1 - cI) / (3 * h)
	dx := xc - c.xs[i]
	return a + b*dx + cI*dx*dx + d*dx*dx*dx, nil
}

// AkimaPeriodic is Akima interpolation over data that repeats with period
// xs.back-xs.front, extending the slope construction cyclically instead of
// by linear extrapolation at the ends.
type AkimaPeriodic struct {
	boundary
	ys     []float64
	slopes []float64
}

// NewAkimaPeriodic builds a periodic Akima interpolator. At least five
// points are required, and ys[0] must equal ys[len-1].
func NewAkimaPeriodic(xs, ys []float64, tolerant bool) (*AkimaPeriodic, error) {
	b, err := newBoundary(xs, ys, 5, tolerant)
	if err != nil {
		return nil, fmt.Errorf("NewAkimaPeriodic: %w", err)
	}
	if ys[0] != ys[len(ys)-1] {
		return nil, fmt.Errorf("NewAkimaPeriodic: periodic data requires ys[0] == ys[last]: %w", ErrInvalidArgument)
	}
	slopes := akimaPeriodicSlopes(xs, ys)
	return &AkimaPeriodic{boundary: b, ys: ys, slopes: slopes}, nil
}

func akimaPeriodicSlopes(xs, ys []float64) []float64 {
	n := len(xs) - 1 // distinct period points
	period := xs[n] - xs[0]
	secant := func(i int) float64 {
		// i ranges over ..., -1, 0, 1, ..., n, ... ; map into one period.
		k := ((i % n) + n) % n
		shift := float64((i-k)/n) * period
		x0, x1 := xs[k]+shift, xs[k+1]+shift
		return (ys[k+1] - ys[k]) / (x1 - x0)
	}
	m := make([]float64, n+4)
	for i := -2; i < n+2; i++ {
		m[i+2] = secant(i)
	}
	t := make([]float64, n+1)
	for i := 0; i < n; i++ {
		k := i + 2
		w1 := abs(m[k+1] - m[k])
		w2 := abs(m[k-1] - m[k-2])
		if w1+w2 == 0 {
			t[i] = (m[k-1] + m[k]) / 2
		} else {
			t[i] = (w1*m[k-1] + w2*m[k]) / (w1 + w2)
		}
	}
	t[n] = t[0]
	return t
}

// Eval implements Interpolator.
func (a *AkimaPeriodic) Eval(x float64) (float64, error) {
	xc, err := a.clamp(x)
	if err != nil {
		return 0, err
	}
	i := a.segment(xc)
	h := a.xs[i+1] - a.xs[i]
	t0, t1 := a.slopes[i], a.slopes[i+1]
	p0, p1 := a.ys[i], a.ys[i+1]
	dx := xc - a.xs[i]
	t := dx / h
	h00 := 2*t*t*t - 3*t*t + 1
	h10 := t*t*t - 2*t*t + t
	h01 := -2*t*t*t + 3*t*t
	h11 := t*t*t - t*t
	return h00*p0 + h10*h*t0 + h01*p1 + h11*h*t1, nil
}

// Eval implements Interpolator.
func (s *Steffen) Eval(x float64) (float64, error) {
	xc, err := s.clamp(x)
	if err != nil {
		return 0, err
	}
	i := s.segment(xc)
	h := s.xs[i+1] - s.xs[i]
	t0, t1 := s.slopes[i], s.slopes[i+1]
	p0, p1 := s.ys[i], s.ys[i+1]
	dx := xc - s.xs[i]
	t := dx / h
	h00 := 2*t*t*t - 3*t*t + 1
	h10 := t*t*t - 2*t*t + t
	h01 := -2*t*t*t + 3*t*t
	h11 := t*t*t - t*t
	return h00*p0 + h10*h*t0 + h01*p1 + h11*h*t1, nil
}
