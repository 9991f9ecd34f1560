package numeric

import (
	"fmt"
	"math"
)

// Knot is a (point, weight) pair: a Gauss–Legendre abscissa mapped onto a
// real interval together with its associated quadrature weight.
type Knot struct {
	Point  float64
	Weight float64
}

// GaussLegendre is a fixed-order Gauss–Legendre quadrature rule. Building
// one computes the n roots of the n-th Legendre polynomial on [-1,1] and
// their associated weights once; Point then maps the cached (root, weight)
// pairs onto an arbitrary interval, and Resize rebuilds the cache for a new
// order. This mirrors the GSL glfixed table used by the original
// implementation: the expensive root-finding step is paid once per order,
// not once per quadrature call.
type GaussLegendre struct {
	n        int
	nodes    []float64 // roots of P_n on [-1,1], ascending
	weights  []float64 // weights on [-1,1]
}

// NewGaussLegendre allocates an n-point Gauss–Legendre rule.
func NewGaussLegendre(n int) (*GaussLegendre, error) {
	g := &GaussLegendre{}
	if err := g.Resize(n); err != nil {
		return nil, err
	}
	return g, nil
}

// Resize adjusts the rule to use n points, recomputing nodes and weights.
func (g *GaussLegendre) Resize(n int) error {
	if n < 1 {
		return fmt.Errorf("GaussLegendre.Resize: %w", ErrInvalidArgument)
	}
	nodes, weights := legendreNodesWeights(n)
	g.n = n
	g.nodes = nodes
	g.weights = weights
	return nil
}

// Size returns the number of points of the rule.
func (g *GaussLegendre) Size() int {
	return g.n
}

// Point returns the i-th (point, weight) pair for integration over
// [lower, upper]. i must satisfy 0 <= i < Size().
func (g *GaussLegendre) Point(lower, upper float64, i int) (Knot, error) {
	if i < 0 || i >= g.n {
		return Knot{}, fmt.Errorf("GaussLegendre.Point: index %d: %w", i, ErrInvalidArgument)
	}
	half := (upper - lower) / 2.0
	mid := (upper + lower) / 2.0
	return Knot{
		Point:  mid + half*g.nodes[i],
		Weight: half * g.weights[i],
	}, nil
}

// Integrate evaluates the n-point rule for f on [lower, upper]. Reversing
// lower and upper negates the result.
func (g *GaussLegendre) Integrate(f func(float64) float64, lower, upper float64) float64 {
	var sum float64
	for i := 0; i < g.n; i++ {
		k, _ := g.Point(lower, upper, i)
		sum += k.Weight * f(k.Point)
	}
	return sum
}

// legendreNodesWeights computes the roots of the n-th Legendre polynomial
// on [-1,1] and the associated Gauss–Legendre weights via Newton's method,
// seeded with the standard asymptotic initial guess.
func legendreNodesWeights(n int) ([]float64, []float64) {
	nodes := make([]float64, n)
	weights := make([]float64, n)

	m := (n + 1) / 2
	for i := 0; i < m; i++ {
		// Initial guess for the i-th root (0-indexed from the centre).
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var pp float64
		for iter := 0; iter < 100; iter++ {
			p0, p1 := 1.0, 0.0
			for j := 0; j < n; j++ {
				p2 := p1
				p1 = p0
				p0 = ((2.0*float64(j)+1.0)*z*p1 - float64(j)*p2) / (float64(j) + 1.0)
			}
			// p0 now holds P_n(z); derivative via the recurrence relation.
			pp = float64(n) * (z*p0 - p1) / (z*z - 1.0)
			z1 := z
			z = z1 - p0/pp
			if math.Abs(z-z1) < 3e-15 {
				break
			}
		}
		w := 2.0 / ((1.0 - z*z) * pp * pp)
		nodes[i] = -z
		nodes[n-1-i] = z
		weights[i] = w
		weights[n-1-i] = w
	}
	return nodes, weights
}
