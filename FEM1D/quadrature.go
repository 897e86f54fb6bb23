package FEM1D

import (
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"
)

// QuadratureOrder is the number of Gauss-Legendre points in the default rule.
// The rule integrates polynomials up to degree 2*QuadratureOrder-1 exactly.
const QuadratureOrder = 20

// QuadratureRule holds nodes and weights on the reference interval [-1, 1]
type QuadratureRule struct {
	nodes, weights []float64
}

// GaussLegendre is computed once at startup and never modified
var GaussLegendre = NewGaussLegendre(QuadratureOrder)

func NewGaussLegendre(order int) (qr QuadratureRule) {
	if order < 1 {
		panic(fmt.Sprintf("quadrature order must be positive, have %d", order))
	}
	qr = QuadratureRule{
		nodes:   make([]float64, order),
		weights: make([]float64, order),
	}
	quad.Legendre{}.FixedLocations(qr.nodes, qr.weights, -1, 1)
	return
}

func (qr QuadratureRule) Order() int { return len(qr.nodes) }

// Integrate maps the rule affinely onto r and sums the weighted samples of f.
// An empty or inverted range integrates to zero without sampling f.
func (qr QuadratureRule) Integrate(f func(x float64) float64, r Range) (sum float64) {
	var (
		lo, hi = r.Low, r.High
	)
	if hi <= lo {
		return 0
	}
	for i, node := range qr.nodes {
		x := ((lo + hi) + node*(hi-lo)) / 2.
		sum += qr.weights[i] * f(x)
	}
	sum *= (hi - lo) / 2.
	return
}

// Integrate uses the GaussLegendre rule
func Integrate(f func(x float64) float64, r Range) float64 {
	return GaussLegendre.Integrate(f, r)
}
