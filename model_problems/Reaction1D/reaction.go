package Reaction1D

import (
	"fmt"
	"math"

	"github.com/notargets/gofem/FEM1D"
)

type BCType uint8

const (
	Dirichlet BCType = iota // u = 0
	Robin                   // p du/dn + alpha u = g, Neumann when alpha = 0
)

var (
	bcNames = []string{"Dirichlet", "Robin"}
)

func (bt BCType) String() string { return bcNames[bt] }

func NewBCType(label string) (bt BCType, err error) {
	switch label {
	case "Dirichlet", "dirichlet", "":
		bt = Dirichlet
	case "Robin", "robin", "Neumann", "neumann", "Free", "free":
		bt = Robin
	default:
		err = fmt.Errorf("unknown boundary condition type %q", label)
	}
	return
}

// Boundary holds the data for one end; Alpha and G are unused for Dirichlet
type Boundary struct {
	Type     BCType
	Alpha, G float64
}

// Reaction is the constant coefficient problem
//
//	-P u_xx + Q u = f(x),   Low < x < High
//
// with a Boundary at each end. Integrating by parts the free ends contribute
// alpha u v to the bilinear form and g v to the load, using the outward normal.
type Reaction struct {
	Domain      FEM1D.Range
	P, Q        float64
	Load        func(x float64) float64
	Left, Right Boundary
	constLoad   *float64
}

func NewReaction(domain FEM1D.Range, P, Q float64, left, right Boundary) (rc *Reaction) {
	if P <= 0 {
		panic(fmt.Sprintf("diffusion coefficient must be positive, have %v", P))
	}
	rc = &Reaction{
		Domain: domain,
		P:      P,
		Q:      Q,
		Left:   left,
		Right:  right,
	}
	rc.SetConstantLoad(0)
	return
}

// SetConstantLoad sets f(x) = f, which also enables the closed form solutions
func (rc *Reaction) SetConstantLoad(f float64) *Reaction {
	rc.Load = func(float64) float64 { return f }
	rc.constLoad = &f
	return rc
}

func (rc *Reaction) SetLoad(load func(x float64) float64) *Reaction {
	rc.Load = load
	rc.constLoad = nil
	return rc
}

func (rc *Reaction) Range() FEM1D.Range { return rc.Domain }

func (rc *Reaction) LeftZeros() bool { return rc.Left.Type == Dirichlet }

func (rc *Reaction) RightZeros() bool { return rc.Right.Type == Dirichlet }

func (rc *Reaction) LeftIntegral(x float64, u, v FEM1D.BasisFunction) float64 {
	return rc.P*u.Derivative(x)*v.Derivative(x) + rc.Q*u.Regular(x)*v.Regular(x)
}

func (rc *Reaction) FreeLeftTerms(u, v FEM1D.BasisFunction) (sum float64) {
	var (
		a, b = rc.Domain.Low, rc.Domain.High
	)
	if rc.Left.Type == Robin {
		sum += rc.Left.Alpha * u.Regular(a) * v.Regular(a)
	}
	if rc.Right.Type == Robin {
		sum += rc.Right.Alpha * u.Regular(b) * v.Regular(b)
	}
	return
}

func (rc *Reaction) RightIntegral(x float64, v FEM1D.BasisFunction) float64 {
	return rc.Load(x) * v.Regular(x)
}

func (rc *Reaction) FreeRightTerms(v FEM1D.BasisFunction) (sum float64) {
	var (
		a, b = rc.Domain.Low, rc.Domain.High
	)
	if rc.Left.Type == Robin {
		sum += rc.Left.G * v.Regular(a)
	}
	if rc.Right.Type == Robin {
		sum += rc.Right.G * v.Regular(b)
	}
	return
}

// Exact is available for a constant load with a pinned left end when
//
//	Q == 0 and the right end is pinned or Neumann (alpha = 0)
//	Q > 0 and the right end is pinned
func (rc *Reaction) Exact(x float64) (y float64, ok bool) {
	var (
		a, b = rc.Domain.Low, rc.Domain.High
		L    = b - a
		s    = x - a
	)
	if rc.constLoad == nil || rc.Left.Type != Dirichlet {
		return
	}
	f := *rc.constLoad
	switch {
	case rc.Q == 0 && rc.Right.Type == Dirichlet:
		y, ok = f/(2*rc.P)*s*(L-s), true
	case rc.Q == 0 && rc.Right.Type == Robin && rc.Right.Alpha == 0:
		// p u'(b) = g
		C := (rc.Right.G + f*L) / rc.P
		y, ok = C*s-f*s*s/(2*rc.P), true
	case rc.Q > 0 && rc.Right.Type == Dirichlet:
		k := math.Sqrt(rc.Q / rc.P)
		y, ok = f/rc.Q*(1-math.Cosh(k*(s-L/2))/math.Cosh(k*L/2)), true
	}
	return
}
