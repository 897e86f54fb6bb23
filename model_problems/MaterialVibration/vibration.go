package MaterialVibration

import (
	"math"

	"github.com/notargets/gofem/FEM1D"
)

// MaterialVibration is
//
//	-u_xx - u = sin(x),   0 < x < 2
//	u(0) = 0,  u_x(2) = u(2)
//
// The Robin condition at x = 2 enters the weak form as the free term -u(2)v(2).
type MaterialVibration struct{}

const XMax = 2.

func (MaterialVibration) Range() FEM1D.Range { return FEM1D.NewRange(0, XMax) }

func (MaterialVibration) LeftZeros() bool { return true }

func (MaterialVibration) RightZeros() bool { return false }

func (MaterialVibration) LeftIntegral(x float64, u, v FEM1D.BasisFunction) float64 {
	return u.Derivative(x)*v.Derivative(x) - u.Regular(x)*v.Regular(x)
}

func (MaterialVibration) FreeLeftTerms(u, v FEM1D.BasisFunction) float64 {
	return -u.Regular(XMax) * v.Regular(XMax)
}

func (MaterialVibration) RightIntegral(x float64, v FEM1D.BasisFunction) float64 {
	return math.Sin(x) * v.Regular(x)
}

func (MaterialVibration) FreeRightTerms(_ FEM1D.BasisFunction) float64 { return 0 }

// Exact is u = (x cos(x) + C sin(x)) / 2 with C chosen to satisfy u'(2) = u(2)
func (MaterialVibration) Exact(x float64) (y float64, ok bool) {
	var (
		c2, s2 = math.Cos(XMax), math.Sin(XMax)
		C      = ((XMax-1)*c2 + XMax*s2) / (c2 - s2)
	)
	y = 0.5 * (x*math.Cos(x) + C*math.Sin(x))
	ok = true
	return
}
