package FEM1D

// Problem supplies the weak form of a boundary value problem on Range().
// LeftZeros/RightZeros pin the solution to zero at that end, which drops the
// boundary node from the basis set. The Free terms are added to every matrix
// and load entry without integration and typically carry boundary fluxes.
type Problem interface {
	Range() Range
	LeftZeros() bool
	RightZeros() bool
	LeftIntegral(x float64, u, v BasisFunction) float64
	FreeLeftTerms(u, v BasisFunction) float64
	RightIntegral(x float64, v BasisFunction) float64
	FreeRightTerms(v BasisFunction) float64
}

// AnalyticSolution is implemented by problems with a known closed form. ok is
// false when the configuration of the problem has no closed form available.
type AnalyticSolution interface {
	Exact(x float64) (y float64, ok bool)
}
