package FEM1D

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gofem/utils"
	"gonum.org/v1/gonum/mat"
)

// Epsilon is the shortest support overlap that is integrated
const Epsilon = 1.e-12

var (
	ErrDegenerateMesh = errors.New("mesh resolution must be at least one element")
	ErrSingularSystem = errors.New("assembled system is singular")
)

type Option func(so *solverOptions)

type solverOptions struct {
	parallelDegree int
	newBasis       BasisFactory
	rule           QuadratureRule
	splitKinks     bool
}

func newSolverOptions(opts []Option) (so *solverOptions) {
	so = &solverOptions{
		parallelDegree: 1,
		newBasis:       NewHatFunction,
		rule:           GaussLegendre,
	}
	for _, opt := range opts {
		opt(so)
	}
	return
}

// WithParallelDegree assembles rows of the system on np goroutines
func WithParallelDegree(np int) Option {
	if np < 1 {
		panic(fmt.Sprintf("parallel degree must be positive, have %d", np))
	}
	return func(so *solverOptions) { so.parallelDegree = np }
}

func WithBasisFactory(bf BasisFactory) Option {
	return func(so *solverOptions) { so.newBasis = bf }
}

func WithQuadrature(rule QuadratureRule) Option {
	return func(so *solverOptions) { so.rule = rule }
}

// WithKinkSplitting integrates piecewise across the kinks of Kinked basis
// functions, which makes the quadrature exact for piecewise polynomial
// integrands of low enough degree
func WithKinkSplitting() Option {
	return func(so *solverOptions) { so.splitKinks = true }
}

// GetBases returns the basis set for problem on a mesh of n elements: the
// interior nodes 1..n-1, plus node 0 and node n when the respective boundary
// is not pinned to zero.
func GetBases(problem Problem, n int, opts ...Option) (bases []BasisFunction, err error) {
	var (
		so = newSolverOptions(opts)
		r  = problem.Range()
	)
	if n < 1 {
		err = fmt.Errorf("%w: have %d", ErrDegenerateMesh, n)
		return
	}
	bases = make([]BasisFunction, 0, n+1)
	if !problem.LeftZeros() {
		bases = append(bases, so.newBasis(0, n, r))
	}
	for i := 1; i < n; i++ {
		bases = append(bases, so.newBasis(i, n, r))
	}
	if !problem.RightZeros() {
		bases = append(bases, so.newBasis(n, n, r))
	}
	return
}

// LinearSystem is A * x = B, indexed in basis set order
type LinearSystem struct {
	A *sparse.DOK
	B *mat.VecDense
}

func (ls *LinearSystem) Dims() int { return ls.B.Len() }

// Assemble integrates the weak form over every pair of bases. Entries of
// disjoint pairs are only the free terms, so they are stored sparsely.
func Assemble(problem Problem, bases []BasisFunction, opts ...Option) (ls *LinearSystem) {
	var (
		so   = newSolverOptions(opts)
		nb   = len(bases)
		np   = so.parallelDegree
		rows = make([][]float64, nb)
		load = make([]float64, nb)
		wg   = sync.WaitGroup{}
	)
	if nb == 0 {
		panic("unable to assemble an empty basis set")
	}
	if np > nb {
		np = nb
	}
	pm := utils.NewPartitionMap(np, nb)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			kMin, kMax := pm.GetBucketRange(n)
			for row := kMin; row < kMax; row++ {
				rows[row], load[row] = assembleRow(problem, bases, row, so)
			}
			wg.Done()
		}(n)
	}
	wg.Wait()
	ls = &LinearSystem{
		A: sparse.NewDOK(nb, nb),
		B: mat.NewVecDense(nb, load),
	}
	for row := range rows {
		for col, val := range rows[row] {
			if val != 0 {
				ls.A.Set(row, col, val)
			}
		}
	}
	return
}

func assembleRow(problem Problem, bases []BasisFunction, row int,
	so *solverOptions) (A []float64, B float64) {
	var (
		v = bases[row]
		r = problem.Range()
	)
	A = make([]float64, len(bases))
	B = problem.FreeRightTerms(v) + so.gatedIntegral(func(x float64) float64 {
		return problem.RightIntegral(x, v)
	}, []BasisFunction{v}, r, v.NonZeroRange())
	for col, u := range bases {
		A[col] = problem.FreeLeftTerms(u, v) + so.gatedIntegral(func(x float64) float64 {
			return problem.LeftIntegral(x, u, v)
		}, []BasisFunction{u, v}, r, v.NonZeroRange(), u.NonZeroRange())
	}
	return
}

// gatedIntegral integrates f over the intersection of ranges, skipping
// overlaps no longer than Epsilon
func (so *solverOptions) gatedIntegral(f func(x float64) float64, bfs []BasisFunction,
	ranges ...Range) (sum float64) {
	overlap := Intersection(ranges...)
	if overlap.Len() <= Epsilon {
		return 0
	}
	if !so.splitKinks {
		return so.rule.Integrate(f, overlap)
	}
	breaks := []float64{overlap.Low}
	for _, bf := range bfs {
		if kb, ok := bf.(Kinked); ok {
			for _, k := range kb.Kinks() {
				if k-overlap.Low > Epsilon && overlap.High-k > Epsilon {
					breaks = append(breaks, k)
				}
			}
		}
	}
	breaks = append(breaks, overlap.High)
	sort.Float64s(breaks)
	for i := 1; i < len(breaks); i++ {
		if breaks[i]-breaks[i-1] > Epsilon {
			sum += so.rule.Integrate(f, Range{Low: breaks[i-1], High: breaks[i]})
		}
	}
	return
}

// Solve uses a dense LU decomposition. Singular and ill conditioned systems
// are reported with ErrSingularSystem.
func (ls *LinearSystem) Solve() (x *mat.VecDense, err error) {
	var (
		lu mat.LU
	)
	lu.Factorize(ls.A.ToDense())
	if cond := lu.Cond(); math.IsInf(cond, 1) || math.IsNaN(cond) || cond > mat.ConditionTolerance {
		err = fmt.Errorf("%w: condition number %g", ErrSingularSystem, cond)
		return
	}
	x = mat.NewVecDense(ls.Dims(), nil)
	if err = lu.SolveVecTo(x, false, ls.B); err != nil {
		x = nil
		err = fmt.Errorf("%w: %v", ErrSingularSystem, err)
		return
	}
	if !utils.IsFinite(x.RawVector().Data) {
		x = nil
		err = fmt.Errorf("%w: solution is not finite", ErrSingularSystem)
	}
	return
}

// FindSolution approximates the solution of problem on a uniform mesh of n
// elements
func FindSolution(problem Problem, n int, opts ...Option) (cf *ComputedFunction, err error) {
	var (
		bases  []BasisFunction
		coeffs *mat.VecDense
	)
	if bases, err = GetBases(problem, n, opts...); err != nil {
		return
	}
	if len(bases) == 0 {
		// Both ends pinned on a single element, the only solution is zero
		cf = &ComputedFunction{}
		return
	}
	if coeffs, err = Assemble(problem, bases, opts...).Solve(); err != nil {
		return
	}
	cf = &ComputedFunction{
		bases:  bases,
		coeffs: coeffs,
	}
	return
}
