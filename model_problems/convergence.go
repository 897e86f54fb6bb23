package model_problems

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/notargets/gofem/FEM1D"
)

type ConvergenceStudy struct {
	Title   string
	Samples int
	Points  []StudyPoint
}

// StudyPoint holds the pointwise deviation from the exact solution on one mesh
type StudyPoint struct {
	K              int
	MaxErr, RMSErr float64
	Fingerprint    string
}

type ExactProblem interface {
	FEM1D.Problem
	FEM1D.AnalyticSolution
}

func NewConvergenceStudy(title string, samples int) *ConvergenceStudy {
	if samples < 1 {
		panic("convergence study needs at least one sample point")
	}
	return &ConvergenceStudy{
		Title:   title,
		Samples: samples,
	}
}

// Run solves problem on each mesh size in order and records the deviations
func (cs *ConvergenceStudy) Run(problem ExactProblem, meshes []int, opts ...FEM1D.Option) (err error) {
	var (
		cf *FEM1D.ComputedFunction
		xs = FEM1D.SampleGrid(problem.Range(), cs.Samples)
	)
	for _, K := range meshes {
		if cf, err = FEM1D.FindSolution(problem, K, opts...); err != nil {
			return fmt.Errorf("mesh K = %d: %w", K, err)
		}
		var sp StudyPoint
		if sp, err = Deviation(cf, problem, xs); err != nil {
			return fmt.Errorf("mesh K = %d: %w", K, err)
		}
		sp.K = K
		cs.Points = append(cs.Points, sp)
	}
	return
}

// Deviation compares cf against the closed form at xs
func Deviation(cf *FEM1D.ComputedFunction, exact FEM1D.AnalyticSolution, xs []float64) (sp StudyPoint, err error) {
	var (
		absErr = make(stats.Float64Data, len(xs))
		sqErr  = make(stats.Float64Data, len(xs))
		mean   float64
	)
	for i, x := range xs {
		y, ok := exact.Exact(x)
		if !ok {
			err = fmt.Errorf("no closed form solution available at x = %v", x)
			return
		}
		d := math.Abs(cf.Evaluate(x) - y)
		absErr[i] = d
		sqErr[i] = d * d
	}
	if sp.MaxErr, err = stats.Max(absErr); err != nil {
		return
	}
	if mean, err = stats.Mean(sqErr); err != nil {
		return
	}
	sp.RMSErr = math.Sqrt(mean)
	sp.Fingerprint = cf.Fingerprint()
	return
}

// Orders returns the observed order of accuracy between consecutive meshes,
// based on the maximum deviation
func (cs *ConvergenceStudy) Orders() (orders []float64) {
	for i := 1; i < len(cs.Points); i++ {
		p0, p1 := cs.Points[i-1], cs.Points[i]
		orders = append(orders,
			math.Log(p0.MaxErr/p1.MaxErr)/math.Log(float64(p1.K)/float64(p0.K)))
	}
	return
}

// Monotone is true when each refinement strictly lowers the maximum deviation
func (cs *ConvergenceStudy) Monotone() bool {
	for i := 1; i < len(cs.Points); i++ {
		if !(cs.Points[i].MaxErr < cs.Points[i-1].MaxErr) {
			return false
		}
	}
	return true
}

func (cs *ConvergenceStudy) Print() {
	orders := cs.Orders()
	fmt.Printf("Convergence study: %s, %d samples\n", cs.Title, cs.Samples)
	fmt.Printf("%8s %14s %14s %8s\n", "K", "max error", "rms error", "order")
	for i, sp := range cs.Points {
		if i == 0 {
			fmt.Printf("%8d %14.6e %14.6e %8s\n", sp.K, sp.MaxErr, sp.RMSErr, "-")
			continue
		}
		fmt.Printf("%8d %14.6e %14.6e %8.3f\n", sp.K, sp.MaxErr, sp.RMSErr, orders[i-1])
	}
}

// WriteCSV emits one record per mesh: title, K, samples, max error, rms error
func (cs *ConvergenceStudy) WriteCSV(w io.Writer, header bool) (err error) {
	var (
		cw = csv.NewWriter(w)
	)
	if header {
		if err = cw.Write([]string{"Title", "K", "Samples", "MaxErr", "RMSErr"}); err != nil {
			return
		}
	}
	for _, sp := range cs.Points {
		rec := []string{
			cs.Title,
			strconv.Itoa(sp.K),
			strconv.Itoa(cs.Samples),
			strconv.FormatFloat(sp.MaxErr, 'e', -1, 64),
			strconv.FormatFloat(sp.RMSErr, 'e', -1, 64),
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
