package FEM1D

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/zeebo/blake3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ComputedFunction is the weighted sum of its basis set, one coefficient per
// basis function in matching order
type ComputedFunction struct {
	bases  []BasisFunction
	coeffs *mat.VecDense
}

func (cf *ComputedFunction) Evaluate(x float64) (y float64) {
	for i, b := range cf.bases {
		y += cf.coeffs.AtVec(i) * b.Regular(x)
	}
	return
}

func (cf *ComputedFunction) Sample(xs []float64) (ys []float64) {
	ys = make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = cf.Evaluate(x)
	}
	return
}

func (cf *ComputedFunction) Bases() []BasisFunction { return cf.bases }

// Coefficients returns a copy of the solution weights
func (cf *ComputedFunction) Coefficients() (c []float64) {
	c = make([]float64, len(cf.bases))
	for i := range c {
		c[i] = cf.coeffs.AtVec(i)
	}
	return
}

// Fingerprint is a BLAKE3 digest of the exact bits of the coefficients, equal
// fingerprints mean bit for bit identical solutions
func (cf *ComputedFunction) Fingerprint() string {
	var (
		c   = cf.Coefficients()
		buf = make([]byte, 8*len(c))
	)
	for i, val := range c {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(val))
	}
	sum := blake3.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// SampleGrid returns count evenly spaced points covering [r.Low, r.High)
func SampleGrid(r Range, count int) (xs []float64) {
	if count < 1 {
		return
	}
	xs = floats.Span(make([]float64, count+1), r.Low, r.High)
	return xs[:count]
}
