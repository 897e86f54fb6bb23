package FEM1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHatFunction(t *testing.T) {
	var (
		K      = 8
		domain = NewRange(0, 2)
		h      = domain.Len() / float64(K)
	)
	{ // Locality around an interior node
		for i := 1; i < K; i++ {
			hf := NewHatFunction(i, K, domain).(*HatFunction)
			mid := hf.Node()
			assert.InDelta(t, float64(i)*h, mid, 1.e-14)
			assert.InDelta(t, 1., hf.Regular(mid), 1.e-14)
			assert.InDelta(t, 0., hf.Regular(mid-h), 1.e-14)
			assert.InDelta(t, 0., hf.Regular(mid+h), 1.e-14)
			assert.InDelta(t, 0.5, hf.Regular(mid-h/2), 1.e-14)
			assert.InDelta(t, 0.5, hf.Regular(mid+h/2), 1.e-14)
			for _, x := range []float64{mid - 1.5*h, mid + 1.01*h, -10, 10} {
				assert.Equal(t, 0., hf.Regular(x))
				assert.Equal(t, 0., hf.Derivative(x))
			}
			nz := hf.NonZeroRange()
			assert.InDelta(t, mid-h, nz.Low, 1.e-14)
			assert.InDelta(t, mid+h, nz.High, 1.e-14)
			assert.InDelta(t, 2*h, nz.Len(), 1.e-14)
		}
	}
	{ // Derivative sign on each half
		hf := NewHatFunction(3, K, domain).(*HatFunction)
		mid := hf.Node()
		for _, frac := range []float64{0.01, 0.25, 0.5, 0.99} {
			assert.InDelta(t, 1./h, hf.Derivative(mid-frac*h), 1.e-12)
			assert.InDelta(t, -1./h, hf.Derivative(mid+frac*h), 1.e-12)
		}
		// The node belongs to the rising half
		assert.InDelta(t, 1./h, hf.Derivative(mid), 1.e-12)
	}
	{ // Boundary nodes extend outside the domain
		left := NewHatFunction(0, K, domain)
		right := NewHatFunction(K, K, domain)
		assert.InDelta(t, -h, left.NonZeroRange().Low, 1.e-14)
		assert.InDelta(t, 1., left.Regular(0), 1.e-14)
		assert.InDelta(t, 1., right.Regular(2), 1.e-14)
		assert.InDelta(t, 2+h, right.NonZeroRange().High, 1.e-14)
	}
	{ // Shifted domain places nodes relative to its lower end
		hf := NewHatFunction(2, 4, NewRange(1, 3)).(*HatFunction)
		assert.InDelta(t, 2., hf.Node(), 1.e-14)
		assert.InDelta(t, 1., hf.Regular(2), 1.e-14)
		assert.Equal(t, []float64{1.5, 2, 2.5}, hf.Kinks())
	}
	{
		assert.Panics(t, func() { NewHatFunction(0, 0, domain) })
	}
}

func TestPartitionOfUnity(t *testing.T) {
	var (
		domain = NewRange(0, 2)
	)
	free := &zeroProblem{domain: domain}
	for _, K := range []int{1, 2, 3, 7, 30, 64} {
		bases, err := GetBases(free, K)
		assert.NoError(t, err)
		assert.Equal(t, K+1, len(bases))
		for _, x := range SampleGrid(domain, 97)[1:] {
			var sum float64
			for _, b := range bases {
				sum += b.Regular(x)
			}
			assert.InDelta(t, 1., sum, 1.e-12, "K = %d, x = %v", K, x)
		}
	}
	{ // Derivatives of a partition of unity cancel away from the nodes
		bases, _ := GetBases(free, 5)
		for _, x := range []float64{0.1, 0.5, 1.1, 1.9} {
			var sum float64
			for _, b := range bases {
				sum += b.Derivative(x)
			}
			assert.True(t, math.Abs(sum) < 1.e-10)
		}
	}
}
