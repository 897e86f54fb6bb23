package Reaction1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofem/FEM1D"
)

func TestReaction(t *testing.T) {
	{
		bt, err := NewBCType("Neumann")
		assert.NoError(t, err)
		assert.Equal(t, Robin, bt)
		assert.Equal(t, "Robin", bt.String())
		bt, err = NewBCType("dirichlet")
		assert.NoError(t, err)
		assert.Equal(t, Dirichlet, bt)
		_, err = NewBCType("Periodic")
		assert.Error(t, err)
		assert.Panics(t, func() { NewReaction(FEM1D.NewRange(0, 1), 0, 0, Boundary{}, Boundary{}) })
	}
	{ // -u'' = 1, u(0) = 0, u'(1) = 0 is nodally exact
		rc := NewReaction(FEM1D.NewRange(0, 1), 1, 0, Boundary{}, Boundary{Type: Robin}).SetConstantLoad(1)
		assert.True(t, rc.LeftZeros())
		assert.False(t, rc.RightZeros())
		K := 10
		cf, err := FEM1D.FindSolution(rc, K, FEM1D.WithKinkSplitting())
		require.NoError(t, err)
		for i := 0; i <= K; i++ {
			x := float64(i) / float64(K)
			y, ok := rc.Exact(x)
			require.True(t, ok)
			assert.InDelta(t, x-x*x/2, y, 1.e-15)
			assert.InDelta(t, y, cf.Evaluate(x), 1.e-10)
		}
	}
	{ // Prescribed flux on a shifted domain: -2u'' = 3 on [1, 3], u(1) = 0, 2u'(3) = 1
		rc := NewReaction(FEM1D.NewRange(1, 3), 2, 0, Boundary{},
			Boundary{Type: Robin, G: 1}).SetConstantLoad(3)
		K := 16
		cf, err := FEM1D.FindSolution(rc, K, FEM1D.WithKinkSplitting())
		require.NoError(t, err)
		for i := 0; i <= K; i++ {
			x := 1 + 2*float64(i)/float64(K)
			y, _ := rc.Exact(x)
			assert.InDelta(t, y, cf.Evaluate(x), 1.e-9, "x = %v", x)
		}
	}
	{ // Reaction term with both ends pinned converges to the cosh solution
		rc := NewReaction(FEM1D.NewRange(0, 1), 1, 4, Boundary{}, Boundary{}).SetConstantLoad(4)
		y, ok := rc.Exact(0.5)
		assert.True(t, ok)
		assert.InDelta(t, 1-1/math.Cosh(1), y, 1.e-14)
		var prev = math.MaxFloat64
		for _, K := range []int{4, 8, 16, 32} {
			cf, err := FEM1D.FindSolution(rc, K, FEM1D.WithKinkSplitting())
			require.NoError(t, err)
			d := math.Abs(cf.Evaluate(0.5) - y)
			assert.Less(t, d, prev)
			prev = d
		}
		assert.Less(t, prev, 1.e-3)
	}
	{ // Robin end at the left, matches the symmetric problem with the ends swapped
		left := NewReaction(FEM1D.NewRange(0, 1), 1, 1, Boundary{Type: Robin, Alpha: 2, G: 1}, Boundary{}).
			SetConstantLoad(1)
		right := NewReaction(FEM1D.NewRange(0, 1), 1, 1, Boundary{}, Boundary{Type: Robin, Alpha: 2, G: 1}).
			SetConstantLoad(1)
		assert.False(t, left.LeftZeros())
		_, ok := left.Exact(0.5)
		assert.False(t, ok)
		K := 12
		cfL, err := FEM1D.FindSolution(left, K, FEM1D.WithKinkSplitting())
		require.NoError(t, err)
		cfR, err := FEM1D.FindSolution(right, K, FEM1D.WithKinkSplitting())
		require.NoError(t, err)
		for i := 0; i <= K; i++ {
			x := float64(i) / float64(K)
			assert.InDelta(t, cfL.Evaluate(x), cfR.Evaluate(1-x), 1.e-10, "x = %v", x)
		}
	}
	{ // A variable load disables the closed form
		rc := NewReaction(FEM1D.NewRange(0, 1), 1, 0, Boundary{}, Boundary{}).SetLoad(math.Sin)
		_, ok := rc.Exact(0.5)
		assert.False(t, ok)
	}
}
