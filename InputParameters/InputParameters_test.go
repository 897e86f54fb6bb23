package InputParameters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofem/FEM1D"
	"github.com/notargets/gofem/model_problems/MaterialVibration"
	"github.com/notargets/gofem/model_problems/Reaction1D"
)

func TestInputParameters1D(t *testing.T) {
	{ // The documented example
		var ip InputParameters1D
		require.NoError(t, ip.Parse([]byte(ExampleFile)))
		ip.Print()
		assert.Equal(t, "Fixed end, prescribed flux", ip.Title)
		assert.Equal(t, []float64{0, 1}, ip.Domain)
		assert.Equal(t, 30, ip.Elements)
		assert.Equal(t, "Robin", ip.BCs["Right"].Type)
		assert.True(t, ip.SplitKinks)
		assert.Equal(t, []string{"Left", "Right"}, ip.BoundaryNames())
		assert.Equal(t, 2, len(ip.Options()))
		problem, err := ip.NewProblem()
		require.NoError(t, err)
		rc, ok := problem.(*Reaction1D.Reaction)
		require.True(t, ok)
		assert.True(t, rc.LeftZeros())
		assert.False(t, rc.RightZeros())
		y, ok := rc.Exact(1)
		assert.True(t, ok)
		assert.InDelta(t, 0.5, y, 1.e-15)
		cf, err := FEM1D.FindSolution(problem, ip.Elements, ip.Options()...)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, cf.Evaluate(1), 1.e-10)
	}
	{ // Defaults fill a minimal deck
		var ip InputParameters1D
		require.NoError(t, ip.Parse([]byte("Model: MaterialVibration\n")))
		assert.Equal(t, 30, ip.Elements)
		assert.Equal(t, 2048, ip.Samples)
		assert.Equal(t, 1, ip.ParallelDegree)
		assert.Equal(t, 1, len(ip.Options()))
		problem, err := ip.NewProblem()
		require.NoError(t, err)
		assert.Equal(t, MaterialVibration.MaterialVibration{}, problem)
	}
	{ // Invalid decks
		var ip InputParameters1D
		err := ip.Parse([]byte("Elements: -2\n"))
		assert.True(t, errors.Is(err, FEM1D.ErrDegenerateMesh))
		ip = InputParameters1D{}
		assert.Error(t, ip.Parse([]byte("Domain: [1, 0]\n")))
		ip = InputParameters1D{}
		assert.Error(t, ip.Parse([]byte("BCs:\n  Top:\n    Type: Dirichlet\n")))
		ip = InputParameters1D{}
		require.NoError(t, ip.Parse([]byte("Model: Burgers\n")))
		_, err = ip.NewProblem()
		assert.Error(t, err)
		ip = InputParameters1D{}
		require.NoError(t, ip.Parse([]byte("BCs:\n  Left:\n    Type: Periodic\n")))
		_, err = ip.NewProblem()
		assert.Error(t, err)
	}
}
