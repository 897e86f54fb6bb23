package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFinite(t *testing.T) {
	assert.False(t, IsFinite([]float64{0, math.Inf(-1)}))
	assert.False(t, IsFinite([]float64{math.NaN()}))
	assert.True(t, IsFinite([]float64{0, 1}))
	assert.Contains(t, GetMemUsage(), "MiB")
}
