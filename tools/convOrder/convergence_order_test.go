package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := `Title,K,Samples,MaxErr,RMSErr
quadratic,10,64,1e-2,4e-3
quadratic,20,64,2.5e-3,1e-3
quadratic,40,64,6.25e-4,2.5e-4
linear,10,32,1e-1,1e-1
linear,20,32,5e-2,5e-2
`
	studies, err := readCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, studies, 2)
	assert.Equal(t, []string{"linear32", "quadratic64"}, sortedTitles(studies))
	{
		cs := studies["quadratic64"]
		require.NotNil(t, cs)
		assert.Equal(t, []int{10, 20, 40}, cs.numElements)
		maxOrders, rmsOrders := cs.Orders()
		require.Len(t, maxOrders, 2)
		for i := range maxOrders {
			assert.InDelta(t, 2., maxOrders[i], 1e-12)
			assert.InDelta(t, 2., rmsOrders[i], 1e-12)
		}
	}
	{
		cs := studies["linear32"]
		require.NotNil(t, cs)
		maxOrders, _ := cs.Orders()
		assert.InDelta(t, 1., maxOrders[0], 1e-12)
	}
	{ // Malformed entries are reported
		_, err = readCSV(strings.NewReader("quadratic,ten,64,1,1\n"))
		assert.Error(t, err)
		_, err = readCSV(strings.NewReader("quadratic,10,64\n"))
		assert.Error(t, err)
	}
}
