package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeKnownGrid(t *testing.T) {
	// The zero-noise size-3 result for corners 0, 100, 100, 200.
	g := NewGrid[uint8](3)
	copy(g.Cells(), []uint8{
		0, 50, 100,
		50, 100, 150,
		100, 150, 200,
	})

	s := Summarize(g)

	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 200.0, s.Max)
	assert.InDelta(t, 100.0, s.Mean, 1e-9)
	assert.InDelta(t, 61.237, s.StdDev, 1e-3)
	assert.Equal(t, 100.0, s.Median)
}

func TestSummarizeFlat(t *testing.T) {
	p := DefaultParams()
	p.Size = 9
	p.Variance = 0
	g, err := NewGenerator(p)
	require.NoError(t, err)

	grid, err := Generate[uint8](g)
	require.NoError(t, err)

	s := Summarize(grid)
	assert.Equal(t, 128.0, s.Min)
	assert.Equal(t, 128.0, s.Max)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Contains(t, s.String(), "mean=128.00")
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, Summarize(NewGrid[uint8](0)))
}
