package calculation

import (
	"testing"

	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestRank(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tests := []struct {
		p        float64
		expected float64
	}{
		{0.10, 2},
		{0.50, 6},
		{0.90, 10},
		{0.0, 1},
		{1.0, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NearestRank(sorted, tt.p), "p=%v", tt.p)
	}

	assert.Equal(t, 0.0, NearestRank(nil, 0.5))
}

func TestSummarizePercentiles(t *testing.T) {
	paths := []domain.Path{
		{100, 90, 80},
		{100, 110, 0},
		{100, 95},
		{100, 120, 130},
	}

	bands := SummarizePercentiles(paths, 65, 3)

	require.Len(t, bands, 3)
	assert.Equal(t, domain.PercentileBand{Age: 65, P10: 100, P50: 100, P90: 100}, bands[0])
	// year 1 sorted: 90 95 110 120 -> idx 0, 2, 3
	assert.Equal(t, domain.PercentileBand{Age: 66, P10: 90, P50: 110, P90: 120}, bands[1])
	// year 2 sorted with missing as zero: 0 0 80 130
	assert.Equal(t, domain.PercentileBand{Age: 67, P10: 0, P50: 80, P90: 130}, bands[2])
}

func TestSummarizePercentiles_Ordering(t *testing.T) {
	out := NewRunner(2).Run(balancedAssets(), testParams(30, 500), 55000, NewSource(5))

	bands := SummarizePercentiles(out.Paths, 60, 30)

	require.Len(t, bands, 30)
	for i, b := range bands {
		assert.Equal(t, 60+i, b.Age)
		assert.LessOrEqual(t, b.P10, b.P50)
		assert.LessOrEqual(t, b.P50, b.P90)
	}
}

func TestSummarizePercentiles_NoPaths(t *testing.T) {
	bands := SummarizePercentiles(nil, 40, 2)
	assert.Equal(t, []domain.PercentileBand{{Age: 40}, {Age: 41}}, bands)

	assert.Empty(t, SummarizePercentiles(nil, 40, 0))
}
