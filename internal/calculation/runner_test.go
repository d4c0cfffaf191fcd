package calculation

import (
	"testing"

	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Shape(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		runs    int
		years   int
	}{
		{"sequential", 1, 250, 30},
		{"parallel", 4, 250, 30},
		{"more workers than runs", 16, 5, 10},
		{"uneven partitions", 3, 10, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(tt.workers)
			out := runner.Run(balancedAssets(), testParams(tt.years, tt.runs), 40000, NewSource(3))

			require.Len(t, out.Paths, tt.runs)
			for _, p := range out.Paths {
				assert.Len(t, p, tt.years)
			}
			assert.GreaterOrEqual(t, out.SuccessRate, 0.0)
			assert.LessOrEqual(t, out.SuccessRate, 1.0)
		})
	}
}

func TestRunner_ZeroRuns(t *testing.T) {
	out := NewRunner(1).Run(balancedAssets(), testParams(30, 0), 40000, NewSource(1))
	assert.Empty(t, out.Paths)
	assert.Equal(t, 0.0, out.SuccessRate)
}

func TestRunner_SuccessRateCountsSurvivors(t *testing.T) {
	runner := &Runner{Workers: 1, Volatility: zeroVolatility}
	assets := []domain.Asset{testAsset("Cash", 100000, 0, domain.RiskLow)}
	params := testParams(10, 50)
	params.InflationRate = 0

	survive := runner.Run(assets, params, 10000, NewSource(1))
	assert.Equal(t, 1.0, survive.SuccessRate, "Ten withdrawals of 10% should just last")

	fail := runner.Run(assets, params, 12000, NewSource(1))
	assert.Equal(t, 0.0, fail.SuccessRate)
}

func TestRunner_Reproducible(t *testing.T) {
	for _, workers := range []int{1, 4} {
		runner := NewRunner(workers)
		params := testParams(35, 300)

		a := runner.Run(balancedAssets(), params, 45000, NewSource(2024))
		b := runner.Run(balancedAssets(), params, 45000, NewSource(2024))

		assert.Equal(t, a, b, "workers=%d: same seed should give identical outcomes", workers)
	}
}

func TestRunner_SuccessRateNonIncreasingInWithdrawal(t *testing.T) {
	runner := NewRunner(4)
	params := testParams(40, 2000)

	low := runner.Run(balancedAssets(), params, 30000, NewSource(11))
	mid := runner.Run(balancedAssets(), params, 50000, NewSource(12))
	high := runner.Run(balancedAssets(), params, 80000, NewSource(13))

	assert.GreaterOrEqual(t, low.SuccessRate, mid.SuccessRate)
	assert.GreaterOrEqual(t, mid.SuccessRate, high.SuccessRate)
	assert.Less(t, high.SuccessRate, low.SuccessRate, "A much larger withdrawal should fail more often")
}

func TestRunner_SeedsOneChildPerBlock(t *testing.T) {
	tests := []struct {
		runs   int
		blocks int
	}{
		{1, 1},
		{BlockSize, 1},
		{BlockSize + 1, 2},
		{3*BlockSize + 10, 4},
	}

	for _, tt := range tests {
		src := &sequenceSource{values: []float64{0.5}}
		NewRunner(1).Run([]domain.Asset{testAsset("A", 1000, 5, domain.RiskLow)}, testParams(3, tt.runs), 0, src)

		assert.Equal(t, 2*tt.blocks, src.seeds, "runs=%d", tt.runs)
		assert.Zero(t, src.calls, "runs=%d: trials draw from child generators only", tt.runs)
	}
}

func TestRunner_OutcomeIndependentOfWorkerCount(t *testing.T) {
	params := testParams(30, 5*BlockSize+17)
	want := NewRunner(1).Run(balancedAssets(), params, 50000, NewSource(42))

	for _, workers := range []int{0, 2, 3, 8, 64} {
		got := NewRunner(workers).Run(balancedAssets(), params, 50000, NewSource(42))
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}
