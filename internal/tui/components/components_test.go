package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/swrgo/internal/domain"
)

func TestMetricCard_Render(t *testing.T) {
	card := NewMetricCard("Success rate", "91.20%").
		WithStatus(true, "target 90.00%").
		WithDescription("simulated")

	out := card.Render()
	assert.Contains(t, out, "Success rate")
	assert.Contains(t, out, "91.20%")
	assert.Contains(t, out, "▲ target 90.00%")
	assert.Contains(t, out, "simulated")

	failing := NewMetricCard("Success rate", "80%").WithStatus(false, "target 90%")
	assert.Contains(t, failing.Render(), "▼ target 90%")
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 2))

	cards := []*MetricCard{NewMetricCard("A", "1"), NewMetricCard("B", "2"), NewMetricCard("C", "3")}
	twoCols := MetricGrid(cards, 2)
	oneRow := MetricGrid(cards, 3)

	assert.Greater(t, strings.Count(twoCols, "\n"), strings.Count(oneRow, "\n"), "wrapping adds rows")
}

func TestBandChart_NoData(t *testing.T) {
	out := NewBandChart("Empty", nil).Render()
	assert.Contains(t, out, "No data to display")
}

func TestBandChart_Render(t *testing.T) {
	bands := []domain.PercentileBand{
		{Age: 65, P10: 1000000, P50: 1000000, P90: 1000000},
		{Age: 66, P10: 800000, P50: 1050000, P90: 1200000},
		{Age: 67, P10: 600000, P50: 1100000, P90: 1500000},
	}
	out := NewBandChart("Portfolio value by age", bands).WithSize(50, 8).Render()

	assert.Contains(t, out, "Portfolio value by age")
	assert.Contains(t, out, "$1.5M", "top of axis is the largest value")
	assert.Contains(t, out, "age 65")
	assert.Contains(t, out, "67")
	assert.Contains(t, out, "Median")
	assert.Contains(t, out, "10th percentile")
	assert.Contains(t, out, "90th percentile")
}

func TestBandChart_AllZero(t *testing.T) {
	bands := []domain.PercentileBand{{Age: 90}, {Age: 91}}
	out := NewBandChart("", bands).Render()
	assert.Contains(t, out, "$0")
}

func TestBandChart_SingleYear(t *testing.T) {
	bands := []domain.PercentileBand{{Age: 64, P10: 10, P50: 20, P90: 30}}
	assert.NotPanics(t, func() { NewBandChart("", bands).WithSize(5, 1).Render() })
}

func TestParameterSlider(t *testing.T) {
	s := NewParameterSlider("Target success", 95, 50, 99, 5)

	s.Increment()
	assert.Equal(t, 99.0, s.Value, "clamped at max")
	s.SetValue(10)
	assert.Equal(t, 50.0, s.Value, "clamped at min")
	assert.Equal(t, 0.0, s.Fraction())
	s.Decrement()
	assert.Equal(t, 50.0, s.Value)

	s.SetValue(99)
	assert.Equal(t, 1.0, s.Fraction())
	assert.Contains(t, s.WithFormat("%.0f%%").Render(), "99%")
}

func TestParameterSlider_FocusShowsDescription(t *testing.T) {
	s := NewParameterSlider("Simulations", 1000, 100, 10000, 100).WithDescription("Trials per step")
	assert.NotContains(t, s.Render(), "Trials per step")
	s.IsFocused = true
	assert.Contains(t, s.Render(), "Trials per step")
}

func TestSolveProgress(t *testing.T) {
	p := NewSolveProgress(15)
	assert.Equal(t, 0, p.Iteration())
	assert.False(t, p.IsComplete())

	p.Update(100.0 / 15 * 4)
	assert.Equal(t, 4, p.Iteration())
	assert.Contains(t, p.Render(), "iteration 4 of 15")

	p.Update(100)
	assert.True(t, p.IsComplete())
	assert.Equal(t, 15, p.Iteration())

	assert.Equal(t, 0, NewSolveProgress(0).Iteration())
}

func TestAssetTable(t *testing.T) {
	assert.Contains(t, AssetTable(nil), "No assets")

	p := &domain.Portfolio{
		Assets: []domain.Asset{
			{Name: "A very long asset name indeed", Principal: decimal.NewFromInt(750000), ExpectedReturnPct: decimal.NewFromInt(7), Risk: domain.RiskHigh},
			{Name: "Cash", Principal: decimal.NewFromInt(250000), ExpectedReturnPct: decimal.NewFromInt(1), Risk: domain.RiskLow},
		},
		StartAge:       60,
		LifeExpectancy: 95,
		InflationPct:   decimal.NewFromFloat(2.5),
	}
	out := AssetTable(p)

	assert.Contains(t, out, "A very long asset n…")
	assert.Contains(t, out, "$750,000.00")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "25%")
	assert.Contains(t, out, "Total $1,000,000.00")
	assert.Contains(t, out, "ages 60 to 95")
	assert.Contains(t, out, "2.50%")
}
