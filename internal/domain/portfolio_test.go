package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRiskTier_StdDev(t *testing.T) {
	tests := []struct {
		tier     RiskTier
		expected float64
	}{
		{RiskLow, 0.02},
		{RiskMedium, 0.05},
		{RiskHigh, 0.10},
		{RiskTier("Extreme"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tier.StdDev())
		})
	}
}

func TestRiskTier_UnmarshalYAML(t *testing.T) {
	var asset Asset
	err := yaml.Unmarshal([]byte("name: Bonds\nprincipal: 500000\nexpected_return_pct: 4\nrisk: Low\n"), &asset)
	require.NoError(t, err)

	assert.Equal(t, "Bonds", asset.Name)
	assert.True(t, asset.Principal.Equal(decimal.NewFromInt(500000)))
	assert.True(t, asset.ExpectedReturnPct.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, RiskLow, asset.Risk)

	err = yaml.Unmarshal([]byte("risk: Wild\n"), &asset)
	assert.Error(t, err, "Should reject unknown tier")
}

func TestRiskTier_UnmarshalJSON(t *testing.T) {
	var asset Asset
	err := json.Unmarshal([]byte(`{"name":"S&P 500","principal":500000,"expected_return_pct":8,"risk":"Medium"}`), &asset)
	require.NoError(t, err)
	assert.Equal(t, RiskMedium, asset.Risk)

	err = json.Unmarshal([]byte(`{"risk":"medium"}`), &asset)
	assert.Error(t, err, "Tier names are case-sensitive")
}

func TestPortfolio_Derived(t *testing.T) {
	p := Portfolio{
		Assets: []Asset{
			{Name: "A", Principal: decimal.NewFromInt(300000), Risk: RiskLow},
			{Name: "B", Principal: decimal.NewFromInt(200000), Risk: RiskHigh},
		},
		StartAge:       60,
		LifeExpectancy: 95,
		InflationPct:   decimal.NewFromFloat(2.5),
	}

	assert.Equal(t, 35, p.HorizonYears())
	assert.InDelta(t, 0.025, p.InflationRate(), 1e-12)
	assert.True(t, TotalPrincipal(p.Assets).Equal(decimal.NewFromInt(500000)))

	params := p.SimulationParameters(1000, 0.9)
	assert.Equal(t, 60, params.StartAge)
	assert.Equal(t, 35, params.HorizonYears)
	assert.Equal(t, 1000, params.RunsPerIteration)
	assert.Equal(t, 0.9, params.SuccessThreshold)
}

func TestSolverResult_WithdrawalRate(t *testing.T) {
	r := SolverResult{SafeWithdrawal: 40000}
	assert.InDelta(t, 0.04, r.WithdrawalRate(1000000), 1e-12)
	assert.Equal(t, 0.0, r.WithdrawalRate(0))
}
