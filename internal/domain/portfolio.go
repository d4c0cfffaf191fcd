package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RiskTier classifies how volatile an asset's annual return is
type RiskTier string

const (
	RiskLow    RiskTier = "Low"
	RiskMedium RiskTier = "Medium"
	RiskHigh   RiskTier = "High"
)

// riskStdDev maps each tier to the standard deviation of its annual return
var riskStdDev = map[RiskTier]float64{
	RiskLow:    0.02,
	RiskMedium: 0.05,
	RiskHigh:   0.10,
}

// StdDev returns the annual return standard deviation for the tier.
// Unknown tiers have no volatility.
func (r RiskTier) StdDev() float64 {
	return riskStdDev[r]
}

// Valid reports whether the tier is one of the known tiers
func (r RiskTier) Valid() bool {
	_, ok := riskStdDev[r]
	return ok
}

// UnmarshalText accepts the tier names case-sensitively
func (r *RiskTier) UnmarshalText(text []byte) error {
	tier := RiskTier(text)
	if !tier.Valid() {
		return fmt.Errorf("unknown risk tier %q (want Low, Medium or High)", string(text))
	}
	*r = tier
	return nil
}

// RiskTiers lists the tiers from least to most volatile
func RiskTiers() []RiskTier {
	return []RiskTier{RiskLow, RiskMedium, RiskHigh}
}

// Asset is a single holding in the portfolio
type Asset struct {
	Name              string          `yaml:"name" json:"name"`
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	ExpectedReturnPct decimal.Decimal `yaml:"expected_return_pct" json:"expected_return_pct"` // Expected compound rate, percent
	Risk              RiskTier        `yaml:"risk" json:"risk"`
}

// Portfolio is the persisted description of what the household owns and
// how long the money has to last
type Portfolio struct {
	Assets         []Asset         `yaml:"assets" json:"assets"`
	StartAge       int             `yaml:"start_age" json:"start_age"`
	LifeExpectancy int             `yaml:"life_expectancy" json:"life_expectancy"`
	InflationPct   decimal.Decimal `yaml:"inflation_pct" json:"inflation_pct"`
}

// TotalPrincipal sums the principal of every asset
func TotalPrincipal(assets []Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.Principal)
	}
	return total
}

// HorizonYears is the number of simulated years between start age and life expectancy
func (p *Portfolio) HorizonYears() int {
	return p.LifeExpectancy - p.StartAge
}

// InflationRate returns inflation as a decimal fraction (2% -> 0.02)
func (p *Portfolio) InflationRate() float64 {
	return p.InflationPct.Div(decimal.NewFromInt(100)).InexactFloat64()
}

// SimulationParameters builds solver parameters for this portfolio
func (p *Portfolio) SimulationParameters(runs int, successThreshold float64) SimulationParameters {
	return SimulationParameters{
		StartAge:         p.StartAge,
		HorizonYears:     p.HorizonYears(),
		InflationRate:    p.InflationRate(),
		RunsPerIteration: runs,
		SuccessThreshold: successThreshold,
	}
}
