package calculation

import (
	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// sequenceSource replays a fixed list of uniform draws, wrapping around
type sequenceSource struct {
	values []float64
	pos    int
	calls  int // Float64 draws
	seeds  int // Uint64 draws
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	s.calls++
	return v
}

func (s *sequenceSource) Uint64() uint64 {
	s.seeds++
	return uint64(s.seeds) * 0x9e3779b97f4a7c15
}

func testAsset(name string, principal int64, pct float64, risk domain.RiskTier) domain.Asset {
	return domain.Asset{
		Name:              name,
		Principal:         decimal.NewFromInt(principal),
		ExpectedReturnPct: decimal.NewFromFloat(pct),
		Risk:              risk,
	}
}

func balancedAssets() []domain.Asset {
	return []domain.Asset{
		testAsset("S&P 500", 500000, 8, domain.RiskMedium),
		testAsset("Bonds", 500000, 4, domain.RiskLow),
	}
}

func testParams(years, runs int) domain.SimulationParameters {
	return domain.SimulationParameters{
		StartAge:         60,
		HorizonYears:     years,
		InflationRate:    0.02,
		RunsPerIteration: runs,
		SuccessThreshold: 0.9,
	}
}

func zeroVolatility(domain.RiskTier) float64 { return 0 }
