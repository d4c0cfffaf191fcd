package calculation

import (
	"math"

	"github.com/rgehrsitz/swrgo/internal/domain"
)

// assetModel is the float form of an asset used inside the simulation loop
type assetModel struct {
	principal float64
	mean      float64 // expected annual return as a fraction
	stdDev    float64
}

// Volatility maps a risk tier to its annual return standard deviation
type Volatility func(domain.RiskTier) float64

// DefaultVolatility uses the static tier table
func DefaultVolatility(tier domain.RiskTier) float64 {
	return tier.StdDev()
}

func toAssetModels(assets []domain.Asset, vol Volatility) []assetModel {
	if vol == nil {
		vol = DefaultVolatility
	}
	models := make([]assetModel, len(assets))
	for i, a := range assets {
		models[i] = assetModel{
			principal: a.Principal.InexactFloat64(),
			mean:      a.ExpectedReturnPct.InexactFloat64() / 100,
			stdDev:    vol(a.Risk),
		}
	}
	return models
}

// simulatePath runs one trial. values is scratch space of len(assets) and
// is overwritten.
func simulatePath(assets []assetModel, values []float64, params domain.SimulationParameters, annualWithdrawal float64, nv *BoxMuller) (bool, domain.Path) {
	for i, a := range assets {
		values[i] = a.principal
	}
	path := make(domain.Path, max(params.HorizonYears, 0))

	for year := 0; year < params.HorizonYears; year++ {
		total := 0.0
		for _, v := range values {
			total += v
		}
		path[year] = total

		if total <= 0 {
			// Ruined: the remaining years are already zero
			return false, path
		}

		withdrawal := annualWithdrawal * math.Pow(1+params.InflationRate, float64(year))
		fraction := math.Min(1, withdrawal/total)

		for i, a := range assets {
			v := values[i] * (1 - fraction)
			r := nv.Sample(a.mean, a.stdDev)
			values[i] = math.Max(0, v*(1+r))
		}
	}

	final := 0.0
	for _, v := range values {
		final += v
	}
	return final >= 0, path
}

// SimulatePath runs a single trial of the portfolio under a fixed initial
// annual withdrawal that grows with inflation. It returns false as soon as
// the portfolio is exhausted.
func SimulatePath(assets []domain.Asset, params domain.SimulationParameters, annualWithdrawal float64, nv *BoxMuller) (bool, domain.Path) {
	models := toAssetModels(assets, nil)
	return simulatePath(models, make([]float64, len(models)), params, annualWithdrawal, nv)
}
