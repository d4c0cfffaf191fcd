package calculation

import (
	"math"
	"sort"

	"github.com/rgehrsitz/swrgo/internal/domain"
)

// Band percentiles reported for every simulated year
const (
	PercentileLow    = 0.10
	PercentileMedian = 0.50
	PercentileHigh   = 0.90
)

// NearestRank picks the element at floor(len*p) of an ascending slice.
// It does not interpolate between neighbours.
func NearestRank(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Floor(float64(len(sorted)) * p))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// SummarizePercentiles reduces a set of paths to per-year 10th/50th/90th
// percentile values. Entries missing from a short path count as zero.
func SummarizePercentiles(paths []domain.Path, startAge, horizonYears int) []domain.PercentileBand {
	if horizonYears <= 0 {
		return []domain.PercentileBand{}
	}

	bands := make([]domain.PercentileBand, horizonYears)
	values := make([]float64, len(paths))

	for year := 0; year < horizonYears; year++ {
		for i, p := range paths {
			if year < len(p) {
				values[i] = p[year]
			} else {
				values[i] = 0
			}
		}
		sort.Float64s(values)

		bands[year] = domain.PercentileBand{
			Age: startAge + year,
			P10: NearestRank(values, PercentileLow),
			P50: NearestRank(values, PercentileMedian),
			P90: NearestRank(values, PercentileHigh),
		}
	}

	return bands
}
