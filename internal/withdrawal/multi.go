package withdrawal

import (
	"context"
	"fmt"
	"sort"

	"github.com/rgehrsitz/swrgo/internal/calculation"
	"github.com/rgehrsitz/swrgo/internal/domain"
)

// SolveThresholds runs one solve per success threshold, lowest threshold
// first. Progress is reported across the whole sweep.
func (s *Solver) SolveThresholds(
	ctx context.Context,
	assets []domain.Asset,
	params domain.SimulationParameters,
	thresholds []float64,
	src calculation.Source,
	onProgress ProgressFunc,
) ([]ThresholdResult, error) {
	if len(thresholds) == 0 {
		return nil, &SolverError{
			Operation: "solve_thresholds",
			Message:   "at least one threshold is required",
		}
	}

	sorted := append([]float64(nil), thresholds...)
	sort.Float64s(sorted)
	for _, th := range sorted {
		if th < 0 || th > 1 {
			return nil, &SolverError{
				Operation: "solve_thresholds",
				Message:   fmt.Sprintf("threshold %v outside [0, 1]", th),
			}
		}
	}

	results := make([]ThresholdResult, 0, len(sorted))
	for idx, th := range sorted {
		p := params
		p.SuccessThreshold = th

		var stepProgress ProgressFunc
		if onProgress != nil {
			done := float64(idx)
			n := float64(len(sorted))
			stepProgress = func(percent float64) {
				onProgress((done*100 + percent) / n)
			}
		}

		res, err := s.Solve(ctx, assets, p, src, stepProgress)
		if err != nil {
			return nil, err
		}
		results = append(results, ThresholdResult{Threshold: th, Result: res})
	}

	return results, nil
}
