package withdrawal

import (
	"context"

	"github.com/rgehrsitz/swrgo/internal/calculation"
	"github.com/rgehrsitz/swrgo/internal/domain"
)

// Solver searches for the largest inflation-indexed withdrawal that keeps
// the simulated success rate at or above the threshold
type Solver struct {
	Runner  *calculation.Runner
	Options SolverOptions
	Logger  calculation.Logger
}

// NewSolver creates a new withdrawal solver
func NewSolver(options SolverOptions) *Solver {
	return &Solver{
		Runner:  calculation.NewRunner(options.Workers),
		Options: options,
		Logger:  calculation.NopLogger{},
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultSolverOptions())
}

// SetLogger sets the logger; nil restores the no-op logger
func (s *Solver) SetLogger(l calculation.Logger) {
	if l == nil {
		s.Logger = calculation.NopLogger{}
		return
	}
	s.Logger = l
}

// Solve bisects the withdrawal amount over [0, 2*principal/horizon].
//
// Success rate is assumed non-increasing in the withdrawal amount. Zero
// principal, a non-positive horizon or no runs per iteration yields a zero
// result without running anything. The only error is cancellation, observed between iterations.
func (s *Solver) Solve(ctx context.Context, assets []domain.Asset, params domain.SimulationParameters, src calculation.Source, onProgress ProgressFunc) (domain.SolverResult, error) {
	if err := s.Options.Validate(); err != nil {
		return domain.SolverResult{}, err
	}

	totalPrincipal := domain.TotalPrincipal(assets).InexactFloat64()
	if totalPrincipal <= 0 || params.HorizonYears <= 0 || params.RunsPerIteration <= 0 {
		s.Logger.Debugf("degenerate input: principal=%.2f horizon=%d runs=%d", totalPrincipal, params.HorizonYears, params.RunsPerIteration)
		return domain.SolverResult{PercentileBands: []domain.PercentileBand{}}, nil
	}

	low := 0.0
	high := totalPrincipal / float64(params.HorizonYears) * 2
	best := 0.0
	var bestPaths []domain.Path

	iterations := s.Options.Iterations
	for i := 0; i < iterations; i++ {
		select {
		case <-ctx.Done():
			return domain.SolverResult{}, &SolverError{
				Operation: "solve",
				Message:   "cancelled",
				Cause:     ctx.Err(),
			}
		default:
		}

		mid := low + (high-low)/2
		outcome := s.Runner.Run(assets, params, mid, src)

		if outcome.SuccessRate >= params.SuccessThreshold {
			best = mid
			bestPaths = outcome.Paths
			low = mid
		} else {
			high = mid
		}
		s.Logger.Debugf("iteration %d/%d: withdrawal=%.2f success=%.4f range=[%.2f, %.2f]",
			i+1, iterations, mid, outcome.SuccessRate, low, high)

		if onProgress != nil {
			onProgress(float64(i+1) / float64(iterations) * 100)
		}
	}

	bands := calculation.SummarizePercentiles(bestPaths, params.StartAge, params.HorizonYears)

	// Fresh batch for the reported rate, independent of the search draws
	final := s.Runner.Run(assets, params, best, src)
	s.Logger.Infof("safe withdrawal %.2f at success rate %.4f", best, final.SuccessRate)

	return domain.SolverResult{
		SafeWithdrawal:  best,
		SuccessRate:     final.SuccessRate,
		PercentileBands: bands,
	}, nil
}
