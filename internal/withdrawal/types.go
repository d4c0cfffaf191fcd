package withdrawal

import (
	"fmt"
	"runtime"

	"github.com/rgehrsitz/swrgo/internal/domain"
)

// DefaultIterations is the number of bisection steps per solve. Each step
// reruns the full batch of trials; fifteen halvings leave the final interval
// well under 0.01% of the initial search range.
const DefaultIterations = 15

// ProgressFunc receives percent complete (0-100) after every iteration
type ProgressFunc func(percent float64)

// SolverOptions configures the search
type SolverOptions struct {
	Iterations int // Bisection steps
	Workers    int // Goroutines per batch of trials
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Iterations: DefaultIterations,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// Validate checks the options are usable
func (o SolverOptions) Validate() error {
	if o.Iterations <= 0 {
		return &SolverError{
			Operation: "validate_options",
			Message:   fmt.Sprintf("iterations must be positive, got %d", o.Iterations),
		}
	}
	if o.Workers < 0 {
		return &SolverError{
			Operation: "validate_options",
			Message:   fmt.Sprintf("workers cannot be negative, got %d", o.Workers),
		}
	}
	return nil
}

// ThresholdResult pairs a success threshold with the solve it produced
type ThresholdResult struct {
	Threshold float64             `json:"threshold" yaml:"threshold"`
	Result    domain.SolverResult `json:"result" yaml:"result"`
}

// SolverError represents errors from the withdrawal solver
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
