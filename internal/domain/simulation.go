package domain

// SimulationParameters controls one solve
type SimulationParameters struct {
	StartAge         int     `json:"startAge" yaml:"start_age"`
	HorizonYears     int     `json:"horizonYears" yaml:"horizon_years"`
	InflationRate    float64 `json:"inflationRate" yaml:"inflation_rate"` // decimal fraction, e.g. 0.02
	RunsPerIteration int     `json:"runsPerIteration" yaml:"runs_per_iteration"`
	SuccessThreshold float64 `json:"successThreshold" yaml:"success_threshold"` // in [0,1]
}

// Path is the year-by-year total portfolio value of one simulated trial
type Path []float64

// RunOutcome aggregates one batch of trials at a single withdrawal amount
type RunOutcome struct {
	SuccessRate float64
	Paths       []Path
}

// PercentileBand holds the distribution of portfolio value at one age
type PercentileBand struct {
	Age int     `json:"age" yaml:"age"`
	P10 float64 `json:"p10" yaml:"p10"`
	P50 float64 `json:"p50" yaml:"p50"`
	P90 float64 `json:"p90" yaml:"p90"`
}

// SolverResult is the outcome of a safe withdrawal search
type SolverResult struct {
	SafeWithdrawal  float64          `json:"safeWithdrawal" yaml:"safe_withdrawal"`
	SuccessRate     float64          `json:"successRate" yaml:"success_rate"`
	PercentileBands []PercentileBand `json:"percentileBands" yaml:"percentile_bands"`
}

// WithdrawalRate expresses the safe withdrawal as a fraction of the starting principal
func (r SolverResult) WithdrawalRate(totalPrincipal float64) float64 {
	if totalPrincipal <= 0 {
		return 0
	}
	return r.SafeWithdrawal / totalPrincipal
}
