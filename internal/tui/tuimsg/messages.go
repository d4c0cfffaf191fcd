package tuimsg

import (
	"github.com/rgehrsitz/swrgo/internal/domain"
)

// PortfolioLoadedMsg signals the portfolio file has been parsed and validated
type PortfolioLoadedMsg struct {
	Portfolio *domain.Portfolio
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// SolveRequestedMsg asks the application to start a solve with these settings
type SolveRequestedMsg struct {
	Runs       int
	Threshold  float64
	Iterations int
}

// SolveProgressMsg carries one progress report from the running solver
type SolveProgressMsg struct {
	Percent float64
}

// SolveCompleteMsg signals the solver goroutine has finished
type SolveCompleteMsg struct {
	Parameters domain.SimulationParameters
	Result     domain.SolverResult
	Err        error
}
