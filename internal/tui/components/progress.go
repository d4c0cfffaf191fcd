package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/swrgo/internal/tui/tuistyles"
)

// SolveProgress shows how far the bisection search has come
type SolveProgress struct {
	Label      string
	Percent    float64 // 0..100
	Iterations int
	bar        progress.Model
}

// NewSolveProgress creates a progress display for a search of n iterations
func NewSolveProgress(iterations int) *SolveProgress {
	return &SolveProgress{
		Label:      "Searching for the safe withdrawal",
		Iterations: iterations,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// WithWidth sets the bar width
func (p *SolveProgress) WithWidth(width int) *SolveProgress {
	p.bar.Width = width
	return p
}

// Update records the latest percentage reported by the solver
func (p *SolveProgress) Update(percent float64) {
	p.Percent = percent
}

// Iteration converts the percentage back to the number of completed iterations
func (p *SolveProgress) Iteration() int {
	if p.Iterations <= 0 {
		return 0
	}
	return int(p.Percent/100*float64(p.Iterations) + 0.5)
}

// IsComplete returns true once the search reported 100%
func (p *SolveProgress) IsComplete() bool {
	return p.Percent >= 100
}

// Render returns the styled progress bar
func (p *SolveProgress) Render() string {
	var content strings.Builder

	if p.Label != "" {
		content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Bold(true).Render(p.Label))
		content.WriteString("\n\n")
	}

	content.WriteString(p.bar.ViewAs(p.Percent / 100))
	content.WriteString("\n")

	stats := fmt.Sprintf("iteration %d of %d", p.Iteration(), p.Iterations)
	content.WriteString(tuistyles.SubtitleStyle.Render(stats))
	return content.String()
}
