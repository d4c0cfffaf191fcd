package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/rgehrsitz/swrgo/internal/output"
	"github.com/rgehrsitz/swrgo/internal/tui/components"
	"github.com/rgehrsitz/swrgo/internal/tui/tuistyles"
)

// ResultsModel represents the results display scene
type ResultsModel struct {
	report *output.Report
	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{width: 80}
}

// SetReport updates the report to display
func (m *ResultsModel) SetReport(report *output.Report) {
	m.report = report
}

// Report returns the report on display, or nil
func (m *ResultsModel) Report() *output.Report {
	return m.report
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	// Results scene is read-only
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.report == nil {
		return tuistyles.InfoStyle.Render("No results yet. Press enter on the setup screen to solve.")
	}
	if len(m.report.Result.PercentileBands) == 0 {
		return tuistyles.InfoStyle.Render("Nothing to simulate: the portfolio has no principal or no years to fund.")
	}

	chartWidth := m.width - 6
	if chartWidth > 90 {
		chartWidth = 90
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderKeyMetrics(m.report),
		"",
		components.NewBandChart("Portfolio value by age", m.report.Result.PercentileBands).
			WithSize(chartWidth, 12).
			Render(),
		"",
		renderMilestones(m.report.Result.PercentileBands),
	)
}

func renderKeyMetrics(r *output.Report) string {
	s := r.Summarize()
	target := r.Parameters.SuccessThreshold
	met := r.Result.SuccessRate >= target

	cards := []*components.MetricCard{
		components.NewMetricCard("Safe annual withdrawal", output.FormatCurrency(s.SafeWithdrawal)),
		components.NewMetricCard("Monthly", output.FormatCurrency(s.MonthlyWithdrawal)),
		components.NewMetricCard("Withdrawal rate", output.FormatPercentage(s.WithdrawalRatePct)).
			WithDescription("of starting principal"),
		components.NewMetricCard("Success rate", output.FormatPercentage(s.SuccessRatePct)).
			WithStatus(met, "target "+output.FormatPercentage(decimal.NewFromFloat(target*100))),
	}
	return components.MetricGrid(cards, 4)
}

// renderMilestones lists the bands every ten years plus the final year
func renderMilestones(bands []domain.PercentileBand) string {
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-6s %10s %10s %10s", "Age", "10th", "Median", "90th")))
	for i, band := range bands {
		if i%10 != 0 && i != len(bands)-1 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(tuistyles.TableCellStyle.Render(fmt.Sprintf("%-6d %10s %10s %10s",
			band.Age, output.FormatCompact(band.P10), output.FormatCompact(band.P50), output.FormatCompact(band.P90))))
	}
	return b.String()
}
