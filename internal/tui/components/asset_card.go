package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/rgehrsitz/swrgo/internal/output"
	"github.com/rgehrsitz/swrgo/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// AssetTable renders the portfolio's holdings with their share of principal
func AssetTable(p *domain.Portfolio) string {
	if p == nil || len(p.Assets) == 0 {
		return tuistyles.InfoStyle.Render("No assets")
	}

	total := domain.TotalPrincipal(p.Assets)
	header := tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-20s %16s %8s %8s %7s", "Asset", "Principal", "Return", "Risk", "Share"))

	rows := []string{header}
	for _, a := range p.Assets {
		share := "-"
		if total.IsPositive() {
			share = a.Principal.Div(total).Mul(hundred).StringFixed(0) + "%"
		}
		rows = append(rows, tuistyles.TableCellStyle.Render(fmt.Sprintf("%-20s %16s %8s %8s %7s",
			truncate(a.Name, 20), output.FormatCurrency(a.Principal), output.FormatPercentage(a.ExpectedReturnPct), a.Risk, share)))
	}
	rows = append(rows, tuistyles.SubtitleStyle.Render(fmt.Sprintf(
		"Total %s • ages %d to %d • inflation %s",
		output.FormatCurrency(total), p.StartAge, p.LifeExpectancy, output.FormatPercentage(p.InflationPct))))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

var hundred = decimal.NewFromInt(100)
