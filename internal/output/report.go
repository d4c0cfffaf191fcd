package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/rgehrsitz/swrgo/internal/withdrawal"
	"github.com/shopspring/decimal"
)

// Report bundles everything a formatter needs to describe one solve
type Report struct {
	Portfolio  *domain.Portfolio            `json:"portfolio" yaml:"portfolio"`
	Parameters domain.SimulationParameters  `json:"parameters" yaml:"parameters"`
	Result     domain.SolverResult          `json:"result" yaml:"result"`
	Sweep      []withdrawal.ThresholdResult `json:"sweep,omitempty" yaml:"sweep,omitempty"`
	Seed       uint64                       `json:"seed" yaml:"seed"`
}

// TotalPrincipal is the portfolio's starting value
func (r *Report) TotalPrincipal() decimal.Decimal {
	if r.Portfolio == nil {
		return decimal.Zero
	}
	return domain.TotalPrincipal(r.Portfolio.Assets)
}

// Summary holds the headline numbers derived from a report
type Summary struct {
	SafeWithdrawal    decimal.Decimal `json:"safeWithdrawal" yaml:"safe_withdrawal"`
	MonthlyWithdrawal decimal.Decimal `json:"monthlyWithdrawal" yaml:"monthly_withdrawal"`
	WithdrawalRatePct decimal.Decimal `json:"withdrawalRatePct" yaml:"withdrawal_rate_pct"`
	SuccessRatePct    decimal.Decimal `json:"successRatePct" yaml:"success_rate_pct"`
}

// Summarize rounds the result to cents and derives the monthly and rate figures
func (r *Report) Summarize() Summary {
	safe := decimal.NewFromFloat(r.Result.SafeWithdrawal).Round(2)
	rate := decimal.Zero
	if total := r.TotalPrincipal(); total.IsPositive() {
		rate = safe.Div(total).Mul(decimalHundred).Round(2)
	}
	return Summary{
		SafeWithdrawal:    safe,
		MonthlyWithdrawal: safe.Div(decimal.NewFromInt(12)).Round(2),
		WithdrawalRatePct: rate,
		SuccessRatePct:    decimal.NewFromFloat(r.Result.SuccessRate).Mul(decimalHundred).Round(1),
	}
}

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as dollars with thousands separators
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + "$" + b.String() + "." + frac
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatCompact renders large amounts as $1.2M / $350K for chart axes
func FormatCompact(value float64) string {
	abs := value
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case abs >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

// ratePercent renders a fraction in [0,1] as a percentage
func ratePercent(fraction float64) string {
	return FormatPercentage(decimal.NewFromFloat(fraction).Mul(decimalHundred))
}
