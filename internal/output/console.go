package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a human readable report
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	var buf bytes.Buffer
	s := report.Summarize()

	fmt.Fprintln(&buf, "SAFE WITHDRAWAL ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))

	if p := report.Portfolio; p != nil {
		fmt.Fprintf(&buf, "Ages %d to %d (%d years), inflation %s\n",
			p.StartAge, p.LifeExpectancy, p.HorizonYears(), FormatPercentage(p.InflationPct))
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%-24s %16s %10s %8s\n", "Asset", "Principal", "Return", "Risk")
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		for _, a := range p.Assets {
			fmt.Fprintf(&buf, "%-24s %16s %10s %8s\n", a.Name, FormatCurrency(a.Principal), FormatPercentage(a.ExpectedReturnPct), a.Risk)
		}
		fmt.Fprintf(&buf, "%-24s %16s\n", "Total", FormatCurrency(report.TotalPrincipal()))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "Simulations per iteration: %d\n", report.Parameters.RunsPerIteration)
	fmt.Fprintf(&buf, "Target success rate:       %s\n",
		FormatPercentage(decimal.NewFromFloat(report.Parameters.SuccessThreshold).Mul(decimalHundred)))
	if report.Seed != 0 {
		fmt.Fprintf(&buf, "Seed:                      %d\n", report.Seed)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Safe annual withdrawal:    %s\n", FormatCurrency(s.SafeWithdrawal))
	fmt.Fprintf(&buf, "Monthly equivalent:        %s\n", FormatCurrency(s.MonthlyWithdrawal))
	fmt.Fprintf(&buf, "Initial withdrawal rate:   %s\n", FormatPercentage(s.WithdrawalRatePct))
	fmt.Fprintf(&buf, "Simulated success rate:    %s\n", FormatPercentage(s.SuccessRatePct))
	fmt.Fprintln(&buf)

	if len(report.Sweep) > 0 {
		fmt.Fprintln(&buf, "BY CONFIDENCE LEVEL")
		fmt.Fprintf(&buf, "%-12s %18s %12s\n", "Threshold", "Withdrawal", "Success")
		fmt.Fprintln(&buf, strings.Repeat("-", 44))
		for _, tr := range report.Sweep {
			fmt.Fprintf(&buf, "%-12s %18s %12s\n",
				FormatPercentage(decimal.NewFromFloat(tr.Threshold).Mul(decimalHundred)),
				FormatCurrency(decimal.NewFromFloat(tr.Result.SafeWithdrawal)),
				FormatPercentage(decimal.NewFromFloat(tr.Result.SuccessRate).Mul(decimalHundred)))
		}
		fmt.Fprintln(&buf)
	}

	if len(report.Result.PercentileBands) > 0 {
		fmt.Fprintln(&buf, "PORTFOLIO VALUE BY AGE")
		fmt.Fprintf(&buf, "%-6s %18s %18s %18s\n", "Age", "10th pct", "Median", "90th pct")
		fmt.Fprintln(&buf, strings.Repeat("-", 63))
		for _, b := range report.Result.PercentileBands {
			fmt.Fprintf(&buf, "%-6d %18s %18s %18s\n", b.Age,
				FormatCurrency(decimal.NewFromFloat(b.P10)),
				FormatCurrency(decimal.NewFromFloat(b.P50)),
				FormatCurrency(decimal.NewFromFloat(b.P90)))
		}
	} else {
		fmt.Fprintln(&buf, "Nothing to simulate: the portfolio has no principal or no years to fund.")
	}

	return buf.Bytes(), nil
}
