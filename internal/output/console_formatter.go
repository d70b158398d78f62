package output

import (
	"fmt"
	"strings"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// ConsoleFormatter renders results as plain-text tables for terminals.
type ConsoleFormatter struct{}

// Name returns the formatter identifier.
func (ConsoleFormatter) Name() string { return "console" }

// FormatProjection renders the year-by-year table with a summary
// footer.
func (ConsoleFormatter) FormatProjection(result *domain.FullSimulationResult) ([]byte, error) {
	var b strings.Builder

	b.WriteString("RETIREMENT DISTRIBUTION PROJECTION\n")
	b.WriteString(strings.Repeat("=", 118) + "\n")
	fmt.Fprintf(&b, "%-4s %-4s %14s %14s %12s %12s %14s %14s %12s %5s\n",
		"Yr", "Age", "Income", "After-Tax", "Fed Tax", "IRMAA", "Expenses", "Withdrawal", "Balance", "RMD")
	b.WriteString(strings.Repeat("-", 118) + "\n")

	for _, yr := range result.Years {
		rmdFlag := "ok"
		if !yr.RMDSatisfied {
			rmdFlag = "MISS"
		}
		marker := ""
		if yr.Depleted {
			marker = " *"
		}
		fmt.Fprintf(&b, "%-4d %-4d %14s %14s %12s %12s %14s %14s %12s %5s%s\n",
			yr.Year, yr.Age,
			FormatCurrency(yr.TotalIncome),
			FormatCurrency(yr.AfterTaxIncome),
			FormatCurrency(yr.FederalTax),
			FormatCurrency(yr.IRMAASurcharge),
			FormatCurrency(yr.TotalExpenses),
			FormatCurrency(yr.TSPWithdrawalTraditional.Add(yr.TSPWithdrawalRoth)),
			FormatCurrency(yr.TotalTSPBalance),
			rmdFlag, marker)
	}

	b.WriteString(strings.Repeat("-", 118) + "\n")
	if result.DepletionAge != nil {
		fmt.Fprintf(&b, "Depletion age:     %d (* marks depleted years)\n", *result.DepletionAge)
	} else {
		b.WriteString("Depletion age:     never\n")
	}
	fmt.Fprintf(&b, "Balance at 85:     %s\n", FormatCurrency(result.BalanceAtAge85))
	fmt.Fprintf(&b, "Lifetime income:   %s\n", FormatCurrency(result.LifetimeIncome))
	fmt.Fprintf(&b, "Lifetime expenses: %s\n", FormatCurrency(result.LifetimeExpenses))

	return []byte(b.String()), nil
}

// FormatMonteCarlo renders the percentile band table and the two
// scalar success rates.
func (ConsoleFormatter) FormatMonteCarlo(summary *domain.MonteCarloSummary) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "MONTE CARLO BANDS (%d trials, seed %d)\n", summary.NumSimulations, summary.Seed)
	b.WriteString(strings.Repeat("=", 104) + "\n")
	fmt.Fprintf(&b, "%-4s %14s %14s %14s %14s %14s %9s\n",
		"Age", "P10", "P25", "P50", "P75", "P90", "Success")
	b.WriteString(strings.Repeat("-", 104) + "\n")

	for _, band := range summary.Bands {
		fmt.Fprintf(&b, "%-4d %14s %14s %14s %14s %14s %9s\n",
			band.Age,
			FormatCurrency(band.P10),
			FormatCurrency(band.P25),
			FormatCurrency(band.P50),
			FormatCurrency(band.P75),
			FormatCurrency(band.P90),
			FormatPercentage(band.SuccessRate))
	}

	b.WriteString(strings.Repeat("-", 104) + "\n")
	fmt.Fprintf(&b, "Overall success rate:   %s\n", FormatPercentage(summary.OverallSuccessRate))
	fmt.Fprintf(&b, "Success rate at age 85: %s\n", FormatPercentage(summary.SuccessRateAtAge85))

	return []byte(b.String()), nil
}
