package calculation

import (
	"github.com/drawplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ExpensesForYear returns the total expenses for a year offset: the
// inflation-adjusted base scaled by the spending-phase multiplier,
// plus healthcare on its own inflation track. Healthcare does not
// shrink with the phase multiplier.
func ExpensesForYear(cfg *domain.SimulationConfig, yearOffset, age int) (total, healthcare decimal.Decimal) {
	one := decimal.NewFromInt(1)

	base := cfg.BaseAnnualExpenses
	inflationFactor := one.Add(cfg.InflationRate)
	for i := 0; i < yearOffset; i++ {
		base = base.Mul(inflationFactor)
	}
	base = base.Mul(PhaseMultiplier(age, cfg.Phases))

	healthcare = cfg.HealthcareExpenses
	healthcareFactor := one.Add(cfg.HealthcareInflation)
	for i := 0; i < yearOffset; i++ {
		healthcare = healthcare.Mul(healthcareFactor)
	}

	return base.Add(healthcare), healthcare
}
