package calculation

import (
	"github.com/drawplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// The income components are pure functions of (year offset, age,
// config). They carry no state between years; COLA compounding is
// recomputed from the retirement-year base each call.

// AnnuityForYear returns the FERS annuity for a given year offset,
// compounding the COLA from the retirement-year base.
func AnnuityForYear(cfg *domain.SimulationConfig, yearOffset int) decimal.Decimal {
	annuity := cfg.FERSAnnuity
	colaFactor := decimal.NewFromInt(1).Add(cfg.COLARate)
	for i := 0; i < yearOffset; i++ {
		annuity = annuity.Mul(colaFactor)
	}
	return annuity
}

// SupplementForYear returns the FERS supplement, which pays the
// configured amount until age 62 and nothing from 62 onward.
func SupplementForYear(cfg *domain.SimulationConfig, age int) decimal.Decimal {
	if age >= 62 {
		return decimal.Zero
	}
	return cfg.FERSSupplement
}

// SocialSecurityForYear returns the annual Social Security benefit:
// zero before the claiming age, twelve times the configured monthly
// benefit from the claiming age onward. Any SS COLA is pre-baked into
// the configured monthly value.
func SocialSecurityForYear(cfg *domain.SimulationConfig, age int) decimal.Decimal {
	if age < cfg.SSClaimAge {
		return decimal.Zero
	}
	return cfg.SSMonthlyBenefit.Mul(decimal.NewFromInt(12))
}

// NonTSPIncomeForYear sums the income streams that do not come out of
// the TSP pool.
func NonTSPIncomeForYear(cfg *domain.SimulationConfig, yearOffset, age int) decimal.Decimal {
	return AnnuityForYear(cfg, yearOffset).
		Add(SupplementForYear(cfg, age)).
		Add(SocialSecurityForYear(cfg, age))
}
