package calculation

import (
	"github.com/drawplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal brackets and deductions come from the rule tables (2025
//    defaults), with no inflation indexing in future years.
// 2. State tax is a flat configured rate on federal taxable income;
//    states absent from the table tax at zero.
// 3. Taxable Social Security follows the provisional-income method
//    with filing-status thresholds and the 0/50/85% bands.
// 4. IRMAA surcharges are cumulative across exceeded MAGI tiers,
//    annualized, and apply only at age 65+ when modeling is enabled.

// TaxEstimate is the output of one year's tax computation.
type TaxEstimate struct {
	TaxableIncome  decimal.Decimal
	TaxableSS      decimal.Decimal
	FederalTax     decimal.Decimal
	StateTax       decimal.Decimal
	IRMAASurcharge decimal.Decimal
}

// TaxEstimator computes federal, state and IRMAA amounts from the
// configured rule tables.
type TaxEstimator struct {
	Rules *domain.TaxRules
}

// NewTaxEstimator creates a tax estimator over the given rule tables.
func NewTaxEstimator(rules *domain.TaxRules) *TaxEstimator {
	if rules == nil {
		rules = domain.DefaultTaxRules()
	}
	return &TaxEstimator{Rules: rules}
}

// Estimate computes the year's taxes. Ordinary income is everything
// taxable before Social Security (annuity, supplement, Traditional
// withdrawal); Roth withdrawals never enter it.
func (te *TaxEstimator) Estimate(ordinaryIncome, ssBenefit decimal.Decimal, cfg *domain.SimulationConfig, age int) TaxEstimate {
	taxableSS := te.TaxableSocialSecurity(ssBenefit, ordinaryIncome, cfg.FilingStatus)
	grossTaxable := ordinaryIncome.Add(taxableSS)

	federal := te.FederalTax(grossTaxable, cfg.FilingStatus, age, cfg.ItemizedDeduction)
	state := te.StateTax(grossTaxable, cfg.StateCode)

	// MAGI for IRMAA adds back the untaxed portion of Social Security.
	magi := ordinaryIncome.Add(ssBenefit)
	irmaa := te.IRMAASurcharge(magi, cfg.FilingStatus, age, cfg.IRMAAEnabled)

	return TaxEstimate{
		TaxableIncome:  grossTaxable,
		TaxableSS:      taxableSS,
		FederalTax:     federal,
		StateTax:       state,
		IRMAASurcharge: irmaa,
	}
}

// FederalTax applies the greater of the standard (with the age-65
// addition) or itemized deduction, then walks the bracket table.
func (te *TaxEstimator) FederalTax(grossIncome decimal.Decimal, status domain.FilingStatus, age int, itemized decimal.Decimal) decimal.Decimal {
	deduction := te.Rules.StandardDeduction[status]
	if age >= 65 {
		deduction = deduction.Add(te.Rules.AdditionalDeduction65)
	}
	if itemized.GreaterThan(deduction) {
		deduction = itemized
	}

	taxable := grossIncome.Sub(deduction)
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	remaining := taxable
	for _, bracket := range te.Rules.Brackets[status] {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		width := bracket.Max.Sub(bracket.Min)
		if width.LessThanOrEqual(decimal.Zero) {
			continue
		}
		inBracket := decimal.Min(remaining, width)
		tax = tax.Add(inBracket.Mul(bracket.Rate))
		remaining = remaining.Sub(inBracket)
	}
	return tax
}

// StateTax applies the flat configured rate for the state code.
// States without an entry (no-income-tax states) pay zero.
func (te *TaxEstimator) StateTax(taxableIncome decimal.Decimal, stateCode string) decimal.Decimal {
	rate, ok := te.Rules.StateRates[stateCode]
	if !ok || taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return taxableIncome.Mul(rate)
}

// TaxableSocialSecurity computes the taxable portion of a Social
// Security benefit using provisional income (other income plus half
// of the benefit) against the filing-status thresholds.
func (te *TaxEstimator) TaxableSocialSecurity(ssBenefit, otherIncome decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if ssBenefit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	half := decimal.NewFromFloat(0.5)
	provisional := otherIncome.Add(ssBenefit.Mul(half))

	lower, upper := ssThresholds(status)
	if provisional.LessThanOrEqual(lower) {
		return decimal.Zero
	}

	if provisional.LessThanOrEqual(upper) {
		// Up to 50% of the excess over the lower threshold, capped at
		// 50% of the benefit.
		taxable := provisional.Sub(lower).Mul(half)
		return decimal.Min(taxable, ssBenefit.Mul(half))
	}

	// Above the upper threshold up to 85% becomes taxable.
	pct85 := decimal.NewFromFloat(0.85)
	taxable := provisional.Sub(upper).Mul(pct85).
		Add(decimal.Min(upper.Sub(lower).Mul(half), ssBenefit.Mul(half)))
	return decimal.Min(taxable, ssBenefit.Mul(pct85))
}

// ssThresholds returns the provisional-income thresholds for a filing
// status. These are fixed by statute and not inflation indexed.
func ssThresholds(status domain.FilingStatus) (lower, upper decimal.Decimal) {
	if status == domain.FilingMarriedJointly {
		return decimal.NewFromInt(32000), decimal.NewFromInt(44000)
	}
	return decimal.NewFromInt(25000), decimal.NewFromInt(34000)
}

// IRMAASurcharge returns the annualized Medicare surcharge for a MAGI.
// Tiers are cumulative: each exceeded threshold adds its monthly
// amount.
func (te *TaxEstimator) IRMAASurcharge(magi decimal.Decimal, status domain.FilingStatus, age int, enabled bool) decimal.Decimal {
	if !enabled || age < 65 {
		return decimal.Zero
	}

	monthly := decimal.Zero
	for _, tier := range te.Rules.IRMAATiers[status] {
		if magi.LessThanOrEqual(tier.MAGIThreshold) {
			break
		}
		monthly = monthly.Add(tier.MonthlySurcharge)
	}
	return monthly.Mul(decimal.NewFromInt(12))
}
