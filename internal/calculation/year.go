package calculation

import (
	"github.com/drawplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// YearState is the explicit value threaded through the year pipeline.
// Each stage takes the state and returns a new one; no stage mutates
// shared objects. Balance fields hold start-of-year values until
// applyGrowth replaces them with end-of-year values.
type YearState struct {
	YearOffset int
	Age        int

	// Balances. Traditional+Roth and HighRisk+LowRisk partition the
	// same pool and must stay consistent through every stage.
	Traditional decimal.Decimal
	Roth        decimal.Decimal
	HighRisk    decimal.Decimal
	LowRisk     decimal.Decimal

	// The year's annual returns, fixed for a deterministic run or
	// sampled per trial-year in a Monte Carlo run.
	HighRiskReturn decimal.Decimal
	LowRiskReturn  decimal.Decimal

	// Stage outputs.
	Annuity            decimal.Decimal
	Supplement         decimal.Decimal
	SocialSecurity     decimal.Decimal
	TotalExpenses      decimal.Decimal
	HealthcareExpenses decimal.Decimal
	PhaseMultiplier    decimal.Decimal
	RMDRequired        decimal.Decimal
	Withdrawal         WithdrawalSplit
	Tax                TaxEstimate

	// Depleted carries forward once the pool hits zero; later years
	// run on non-TSP income only.
	Depleted bool

	Result domain.YearResult
}

// YearStepper orchestrates the per-year pipeline:
// computeIncome -> computeExpenses -> computeRMD -> resolveWithdrawal
// -> applyGrowth -> computeTax -> finalize. Transitions are strictly
// sequential; no branch skips a stage.
type YearStepper struct {
	cfg *domain.SimulationConfig
	rmd *RMDCalculator
	tax *TaxEstimator
}

// NewYearStepper builds a stepper for one configuration.
func NewYearStepper(cfg *domain.SimulationConfig) *YearStepper {
	rules := cfg.EffectiveTaxRules()
	return &YearStepper{
		cfg: cfg,
		rmd: NewRMDCalculator(cfg.BirthYear, rules),
		tax: NewTaxEstimator(rules),
	}
}

// Step runs the full pipeline for one year.
func (ys *YearStepper) Step(s YearState) YearState {
	s = ys.computeIncome(s)
	s = ys.computeExpenses(s)
	s = ys.computeRMD(s)
	s = ys.resolveWithdrawal(s)
	s = ys.applyGrowth(s)
	s = ys.computeTax(s)
	s = ys.finalize(s)
	return s
}

func (ys *YearStepper) computeIncome(s YearState) YearState {
	s.Annuity = AnnuityForYear(ys.cfg, s.YearOffset)
	s.Supplement = SupplementForYear(ys.cfg, s.Age)
	s.SocialSecurity = SocialSecurityForYear(ys.cfg, s.Age)
	return s
}

func (ys *YearStepper) computeExpenses(s YearState) YearState {
	s.TotalExpenses, s.HealthcareExpenses = ExpensesForYear(ys.cfg, s.YearOffset, s.Age)
	s.PhaseMultiplier = PhaseMultiplier(s.Age, ys.cfg.Phases)
	return s
}

func (ys *YearStepper) computeRMD(s YearState) YearState {
	s.RMDRequired = ys.rmd.Required(s.Traditional, s.Age)
	return s
}

// resolveWithdrawal determines the year's funding need and splits it
// across the partitions. The need is expenses not covered by non-TSP
// income, floored at the configured withdrawal-rate amount when that
// is larger.
func (ys *YearStepper) resolveWithdrawal(s YearState) YearState {
	startTotal := s.Traditional.Add(s.Roth)
	if s.Depleted || startTotal.LessThanOrEqual(decimal.Zero) {
		s.Depleted = true
		s.Withdrawal = WithdrawalSplit{Depleted: true}
		return s
	}

	nonTSP := s.Annuity.Add(s.Supplement).Add(s.SocialSecurity)
	need := s.TotalExpenses.Sub(nonTSP)
	rateFloor := startTotal.Mul(ys.cfg.WithdrawalRate)
	if need.LessThan(rateFloor) {
		need = rateFloor
	}
	if need.LessThan(decimal.Zero) {
		need = decimal.Zero
	}

	s.Withdrawal = ResolveWithdrawal(WithdrawalRequest{
		Need:               need,
		Traditional:        s.Traditional,
		Roth:               s.Roth,
		RMD:                s.RMDRequired,
		Strategy:           ys.cfg.Strategy,
		CustomSplit:        ys.cfg.CustomSplit,
		BracketCeiling:     ys.cfg.BracketFillCeiling,
		OtherTaxableIncome: s.Annuity.Add(s.Supplement),
	})
	if s.Withdrawal.Depleted {
		s.Depleted = true
	}
	return s
}

// applyGrowth removes the withdrawal from the start-of-year balances
// (low-risk bucket first, since that is what the buffer is for),
// grows each risk bucket by its return, refills the low-risk buffer
// to the configured number of years of next year's expected
// withdrawal, then applies the blended growth factor pro rata to the
// tax-character partition so both partitions keep the same total.
func (ys *YearStepper) applyGrowth(s YearState) YearState {
	one := decimal.NewFromInt(1)
	total := s.Withdrawal.Total()

	// Withdrawal from the tax-character partition per the resolver.
	postTrad := floorZero(s.Traditional.Sub(s.Withdrawal.Traditional))
	postRoth := floorZero(s.Roth.Sub(s.Withdrawal.Roth))

	// Withdrawal from the risk partition, low-risk first.
	fromLow := decimal.Min(total, s.LowRisk)
	postLow := s.LowRisk.Sub(fromLow)
	postHigh := floorZero(s.HighRisk.Sub(total.Sub(fromLow)))

	// Independent growth per bucket. A sampled return below -100%
	// cannot push a bucket negative.
	grownHigh := floorZero(postHigh.Mul(one.Add(s.HighRiskReturn)))
	grownLow := floorZero(postLow.Mul(one.Add(s.LowRiskReturn)))
	newTotal := grownHigh.Add(grownLow)

	// Buffer refill: move funds so the low-risk bucket again holds
	// timeStepYears worth of next year's expected withdrawal.
	target := ys.bufferTarget(s, newTotal)
	if target.GreaterThan(newTotal) {
		target = newTotal
	}
	grownLow = target
	grownHigh = newTotal.Sub(target)

	// Blended growth factor keeps the two partitions summing to the
	// same pool; the Roth side absorbs residual rounding.
	postWithdrawal := postTrad.Add(postRoth)
	if postWithdrawal.GreaterThan(decimal.Zero) {
		factor := newTotal.Div(postWithdrawal)
		postTrad = postTrad.Mul(factor)
		postRoth = newTotal.Sub(postTrad)
	} else {
		postTrad = decimal.Zero
		postRoth = decimal.Zero
		grownHigh = decimal.Zero
		grownLow = decimal.Zero
	}

	s.Traditional = postTrad
	s.Roth = postRoth
	s.HighRisk = grownHigh
	s.LowRisk = grownLow
	if s.Traditional.Add(s.Roth).LessThanOrEqual(decimal.Zero) {
		s.Depleted = true
	}
	return s
}

// bufferTarget estimates next year's withdrawal from the pure income
// and expense functions and scales it by the buffer size.
func (ys *YearStepper) bufferTarget(s YearState, poolTotal decimal.Decimal) decimal.Decimal {
	nextOffset := s.YearOffset + 1
	nextAge := s.Age + 1

	nextExpenses, _ := ExpensesForYear(ys.cfg, nextOffset, nextAge)
	nextNeed := nextExpenses.Sub(NonTSPIncomeForYear(ys.cfg, nextOffset, nextAge))
	rateFloor := poolTotal.Mul(ys.cfg.WithdrawalRate)
	if nextNeed.LessThan(rateFloor) {
		nextNeed = rateFloor
	}
	if nextNeed.LessThan(decimal.Zero) {
		nextNeed = decimal.Zero
	}
	return nextNeed.Mul(decimal.NewFromInt(int64(ys.cfg.TimeStepYears)))
}

func (ys *YearStepper) computeTax(s YearState) YearState {
	ordinary := s.Annuity.Add(s.Supplement).Add(s.Withdrawal.Traditional)
	s.Tax = ys.tax.Estimate(ordinary, s.SocialSecurity, ys.cfg, s.Age)
	return s
}

func (ys *YearStepper) finalize(s YearState) YearState {
	totalIncome := s.Annuity.Add(s.Supplement).Add(s.SocialSecurity).
		Add(s.Withdrawal.Traditional).Add(s.Withdrawal.Roth)
	totalTax := s.Tax.FederalTax.Add(s.Tax.StateTax).Add(s.Tax.IRMAASurcharge)
	afterTax := totalIncome.Sub(totalTax)

	s.Result = domain.YearResult{
		Year:                     s.YearOffset + 1,
		Age:                      s.Age,
		Annuity:                  s.Annuity,
		Supplement:               s.Supplement,
		SocialSecurity:           s.SocialSecurity,
		TSPWithdrawalTraditional: s.Withdrawal.Traditional,
		TSPWithdrawalRoth:        s.Withdrawal.Roth,
		TotalIncome:              totalIncome,
		TaxableIncome:            s.Tax.TaxableIncome,
		FederalTax:               s.Tax.FederalTax,
		StateTax:                 s.Tax.StateTax,
		IRMAASurcharge:           s.Tax.IRMAASurcharge,
		AfterTaxIncome:           afterTax,
		TotalExpenses:            s.TotalExpenses,
		HealthcareExpenses:       s.HealthcareExpenses,
		Surplus:                  afterTax.Sub(s.TotalExpenses),
		PhaseMultiplier:          s.PhaseMultiplier,
		TraditionalBalance:       s.Traditional,
		RothBalance:              s.Roth,
		HighRiskBalance:          s.HighRisk,
		LowRiskBalance:           s.LowRisk,
		TotalTSPBalance:          s.Traditional.Add(s.Roth),
		RMDRequired:              s.RMDRequired,
		RMDSatisfied:             s.Withdrawal.Traditional.GreaterThanOrEqual(s.RMDRequired),
		Depleted:                 s.Depleted,
	}
	return s
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}
