package calculation

import (
	"github.com/drawplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// WithdrawalRequest is the input to the strategy resolver: the year's
// funding need, the start-of-year partition balances, the RMD floor,
// and the selected strategy with its payload.
type WithdrawalRequest struct {
	Need        decimal.Decimal
	Traditional decimal.Decimal
	Roth        decimal.Decimal
	RMD         decimal.Decimal

	Strategy    domain.WithdrawalStrategy
	CustomSplit *domain.CustomSplit

	// Bracket-fill inputs: the ceiling of taxable income to fill up
	// to, and the taxable income already committed before any TSP
	// withdrawal (annuity, supplement).
	BracketCeiling     decimal.Decimal
	OtherTaxableIncome decimal.Decimal
}

// WithdrawalSplit is the resolved (Traditional, Roth) withdrawal pair.
// Traditional >= RMD and Traditional + Roth == need, except when the
// pool cannot cover the need, in which case everything is withdrawn
// and Depleted is set.
type WithdrawalSplit struct {
	Traditional decimal.Decimal
	Roth        decimal.Decimal
	Depleted    bool
}

// Total returns the combined withdrawal amount.
func (ws WithdrawalSplit) Total() decimal.Decimal {
	return ws.Traditional.Add(ws.Roth)
}

// ResolveWithdrawal dispatches the five strategies through a single
// resolver and enforces the RMD floor and balance clamps afterwards.
func ResolveWithdrawal(req WithdrawalRequest) WithdrawalSplit {
	totalBalance := req.Traditional.Add(req.Roth)

	// The legally mandated minimum is withdrawn even when the funding
	// need is smaller.
	need := req.Need
	if need.LessThan(req.RMD) {
		need = req.RMD
	}
	if need.LessThan(decimal.Zero) {
		need = decimal.Zero
	}

	// Depletion is a valid terminal state, not an error: take
	// everything that remains.
	if need.GreaterThanOrEqual(totalBalance) {
		return WithdrawalSplit{
			Traditional: req.Traditional,
			Roth:        req.Roth,
			Depleted:    true,
		}
	}

	var trad, roth decimal.Decimal
	switch req.Strategy {
	case domain.StrategyTraditionalFirst:
		trad = decimal.Min(need, req.Traditional)
		roth = need.Sub(trad)

	case domain.StrategyRothFirst:
		roth = decimal.Min(need, req.Roth)
		trad = need.Sub(roth)

	case domain.StrategyCustomSplit:
		trad = need.Mul(req.CustomSplit.TraditionalPct)
		roth = need.Sub(trad)

	case domain.StrategyBracketFill:
		// Fill Traditional up to the bracket ceiling; Roth is drawn
		// last to preserve tax-free growth.
		headroom := req.BracketCeiling.Sub(req.OtherTaxableIncome)
		if headroom.LessThan(decimal.Zero) {
			headroom = decimal.Zero
		}
		trad = decimal.Min(need, decimal.Min(headroom, req.Traditional))
		roth = need.Sub(trad)

	default: // proportional
		trad = need.Mul(req.Traditional).Div(totalBalance)
		roth = need.Sub(trad)
	}

	trad, roth = clampSplit(trad, roth, req.Traditional, req.Roth, need)

	// Force additional Traditional withdrawal up to the RMD, reducing
	// Roth by the same amount where possible.
	rmdFloor := decimal.Min(req.RMD, req.Traditional)
	if trad.LessThan(rmdFloor) {
		delta := rmdFloor.Sub(trad)
		trad = rmdFloor
		roth = roth.Sub(delta)
		if roth.LessThan(decimal.Zero) {
			roth = decimal.Zero
		}
	}

	return WithdrawalSplit{Traditional: trad, Roth: roth}
}

// clampSplit caps each side at its balance, shifting any overflow to
// the other side so the total still meets the need.
func clampSplit(trad, roth, tradBalance, rothBalance, need decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if trad.GreaterThan(tradBalance) {
		trad = tradBalance
		roth = need.Sub(trad)
	}
	if roth.GreaterThan(rothBalance) {
		roth = rothBalance
		trad = decimal.Min(need.Sub(roth), tradBalance)
	}
	if trad.LessThan(decimal.Zero) {
		trad = decimal.Zero
	}
	if roth.LessThan(decimal.Zero) {
		roth = decimal.Zero
	}
	return trad, roth
}
