package domain

import "github.com/shopspring/decimal"

// YearResult is one row of a projection. Balances are end-of-year.
// Invariant: TraditionalBalance + RothBalance == HighRiskBalance +
// LowRiskBalance == TotalTSPBalance (the same pool through two
// partitions).
type YearResult struct {
	Year int
	Age  int

	// Income components (gross, annual).
	Annuity                  decimal.Decimal
	Supplement               decimal.Decimal
	SocialSecurity           decimal.Decimal
	TSPWithdrawalTraditional decimal.Decimal
	TSPWithdrawalRoth        decimal.Decimal
	TotalIncome              decimal.Decimal

	// Tax components.
	TaxableIncome  decimal.Decimal
	FederalTax     decimal.Decimal
	StateTax       decimal.Decimal
	IRMAASurcharge decimal.Decimal
	AfterTaxIncome decimal.Decimal

	// Expenses and the year's bottom line.
	TotalExpenses      decimal.Decimal
	HealthcareExpenses decimal.Decimal
	Surplus            decimal.Decimal
	PhaseMultiplier    decimal.Decimal

	// End-of-year balances.
	TraditionalBalance decimal.Decimal
	RothBalance        decimal.Decimal
	HighRiskBalance    decimal.Decimal
	LowRiskBalance     decimal.Decimal
	TotalTSPBalance    decimal.Decimal

	RMDRequired  decimal.Decimal
	RMDSatisfied bool

	// Depleted marks this year (and all later years) as running on
	// non-TSP income only.
	Depleted bool
}

// FullSimulationResult is the complete output of one projection run.
// It is built once and never mutated afterwards.
type FullSimulationResult struct {
	Years []YearResult

	// DepletionAge is the first age at which the TSP pool reached
	// zero, or nil if it never does.
	DepletionAge *int

	BalanceAtAge85   decimal.Decimal
	LifetimeIncome   decimal.Decimal
	LifetimeExpenses decimal.Decimal
}

// MonteCarloYearBand aggregates one simulated age across all trials.
type MonteCarloYearBand struct {
	Age int
	P10 decimal.Decimal
	P25 decimal.Decimal
	P50 decimal.Decimal
	P75 decimal.Decimal
	P90 decimal.Decimal

	// SuccessRate is the fraction of trials still solvent at this age.
	SuccessRate decimal.Decimal
}

// MonteCarloSummary is the aggregated output of a stochastic run. Raw
// trial paths are discarded after aggregation.
type MonteCarloSummary struct {
	Bands []MonteCarloYearBand

	// OverallSuccessRate is the fraction of trials solvent through the
	// configured end age; SuccessRateAtAge85 is the same measured at
	// age 85 (or the end age if the horizon stops earlier).
	OverallSuccessRate decimal.Decimal
	SuccessRateAtAge85 decimal.Decimal

	NumSimulations int
	Seed           int64
}
