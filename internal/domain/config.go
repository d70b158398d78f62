package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WithdrawalStrategy selects how a year's funding need is split across
// the Traditional and Roth partitions.
type WithdrawalStrategy string

const (
	StrategyProportional     WithdrawalStrategy = "proportional"
	StrategyTraditionalFirst WithdrawalStrategy = "traditional_first"
	StrategyRothFirst        WithdrawalStrategy = "roth_first"
	StrategyCustomSplit      WithdrawalStrategy = "custom_split"
	StrategyBracketFill      WithdrawalStrategy = "tax_bracket_fill"
)

// FilingStatus is the federal filing status used for brackets,
// deductions, Social Security thresholds and IRMAA tiers.
type FilingStatus string

const (
	FilingSingle         FilingStatus = "single"
	FilingMarriedJointly FilingStatus = "married_jointly"
)

// CustomSplit fixes the Traditional/Roth withdrawal fractions for the
// custom_split strategy. The two fractions must sum to 1.
type CustomSplit struct {
	TraditionalPct decimal.Decimal `yaml:"traditional_pct"`
	RothPct        decimal.Decimal `yaml:"roth_pct"`
}

// SpendingPhases defines the smile-curve boundaries and multipliers.
// Ages strictly below GoGoEndAge spend at GoGoRate, ages in
// [GoGoEndAge, GoSlowEndAge) at GoSlowRate, and GoSlowEndAge onward at
// NoGoRate. A boundary age belongs to the later phase.
type SpendingPhases struct {
	GoGoEndAge   int             `yaml:"go_go_end_age"`
	GoSlowEndAge int             `yaml:"go_slow_end_age"`
	GoGoRate     decimal.Decimal `yaml:"go_go_rate"`
	GoSlowRate   decimal.Decimal `yaml:"go_slow_rate"`
	NoGoRate     decimal.Decimal `yaml:"no_go_rate"`
}

// MonteCarloSettings controls the stochastic runner.
type MonteCarloSettings struct {
	NumSimulations int             `yaml:"num_simulations"`
	Seed           int64           `yaml:"seed"`
	HighRiskStdDev decimal.Decimal `yaml:"high_risk_std_dev"`
	LowRiskStdDev  decimal.Decimal `yaml:"low_risk_std_dev"`
}

// SimulationConfig is the immutable input to a projection run.
// All rate and percentage fields are fractions in [0, 1].
type SimulationConfig struct {
	RetirementAge int `yaml:"retirement_age"`
	EndAge        int `yaml:"end_age"`
	BirthYear     int `yaml:"birth_year"`
	SSClaimAge    int `yaml:"ss_claim_age"`

	// Income sources at retirement (annual amounts unless noted).
	FERSAnnuity      decimal.Decimal `yaml:"fers_annuity"`
	FERSSupplement   decimal.Decimal `yaml:"fers_supplement"`
	SSMonthlyBenefit decimal.Decimal `yaml:"ss_monthly_benefit"`

	// TSP pool and its two partitions at retirement.
	TSPBalance     decimal.Decimal `yaml:"tsp_balance"`
	TraditionalPct decimal.Decimal `yaml:"traditional_pct"`
	HighRiskPct    decimal.Decimal `yaml:"high_risk_pct"`

	// Expected annual returns per risk bucket.
	HighRiskReturn decimal.Decimal `yaml:"high_risk_return"`
	LowRiskReturn  decimal.Decimal `yaml:"low_risk_return"`

	// Withdrawal policy.
	WithdrawalRate     decimal.Decimal    `yaml:"withdrawal_rate"`
	TimeStepYears      int                `yaml:"time_step_years"`
	Strategy           WithdrawalStrategy `yaml:"withdrawal_strategy"`
	CustomSplit        *CustomSplit       `yaml:"custom_split,omitempty"`
	BracketFillCeiling decimal.Decimal    `yaml:"bracket_fill_ceiling,omitempty"`

	// Expenses.
	BaseAnnualExpenses   decimal.Decimal `yaml:"base_annual_expenses"`
	HealthcareExpenses   decimal.Decimal `yaml:"healthcare_expenses"`
	Phases               SpendingPhases  `yaml:"spending_phases"`
	COLARate             decimal.Decimal `yaml:"cola_rate"`
	InflationRate        decimal.Decimal `yaml:"inflation_rate"`
	HealthcareInflation  decimal.Decimal `yaml:"healthcare_inflation"`

	// Tax inputs.
	FilingStatus      FilingStatus    `yaml:"filing_status"`
	StateCode         string          `yaml:"state_code"`
	ItemizedDeduction decimal.Decimal `yaml:"itemized_deduction"`
	IRMAAEnabled      bool            `yaml:"irmaa_enabled"`

	// TaxRules overrides the statutory lookup tables; nil means the
	// built-in defaults (see DefaultTaxRules).
	TaxRules *TaxRules `yaml:"tax_rules,omitempty"`

	MonteCarlo MonteCarloSettings `yaml:"monte_carlo"`
}

// ApplyDefaults fills zero-valued optional fields with the standard
// defaults. It never overrides an explicitly set value.
func (c *SimulationConfig) ApplyDefaults() {
	if c.SSClaimAge == 0 {
		c.SSClaimAge = 62
	}
	if c.Strategy == "" {
		c.Strategy = StrategyProportional
	}
	if c.FilingStatus == "" {
		c.FilingStatus = FilingSingle
	}
	if c.TimeStepYears == 0 {
		c.TimeStepYears = 2
	}
	if c.Phases.GoGoEndAge == 0 {
		c.Phases.GoGoEndAge = 72
	}
	if c.Phases.GoSlowEndAge == 0 {
		c.Phases.GoSlowEndAge = 82
	}
	if c.Phases.GoGoRate.IsZero() {
		c.Phases.GoGoRate = decimal.NewFromFloat(1.0)
	}
	if c.Phases.GoSlowRate.IsZero() {
		c.Phases.GoSlowRate = decimal.NewFromFloat(0.85)
	}
	if c.Phases.NoGoRate.IsZero() {
		c.Phases.NoGoRate = decimal.NewFromFloat(0.75)
	}
	if c.MonteCarlo.NumSimulations == 0 {
		c.MonteCarlo.NumSimulations = 1000
	}
	if c.MonteCarlo.Seed == 0 {
		c.MonteCarlo.Seed = 42
	}
	if c.MonteCarlo.HighRiskStdDev.IsZero() {
		c.MonteCarlo.HighRiskStdDev = decimal.NewFromFloat(0.16)
	}
	if c.MonteCarlo.LowRiskStdDev.IsZero() {
		c.MonteCarlo.LowRiskStdDev = decimal.NewFromFloat(0.05)
	}
}

// EffectiveTaxRules returns the configured rule tables, or the
// built-in defaults when none were supplied.
func (c *SimulationConfig) EffectiveTaxRules() *TaxRules {
	if c.TaxRules != nil {
		return c.TaxRules
	}
	return DefaultTaxRules()
}

// Validate checks the configuration before any simulation state is
// built. The engine refuses to run on the first violation.
func (c *SimulationConfig) Validate() error {
	if c.RetirementAge <= 0 {
		return fmt.Errorf("retirement_age must be positive, got %d", c.RetirementAge)
	}
	if c.EndAge <= c.RetirementAge {
		return fmt.Errorf("end_age (%d) must be greater than retirement_age (%d)", c.EndAge, c.RetirementAge)
	}
	if c.BirthYear <= 0 {
		return fmt.Errorf("birth_year must be set")
	}
	if c.SSClaimAge < 62 || c.SSClaimAge > 70 {
		return fmt.Errorf("ss_claim_age must be between 62 and 70, got %d", c.SSClaimAge)
	}
	for _, f := range []struct {
		name string
		v    decimal.Decimal
	}{
		{"traditional_pct", c.TraditionalPct},
		{"high_risk_pct", c.HighRiskPct},
		{"withdrawal_rate", c.WithdrawalRate},
		{"cola_rate", c.COLARate},
		{"inflation_rate", c.InflationRate},
		{"healthcare_inflation", c.HealthcareInflation},
		{"go_go_rate", c.Phases.GoGoRate},
		{"go_slow_rate", c.Phases.GoSlowRate},
		{"no_go_rate", c.Phases.NoGoRate},
	} {
		if f.v.LessThan(decimal.Zero) || f.v.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s must be in [0, 1], got %s", f.name, f.v)
		}
	}
	for _, f := range []struct {
		name string
		v    decimal.Decimal
	}{
		{"fers_annuity", c.FERSAnnuity},
		{"fers_supplement", c.FERSSupplement},
		{"ss_monthly_benefit", c.SSMonthlyBenefit},
		{"tsp_balance", c.TSPBalance},
		{"base_annual_expenses", c.BaseAnnualExpenses},
		{"healthcare_expenses", c.HealthcareExpenses},
		{"itemized_deduction", c.ItemizedDeduction},
	} {
		if f.v.LessThan(decimal.Zero) {
			return fmt.Errorf("%s must not be negative, got %s", f.name, f.v)
		}
	}
	if c.TimeStepYears < 0 {
		return fmt.Errorf("time_step_years must not be negative, got %d", c.TimeStepYears)
	}
	if c.Phases.GoGoEndAge >= c.Phases.GoSlowEndAge {
		return fmt.Errorf("go_go_end_age (%d) must be below go_slow_end_age (%d)", c.Phases.GoGoEndAge, c.Phases.GoSlowEndAge)
	}
	switch c.Strategy {
	case StrategyProportional, StrategyTraditionalFirst, StrategyRothFirst:
	case StrategyCustomSplit:
		if c.CustomSplit == nil {
			return fmt.Errorf("custom_split strategy requires a custom_split block")
		}
		for _, f := range []struct {
			name string
			v    decimal.Decimal
		}{
			{"custom_split.traditional_pct", c.CustomSplit.TraditionalPct},
			{"custom_split.roth_pct", c.CustomSplit.RothPct},
		} {
			if f.v.LessThan(decimal.Zero) || f.v.GreaterThan(decimal.NewFromInt(1)) {
				return fmt.Errorf("%s must be in [0, 1], got %s", f.name, f.v)
			}
		}
		sum := c.CustomSplit.TraditionalPct.Add(c.CustomSplit.RothPct)
		if !sum.Equal(decimal.NewFromInt(1)) {
			return fmt.Errorf("custom_split fractions must sum to 1, got %s", sum)
		}
	case StrategyBracketFill:
		if c.BracketFillCeiling.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("tax_bracket_fill strategy requires a positive bracket_fill_ceiling")
		}
	default:
		return fmt.Errorf("unknown withdrawal_strategy %q", c.Strategy)
	}
	switch c.FilingStatus {
	case FilingSingle, FilingMarriedJointly:
	default:
		return fmt.Errorf("unknown filing_status %q", c.FilingStatus)
	}
	if c.MonteCarlo.NumSimulations <= 0 {
		return fmt.Errorf("num_simulations must be positive, got %d", c.MonteCarlo.NumSimulations)
	}
	if c.MonteCarlo.HighRiskStdDev.LessThan(decimal.Zero) || c.MonteCarlo.LowRiskStdDev.LessThan(decimal.Zero) {
		return fmt.Errorf("monte carlo standard deviations must not be negative")
	}
	return nil
}
