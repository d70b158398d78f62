package calculation

import (
	"fmt"

	"github.com/drawplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// returnsFunc supplies the (high-risk, low-risk) annual returns for a
// year offset. Deterministic runs return the configured expectations;
// Monte Carlo trials sample fresh values every year.
type returnsFunc func(yearOffset int) (highRisk, lowRisk decimal.Decimal)

// RunDeterministic drives the year stepper from retirement age to end
// age with the configured expected returns. The result is complete
// even when the pool depletes mid-horizon; depletion is recorded, not
// raised.
func (e *Engine) RunDeterministic(cfg *domain.SimulationConfig) (*domain.FullSimulationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	e.Logger.Debugf("deterministic run: ages %d-%d, strategy %s", cfg.RetirementAge, cfg.EndAge, cfg.Strategy)

	result := runProjection(cfg, func(int) (decimal.Decimal, decimal.Decimal) {
		return cfg.HighRiskReturn, cfg.LowRiskReturn
	})
	return result, nil
}

// runProjection is the shared core of the deterministic and Monte
// Carlo paths. The config must already be validated.
func runProjection(cfg *domain.SimulationConfig, returns returnsFunc) *domain.FullSimulationResult {
	stepper := NewYearStepper(cfg)

	state := initialYearState(cfg)
	horizon := cfg.EndAge - cfg.RetirementAge + 1
	years := make([]domain.YearResult, 0, horizon)

	var depletionAge *int
	lifetimeIncome := decimal.Zero
	lifetimeExpenses := decimal.Zero
	balanceAt85 := decimal.Zero

	for offset := 0; offset < horizon; offset++ {
		state.YearOffset = offset
		state.Age = cfg.RetirementAge + offset
		state.HighRiskReturn, state.LowRiskReturn = returns(offset)

		state = stepper.Step(state)
		years = append(years, state.Result)

		if state.Depleted && depletionAge == nil {
			age := state.Age
			depletionAge = &age
		}
		if state.Age == 85 {
			balanceAt85 = state.Result.TotalTSPBalance
		}
		lifetimeIncome = lifetimeIncome.Add(state.Result.TotalIncome)
		lifetimeExpenses = lifetimeExpenses.Add(state.Result.TotalExpenses)
	}

	return &domain.FullSimulationResult{
		Years:            years,
		DepletionAge:     depletionAge,
		BalanceAtAge85:   balanceAt85,
		LifetimeIncome:   lifetimeIncome,
		LifetimeExpenses: lifetimeExpenses,
	}
}

// initialYearState splits the starting pool across both partitions.
func initialYearState(cfg *domain.SimulationConfig) YearState {
	traditional := cfg.TSPBalance.Mul(cfg.TraditionalPct)
	highRisk := cfg.TSPBalance.Mul(cfg.HighRiskPct)
	return YearState{
		Traditional: traditional,
		Roth:        cfg.TSPBalance.Sub(traditional),
		HighRisk:    highRisk,
		LowRisk:     cfg.TSPBalance.Sub(highRisk),
	}
}
