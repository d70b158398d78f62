package calculation

import (
	"github.com/drawplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PhaseMultiplier maps an age onto the smile-curve spending multiplier.
// A boundary age belongs to the later phase: ages strictly below
// GoGoEndAge spend at the go-go rate, [GoGoEndAge, GoSlowEndAge) at the
// go-slow rate, and GoSlowEndAge onward at the no-go rate.
func PhaseMultiplier(age int, phases domain.SpendingPhases) decimal.Decimal {
	switch {
	case age < phases.GoGoEndAge:
		return phases.GoGoRate
	case age < phases.GoSlowEndAge:
		return phases.GoSlowRate
	default:
		return phases.NoGoRate
	}
}
