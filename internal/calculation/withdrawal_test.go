package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

func TestResolveWithdrawalStrategies(t *testing.T) {
	tests := []struct {
		name         string
		req          WithdrawalRequest
		expectedTrad decimal.Decimal
		expectedRoth decimal.Decimal
	}{
		{
			name: "proportional splits in balance ratio",
			req: WithdrawalRequest{
				Need:        decimal.NewFromInt(20000),
				Traditional: decimal.NewFromInt(350000),
				Roth:        decimal.NewFromInt(150000),
				Strategy:    domain.StrategyProportional,
			},
			expectedTrad: decimal.NewFromInt(14000),
			expectedRoth: decimal.NewFromInt(6000),
		},
		{
			name: "traditional first exhausts traditional",
			req: WithdrawalRequest{
				Need:        decimal.NewFromInt(20000),
				Traditional: decimal.NewFromInt(15000),
				Roth:        decimal.NewFromInt(150000),
				Strategy:    domain.StrategyTraditionalFirst,
			},
			expectedTrad: decimal.NewFromInt(15000),
			expectedRoth: decimal.NewFromInt(5000),
		},
		{
			name: "roth first exhausts roth",
			req: WithdrawalRequest{
				Need:        decimal.NewFromInt(20000),
				Traditional: decimal.NewFromInt(350000),
				Roth:        decimal.NewFromInt(8000),
				Strategy:    domain.StrategyRothFirst,
			},
			expectedTrad: decimal.NewFromInt(12000),
			expectedRoth: decimal.NewFromInt(8000),
		},
		{
			name: "custom split ignores balance ratio",
			req: WithdrawalRequest{
				Need:        decimal.NewFromInt(20000),
				Traditional: decimal.NewFromInt(350000),
				Roth:        decimal.NewFromInt(150000),
				Strategy:    domain.StrategyCustomSplit,
				CustomSplit: &domain.CustomSplit{
					TraditionalPct: decimal.NewFromFloat(0.25),
					RothPct:        decimal.NewFromFloat(0.75),
				},
			},
			expectedTrad: decimal.NewFromInt(5000),
			expectedRoth: decimal.NewFromInt(15000),
		},
		{
			name: "bracket fill stops traditional at the ceiling",
			req: WithdrawalRequest{
				Need:               decimal.NewFromInt(40000),
				Traditional:        decimal.NewFromInt(350000),
				Roth:               decimal.NewFromInt(150000),
				Strategy:           domain.StrategyBracketFill,
				BracketCeiling:     decimal.NewFromInt(47150),
				OtherTaxableIncome: decimal.NewFromInt(30000),
			},
			expectedTrad: decimal.NewFromInt(17150),
			expectedRoth: decimal.NewFromInt(22850),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := ResolveWithdrawal(tt.req)

			assert.False(t, split.Depleted)
			assert.True(t, split.Traditional.Sub(tt.expectedTrad).Abs().LessThan(decimal.NewFromFloat(0.01)),
				"traditional: expected %s, got %s", tt.expectedTrad, split.Traditional.StringFixed(2))
			assert.True(t, split.Roth.Sub(tt.expectedRoth).Abs().LessThan(decimal.NewFromFloat(0.01)),
				"roth: expected %s, got %s", tt.expectedRoth, split.Roth.StringFixed(2))
			assert.True(t, split.Total().Sub(tt.req.Need).Abs().LessThan(decimal.NewFromFloat(0.01)),
				"total withdrawal must equal the need")
		})
	}
}

func TestResolveWithdrawalEnforcesRMDFloor(t *testing.T) {
	// Roth-first would take everything from Roth, but the RMD forces
	// Traditional up and reduces Roth by the same amount.
	split := ResolveWithdrawal(WithdrawalRequest{
		Need:        decimal.NewFromInt(20000),
		Traditional: decimal.NewFromInt(300000),
		Roth:        decimal.NewFromInt(200000),
		RMD:         decimal.NewFromInt(12000),
		Strategy:    domain.StrategyRothFirst,
	})

	assert.True(t, split.Traditional.Equal(decimal.NewFromInt(12000)),
		"traditional must meet the RMD, got %s", split.Traditional)
	assert.True(t, split.Roth.Equal(decimal.NewFromInt(8000)))
	assert.True(t, split.Total().Equal(decimal.NewFromInt(20000)))
}

func TestResolveWithdrawalRMDExceedsNeed(t *testing.T) {
	// The legal minimum is withdrawn even when the need is smaller.
	split := ResolveWithdrawal(WithdrawalRequest{
		Need:        decimal.NewFromInt(5000),
		Traditional: decimal.NewFromInt(300000),
		Roth:        decimal.NewFromInt(200000),
		RMD:         decimal.NewFromInt(11000),
		Strategy:    domain.StrategyProportional,
	})

	assert.True(t, split.Traditional.GreaterThanOrEqual(decimal.NewFromInt(11000)),
		"traditional %s must cover the RMD", split.Traditional.StringFixed(2))
}

func TestResolveWithdrawalDepletion(t *testing.T) {
	split := ResolveWithdrawal(WithdrawalRequest{
		Need:        decimal.NewFromInt(50000),
		Traditional: decimal.NewFromInt(20000),
		Roth:        decimal.NewFromInt(10000),
		Strategy:    domain.StrategyProportional,
	})

	assert.True(t, split.Depleted, "need beyond the pool is a depletion, not an error")
	assert.True(t, split.Traditional.Equal(decimal.NewFromInt(20000)))
	assert.True(t, split.Roth.Equal(decimal.NewFromInt(10000)))
}

func TestResolveWithdrawalClampsOverflow(t *testing.T) {
	// Custom split asks for more Roth than exists; the overflow moves
	// to Traditional and the total still meets the need.
	split := ResolveWithdrawal(WithdrawalRequest{
		Need:        decimal.NewFromInt(20000),
		Traditional: decimal.NewFromInt(300000),
		Roth:        decimal.NewFromInt(4000),
		Strategy:    domain.StrategyCustomSplit,
		CustomSplit: &domain.CustomSplit{
			TraditionalPct: decimal.NewFromFloat(0.10),
			RothPct:        decimal.NewFromFloat(0.90),
		},
	})

	assert.False(t, split.Depleted)
	assert.True(t, split.Roth.Equal(decimal.NewFromInt(4000)))
	assert.True(t, split.Traditional.Equal(decimal.NewFromInt(16000)))
}
