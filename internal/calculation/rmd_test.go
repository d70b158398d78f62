package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

func TestRMDStartAgeByBirthYear(t *testing.T) {
	rules := domain.DefaultTaxRules()

	assert.Equal(t, 72, NewRMDCalculator(1949, rules).StartAge())
	assert.Equal(t, 73, NewRMDCalculator(1955, rules).StartAge())
	assert.Equal(t, 75, NewRMDCalculator(1963, rules).StartAge())
}

func TestRMDZeroBeforeStartAge(t *testing.T) {
	rmd := NewRMDCalculator(1955, domain.DefaultTaxRules())
	balance := decimal.NewFromInt(400000)

	assert.True(t, rmd.Required(balance, 62).IsZero())
	assert.True(t, rmd.Required(balance, 72).IsZero(), "1955 cohort starts at 73, not 72")
}

func TestRMDDivisorLookup(t *testing.T) {
	rmd := NewRMDCalculator(1950, domain.DefaultTaxRules())
	balance := decimal.NewFromInt(274000)

	// 274000 / 27.4 = 10000 at age 72
	required := rmd.Required(balance, 72)
	assert.True(t, required.Sub(decimal.NewFromInt(10000)).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"expected 10000, got %s", required.StringFixed(2))

	// 274000 / 16.0 = 17125 at age 85
	required = rmd.Required(balance, 85)
	assert.True(t, required.Sub(decimal.NewFromInt(17125)).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"expected 17125, got %s", required.StringFixed(2))
}

func TestRMDTerminalDivisorFallback(t *testing.T) {
	rmd := NewRMDCalculator(1950, domain.DefaultTaxRules())
	balance := decimal.NewFromInt(64000)

	// Ages past the table use the terminal divisor (6.4 at 100).
	at100 := rmd.Required(balance, 100)
	at105 := rmd.Required(balance, 105)
	assert.True(t, at100.Equal(at105), "ages past the table reuse the terminal divisor")
	assert.True(t, at105.Sub(decimal.NewFromInt(10000)).Abs().LessThan(decimal.NewFromFloat(0.01)))
}

func TestRMDZeroBalanceAndBrokenTable(t *testing.T) {
	rules := domain.DefaultTaxRules()
	rmd := NewRMDCalculator(1950, rules)

	assert.True(t, rmd.Required(decimal.Zero, 80).IsZero())
	assert.True(t, rmd.Required(decimal.NewFromInt(-5), 80).IsZero())

	// A zero divisor must clamp to zero, never divide.
	broken := &RMDCalculator{
		BirthYear: 1950,
		Divisors:  map[int]decimal.Decimal{80: decimal.Zero},
	}
	assert.True(t, broken.Required(decimal.NewFromInt(100000), 80).IsZero())
}
