package calculation

import (
	"github.com/drawplan/drawdown-calculator/internal/domain"
	"github.com/drawplan/drawdown-calculator/pkg/agerule"
	"github.com/shopspring/decimal"
)

// RMDCalculator computes Required Minimum Distributions against the
// Traditional partition. Roth is exempt.
type RMDCalculator struct {
	BirthYear int
	Divisors  map[int]decimal.Decimal
}

// NewRMDCalculator creates an RMD calculator using the supplied
// divisor table (the IRS Uniform Lifetime Table by default).
func NewRMDCalculator(birthYear int, rules *domain.TaxRules) *RMDCalculator {
	divisors := rules.RMDDivisors
	if len(divisors) == 0 {
		divisors = domain.DefaultTaxRules().RMDDivisors
	}
	return &RMDCalculator{
		BirthYear: birthYear,
		Divisors:  divisors,
	}
}

// StartAge returns the age at which RMDs begin for this birth year.
func (rmd *RMDCalculator) StartAge() int {
	return agerule.RMDStartAge(rmd.BirthYear)
}

// Required returns the minimum distribution for an age given the
// start-of-year Traditional balance. Before the start age it is zero.
func (rmd *RMDCalculator) Required(traditionalBalance decimal.Decimal, age int) decimal.Decimal {
	if age < rmd.StartAge() {
		return decimal.Zero
	}
	if traditionalBalance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	divisor := rmd.divisorForAge(age)
	if divisor.LessThanOrEqual(decimal.Zero) {
		// A broken table must never divide by zero; a 40-year
		// projection has to terminate with a complete result set.
		return decimal.Zero
	}
	return traditionalBalance.Div(divisor)
}

// divisorForAge looks up the life-expectancy divisor, falling back to
// the table's terminal entry for ages past its end.
func (rmd *RMDCalculator) divisorForAge(age int) decimal.Decimal {
	if divisor, ok := rmd.Divisors[age]; ok {
		return divisor
	}

	maxAge := 0
	for a := range rmd.Divisors {
		if a > maxAge {
			maxAge = a
		}
	}
	if age > maxAge && maxAge > 0 {
		return rmd.Divisors[maxAge]
	}
	return decimal.Zero
}
