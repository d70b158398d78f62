package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

func TestFederalTaxBracketWalk(t *testing.T) {
	te := NewTaxEstimator(nil)

	// Single, $50,000 gross, under 65: deduction 15,000 leaves 35,000
	// taxable. 10% of 11,600 plus 12% of 23,400 = 3,968.
	tax := te.FederalTax(decimal.NewFromInt(50000), domain.FilingSingle, 62, decimal.Zero)
	assert.True(t, tax.Sub(decimal.NewFromInt(3968)).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"expected 3968, got %s", tax.StringFixed(2))
}

func TestFederalTaxDeductions(t *testing.T) {
	te := NewTaxEstimator(nil)

	// Income fully absorbed by the deduction taxes at zero.
	assert.True(t, te.FederalTax(decimal.NewFromInt(14000), domain.FilingSingle, 62, decimal.Zero).IsZero())

	// The age-65 addition widens the standard deduction.
	under65 := te.FederalTax(decimal.NewFromInt(50000), domain.FilingSingle, 64, decimal.Zero)
	at65 := te.FederalTax(decimal.NewFromInt(50000), domain.FilingSingle, 65, decimal.Zero)
	assert.True(t, at65.LessThan(under65))

	// An itemized deduction larger than the standard one wins.
	itemized := te.FederalTax(decimal.NewFromInt(50000), domain.FilingSingle, 62, decimal.NewFromInt(25000))
	standard := te.FederalTax(decimal.NewFromInt(50000), domain.FilingSingle, 62, decimal.Zero)
	assert.True(t, itemized.LessThan(standard))

	// A smaller itemized deduction is ignored.
	small := te.FederalTax(decimal.NewFromInt(50000), domain.FilingSingle, 62, decimal.NewFromInt(5000))
	assert.True(t, small.Equal(standard))
}

func TestStateTaxFlatRate(t *testing.T) {
	te := NewTaxEstimator(nil)
	income := decimal.NewFromInt(50000)

	pa := te.StateTax(income, "PA")
	assert.True(t, pa.Sub(decimal.NewFromInt(1535)).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"PA flat 3.07%%: expected 1535, got %s", pa.StringFixed(2))

	assert.True(t, te.StateTax(income, "FL").IsZero(), "no-tax states pay zero")
	assert.True(t, te.StateTax(income, "").IsZero())
}

func TestTaxableSocialSecurityBands(t *testing.T) {
	te := NewTaxEstimator(nil)
	benefit := decimal.NewFromInt(20000)

	tests := []struct {
		name        string
		otherIncome decimal.Decimal
		expected    decimal.Decimal
	}{
		// provisional = other + 10,000
		{"below lower threshold", decimal.NewFromInt(10000), decimal.Zero},
		{"in the 50% band", decimal.NewFromInt(20000), decimal.NewFromInt(2500)},
		{"in the 85% band, capped at 85% of benefit", decimal.NewFromInt(40000), decimal.NewFromInt(17000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := te.TaxableSocialSecurity(benefit, tt.otherIncome, domain.FilingSingle)
			assert.True(t, got.Sub(tt.expected).Abs().LessThan(decimal.NewFromFloat(0.01)),
				"expected %s, got %s", tt.expected, got.StringFixed(2))
		})
	}
}

func TestTaxableSocialSecurityFilingThresholds(t *testing.T) {
	te := NewTaxEstimator(nil)
	benefit := decimal.NewFromInt(20000)
	other := decimal.NewFromInt(20000) // provisional 30,000

	// Over the single lower threshold but under the MFJ one.
	single := te.TaxableSocialSecurity(benefit, other, domain.FilingSingle)
	mfj := te.TaxableSocialSecurity(benefit, other, domain.FilingMarriedJointly)
	assert.True(t, single.GreaterThan(decimal.Zero))
	assert.True(t, mfj.IsZero())
}

func TestIRMAASurcharge(t *testing.T) {
	te := NewTaxEstimator(nil)

	// Below the first tier: nothing.
	assert.True(t, te.IRMAASurcharge(decimal.NewFromInt(90000), domain.FilingSingle, 70, true).IsZero())

	// Two tiers exceeded: (69.90 + 104.80) * 12 = 2096.40.
	surcharge := te.IRMAASurcharge(decimal.NewFromInt(150000), domain.FilingSingle, 70, true)
	assert.True(t, surcharge.Sub(decimal.NewFromFloat(2096.40)).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"expected 2096.40, got %s", surcharge.StringFixed(2))

	// Not yet Medicare-eligible, or modeling disabled: nothing.
	assert.True(t, te.IRMAASurcharge(decimal.NewFromInt(150000), domain.FilingSingle, 64, true).IsZero())
	assert.True(t, te.IRMAASurcharge(decimal.NewFromInt(150000), domain.FilingSingle, 70, false).IsZero())
}

func TestEstimateExcludesRothFromTaxableIncome(t *testing.T) {
	te := NewTaxEstimator(nil)
	cfg := &domain.SimulationConfig{FilingStatus: domain.FilingSingle}

	// Ordinary income excludes Roth withdrawals by construction; the
	// estimate over annuity+traditional only must match.
	est := te.Estimate(decimal.NewFromInt(44000), decimal.Zero, cfg, 62)
	assert.True(t, est.TaxableIncome.Equal(decimal.NewFromInt(44000)))
	assert.True(t, est.TaxableSS.IsZero())
	assert.True(t, est.IRMAASurcharge.IsZero())
}
