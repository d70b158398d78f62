package domain

import "github.com/shopspring/decimal"

// TaxBracket represents one federal tax bracket.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min"`
	Max  decimal.Decimal `yaml:"max"`
	Rate decimal.Decimal `yaml:"rate"`
}

// IRMAATier is one MAGI threshold with its monthly Part B surcharge.
// Surcharges are cumulative: income above several thresholds pays the
// sum of their monthly amounts.
type IRMAATier struct {
	MAGIThreshold    decimal.Decimal `yaml:"magi_threshold"`
	MonthlySurcharge decimal.Decimal `yaml:"monthly_surcharge"`
}

// TaxRules holds the statutory lookup tables the estimator consumes.
// They change annually by law, so they are data, not code; the zero
// value is unusable — use DefaultTaxRules or a config override.
type TaxRules struct {
	Brackets              map[FilingStatus][]TaxBracket    `yaml:"brackets"`
	StandardDeduction     map[FilingStatus]decimal.Decimal `yaml:"standard_deduction"`
	AdditionalDeduction65 decimal.Decimal                  `yaml:"additional_deduction_65"`
	StateRates            map[string]decimal.Decimal       `yaml:"state_rates"`
	IRMAATiers            map[FilingStatus][]IRMAATier     `yaml:"irmaa_tiers"`
	RMDDivisors           map[int]decimal.Decimal          `yaml:"rmd_divisors"`
}

// DefaultTaxRules returns the built-in 2025 tables.
func DefaultTaxRules() *TaxRules {
	return &TaxRules{
		Brackets: map[FilingStatus][]TaxBracket{
			FilingMarriedJointly: {
				{decimal.Zero, decimal.NewFromInt(23200), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(23200), decimal.NewFromInt(94300), decimal.NewFromFloat(0.12)},
				{decimal.NewFromInt(94300), decimal.NewFromInt(201050), decimal.NewFromFloat(0.22)},
				{decimal.NewFromInt(201050), decimal.NewFromInt(383900), decimal.NewFromFloat(0.24)},
				{decimal.NewFromInt(383900), decimal.NewFromInt(487450), decimal.NewFromFloat(0.32)},
				{decimal.NewFromInt(487450), decimal.NewFromInt(731200), decimal.NewFromFloat(0.35)},
				{decimal.NewFromInt(731200), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
			},
			FilingSingle: {
				{decimal.Zero, decimal.NewFromInt(11600), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(11600), decimal.NewFromInt(47150), decimal.NewFromFloat(0.12)},
				{decimal.NewFromInt(47150), decimal.NewFromInt(100525), decimal.NewFromFloat(0.22)},
				{decimal.NewFromInt(100525), decimal.NewFromInt(191950), decimal.NewFromFloat(0.24)},
				{decimal.NewFromInt(191950), decimal.NewFromInt(243725), decimal.NewFromFloat(0.32)},
				{decimal.NewFromInt(243725), decimal.NewFromInt(609350), decimal.NewFromFloat(0.35)},
				{decimal.NewFromInt(609350), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
			},
		},
		StandardDeduction: map[FilingStatus]decimal.Decimal{
			FilingMarriedJointly: decimal.NewFromInt(30000),
			FilingSingle:         decimal.NewFromInt(15000),
		},
		AdditionalDeduction65: decimal.NewFromInt(1550),
		StateRates: map[string]decimal.Decimal{
			"PA": decimal.NewFromFloat(0.0307),
			"VA": decimal.NewFromFloat(0.0575),
			"MD": decimal.NewFromFloat(0.0475),
			"NC": decimal.NewFromFloat(0.0450),
			"GA": decimal.NewFromFloat(0.0539),
			// No-tax states (FL, TX, WA, NV, TN, AK, SD, WY, NH) are
			// simply absent; a missing state taxes at zero.
		},
		IRMAATiers: map[FilingStatus][]IRMAATier{
			FilingMarriedJointly: {
				{decimal.NewFromInt(206000), decimal.NewFromFloat(69.90)},
				{decimal.NewFromInt(258000), decimal.NewFromFloat(104.80)},
				{decimal.NewFromInt(322000), decimal.NewFromFloat(104.80)},
				{decimal.NewFromInt(386000), decimal.NewFromFloat(104.80)},
				{decimal.NewFromInt(750000), decimal.NewFromFloat(35.00)},
			},
			FilingSingle: {
				{decimal.NewFromInt(103000), decimal.NewFromFloat(69.90)},
				{decimal.NewFromInt(129000), decimal.NewFromFloat(104.80)},
				{decimal.NewFromInt(161000), decimal.NewFromFloat(104.80)},
				{decimal.NewFromInt(193000), decimal.NewFromFloat(104.80)},
				{decimal.NewFromInt(500000), decimal.NewFromFloat(35.00)},
			},
		},
		RMDDivisors: defaultRMDDivisors(),
	}
}

// defaultRMDDivisors is the IRS Uniform Lifetime Table.
func defaultRMDDivisors() map[int]decimal.Decimal {
	return map[int]decimal.Decimal{
		72:  decimal.NewFromFloat(27.4),
		73:  decimal.NewFromFloat(26.5),
		74:  decimal.NewFromFloat(25.5),
		75:  decimal.NewFromFloat(24.6),
		76:  decimal.NewFromFloat(23.7),
		77:  decimal.NewFromFloat(22.9),
		78:  decimal.NewFromFloat(22.0),
		79:  decimal.NewFromFloat(21.1),
		80:  decimal.NewFromFloat(20.2),
		81:  decimal.NewFromFloat(19.4),
		82:  decimal.NewFromFloat(18.5),
		83:  decimal.NewFromFloat(17.7),
		84:  decimal.NewFromFloat(16.8),
		85:  decimal.NewFromFloat(16.0),
		86:  decimal.NewFromFloat(15.2),
		87:  decimal.NewFromFloat(14.4),
		88:  decimal.NewFromFloat(13.7),
		89:  decimal.NewFromFloat(12.9),
		90:  decimal.NewFromFloat(12.2),
		91:  decimal.NewFromFloat(11.5),
		92:  decimal.NewFromFloat(10.8),
		93:  decimal.NewFromFloat(10.1),
		94:  decimal.NewFromFloat(9.5),
		95:  decimal.NewFromFloat(8.9),
		96:  decimal.NewFromFloat(8.4),
		97:  decimal.NewFromFloat(7.8),
		98:  decimal.NewFromFloat(7.3),
		99:  decimal.NewFromFloat(6.8),
		100: decimal.NewFromFloat(6.4),
	}
}
