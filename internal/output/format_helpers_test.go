package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "$-42.10", FormatCurrency(decimal.NewFromFloat(-42.1)))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "95.0%", FormatPercentage(decimal.NewFromFloat(0.95)))
	assert.Equal(t, "100.0%", FormatPercentage(decimal.NewFromInt(1)))
	assert.Equal(t, "0.0%", FormatPercentage(decimal.Zero))
	assert.Equal(t, "12.3%", FormatPercentage(decimal.NewFromFloat(0.1234)))
}
