package pkg

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	cases := map[string]string{
		"0":          "0",
		"999":        "999",
		"1000":       "1,000",
		"1234.5":     "1,234.5",
		"1234.50":    "1,234.5",
		"152340.75":  "152,340.75",
		"1000000":    "1,000,000",
		"0.1234":     "0.123",
		"-98765.4":   "-98,765.4",
		"5000.00":    "5,000",
		"12345678.9": "12,345,678.9",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(decimal.RequireFromString(in)), in)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$2,500", FormatMoney(decimal.NewFromInt(2500)))
	assert.Equal(t, "$0.4", FormatMoney(decimal.RequireFromString("0.40")))
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "2.5", FormatPlain(decimal.RequireFromString("2.50")))
	assert.Equal(t, "1000", FormatPlain(decimal.NewFromInt(1000)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "60%", FormatPercent(60))
	assert.Equal(t, "0%", FormatPercent(0))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "free-spins", Slugify("Free Spins"))
	assert.Equal(t, "help-&-support", Slugify("  Help &  Support "))
}
