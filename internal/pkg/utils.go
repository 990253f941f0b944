package pkg

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const localeFractionDigits = 3

// FormatNumber renders d the way an en-US locale does by default: grouped
// thousands and at most three fraction digits, trailing zeros dropped.
func FormatNumber(d decimal.Decimal) string {
	s := d.Round(localeFractionDigits).String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}

	return b.String()
}

func FormatMoney(d decimal.Decimal) string {
	return "$" + FormatNumber(d)
}

// FormatPlain renders d without grouping, e.g. a multiplier "2.5".
func FormatPlain(d decimal.Decimal) string {
	return d.String()
}

func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// Slugify lowers s and joins whitespace-separated words with dashes.
func Slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
