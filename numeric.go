package wealthdash

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceAmount turns a statement cell into a decimal amount. It strips every
// rune that is not a digit or a decimal point, keeping only a leading minus
// sign, so "HK$1,234.50" becomes 1234.50 and "(extra)" or "-" become zero.
// It never fails: an unparseable result is zero, consistent with the
// fail-safe policy of the conversion engine.
func CoerceAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
