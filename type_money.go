package wealthdash

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value: a decimal amount in a specific currency.
// The zero value is a zero amount in the anchor currency.
type Money struct {
	value decimal.Decimal
	cur   Currency
}

// M builds a Money from a numeric value and a currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency Currency) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case decimal.Decimal:
		return n
	}
	return decimal.Zero
}

// Currency returns the money's currency, the anchor for the zero value.
func (m Money) Currency() Currency {
	if m.cur == "" {
		return Anchor
	}
	return m.cur
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal { return m.value }

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) Neg() Money       { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money       { return Money{value: m.value.Abs(), cur: m.cur} }

func (m Money) Equal(n Money) bool { return m.Currency() == n.Currency() && m.value.Equal(n.value) }

// Add returns m+n. Both operands must share a currency; the "" currency is
// weak and takes the other side's.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// Sub returns m-n under the same currency rules as Add.
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

func cur(a, b Money) Currency {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + string(a.cur) + "!=" + string(b.cur))
	}
	return a.cur
}

// String formats the value with the currency's symbol and fraction digits,
// e.g. "HK$1,234.50".
func (m Money) String() string {
	c := money.New(0, string(m.Currency())).Currency()
	shifted := m.value.Shift(int32(c.Fraction))
	return c.Formatter().Format(shifted.Round(0).IntPart())
}

// SignedString is String with an explicit plus sign for positive values and
// "-" for zero. Used in transaction listings.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
