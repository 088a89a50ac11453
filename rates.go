package wealthdash

import (
	"log"
	"maps"

	"github.com/shopspring/decimal"
)

// RateTable maps a currency to its exchange rate against the anchor: one
// unit of the currency is worth rate[c] units of the anchor. The anchor
// itself maps to 1. Keeping every rate relative to the anchor keeps the
// table linear in the number of currencies; converting between two foreign
// currencies hops through the anchor.
type RateTable map[Currency]decimal.Decimal

// DefaultRates is the built-in fallback table used when no refresh has run
// yet. Values are indicative, not live.
func DefaultRates() RateTable {
	return RateTable{
		HKD: decimal.NewFromInt(1),
		CNY: decimal.NewFromFloat(1.08),
		USD: decimal.NewFromFloat(7.78),
		JPY: decimal.NewFromFloat(0.052),
		EUR: decimal.NewFromFloat(8.45),
		GBP: decimal.NewFromFloat(9.85),
		AUD: decimal.NewFromFloat(5.10),
		CAD: decimal.NewFromFloat(5.65),
		SGD: decimal.NewFromFloat(5.80),
	}
}

// rate returns the multiplier from c to the anchor. A missing, zero or
// negative entry converts as identity: the dashboard would rather show an
// unconverted number than crash or divide by zero. The discrepancy is logged.
func (t RateTable) rate(c Currency) decimal.Decimal {
	if c == Anchor {
		return decimal.NewFromInt(1)
	}
	r, ok := t[c]
	if !ok || !r.IsPositive() {
		log.Printf("no usable %s rate, converting as identity", c)
		return decimal.NewFromInt(1)
	}
	return r
}

// Convert converts an amount between two supported currencies via the
// anchor: source amount × rate[source] is anchor-denominated, divided by
// rate[base] to land in the base currency.
func (t RateTable) Convert(amount decimal.Decimal, from, to Currency) decimal.Decimal {
	if from == to {
		return amount
	}
	anchored := amount.Mul(t.rate(from))
	if to == Anchor {
		return anchored
	}
	return anchored.Div(t.rate(to))
}

// ToBase converts a Money value into the given base currency.
func (t RateTable) ToBase(m Money, base Currency) Money {
	return M(t.Convert(m.Amount(), m.Currency(), base), base)
}

// Merge folds a partial rate refresh into the table, entry by entry.
// Non-positive rates are rejected so the table is never partially invalid;
// currencies absent from the update keep their previous rate. The anchor is
// pinned to 1 whatever the feed says.
func (t RateTable) Merge(update map[Currency]decimal.Decimal) {
	for c, r := range update {
		if _, err := ParseCurrency(string(c)); err != nil {
			log.Printf("rate refresh: skipping unsupported currency %q", c)
			continue
		}
		if !r.IsPositive() {
			log.Printf("rate refresh: skipping non-positive %s rate %s", c, r)
			continue
		}
		t[c] = r
	}
	t[Anchor] = decimal.NewFromInt(1)
}

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	return maps.Clone(t)
}
