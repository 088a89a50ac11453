package wealthdash

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency is an ISO-4217 code out of the dashboard's supported set.
type Currency string

// The supported currencies. Anchor is the currency all exchange rates are
// expressed against.
const (
	HKD Currency = "HKD"
	CNY Currency = "CNY"
	USD Currency = "USD"
	JPY Currency = "JPY"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	AUD Currency = "AUD"
	CAD Currency = "CAD"
	SGD Currency = "SGD"

	Anchor = HKD
)

// Currencies lists the supported set in display order.
var Currencies = []Currency{HKD, CNY, USD, JPY, EUR, GBP, AUD, CAD, SGD}

func (c Currency) String() string { return string(c) }

// Symbol returns the display symbol for the currency ("HK$", "€", ...).
func (c Currency) Symbol() string {
	// money.New never returns a nil currency, unknown codes get a synthetic one.
	return money.New(0, string(c)).Currency().Grapheme
}

// ParseCurrency parses a currency code, case-insensitively.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Currencies {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported currency %q", s)
}

// CoerceCurrency maps any string to a supported currency, falling back to the
// anchor. It is the single coercion point used by snapshot load, import
// normalization and the quick-add form.
func CoerceCurrency(s string) Currency {
	c, err := ParseCurrency(s)
	if err != nil {
		return Anchor
	}
	return c
}
