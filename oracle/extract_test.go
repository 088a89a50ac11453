package oracle

import (
	"errors"
	"testing"

	"github.com/Ray-XRay/wealthdash-google"
	"github.com/shopspring/decimal"
)

func TestDecodeExtraction(t *testing.T) {
	raw := `{
		"accounts": [
			{"name": "HSBC", "balance": 1234.5, "currency": "HKD", "type": "Bank"},
			{"name": "Futu", "balance": "US$500", "currency": "usd", "type": "Brokerage"},
			{"name": "", "balance": 999}
		],
		"transactions": [
			{"date": "2025-06-15", "description": "Lunch", "category": "Dining", "amount": -88},
			{"date": "mid june", "description": "Taxi", "category": "Cab", "amount": "-45.50"}
		]
	}`

	ex, err := decodeExtraction([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}

	if len(ex.Accounts) != 2 {
		t.Fatalf("got %d accounts, want 2 (nameless one dropped)", len(ex.Accounts))
	}
	if !ex.Accounts[0].Balance.Equal(decimal.NewFromFloat(1234.5)) {
		t.Errorf("numeric balance = %s", ex.Accounts[0].Balance)
	}
	futu := ex.Accounts[1]
	if !futu.Balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("string balance = %s, want 500", futu.Balance)
	}
	if futu.Currency != wealthdash.USD {
		t.Errorf("currency = %s, want USD", futu.Currency)
	}
	if futu.Type != wealthdash.Bank {
		t.Errorf("off-contract type = %s, want the Bank default", futu.Type)
	}

	if len(ex.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(ex.Transactions))
	}
	if ex.Transactions[0].Date.String() != "2025-06-15" || ex.Transactions[0].Category != wealthdash.Dining {
		t.Errorf("first transaction: %+v", ex.Transactions[0])
	}
	taxi := ex.Transactions[1]
	if !taxi.Date.IsZero() {
		t.Errorf("unreadable date must be kept as undated, got %s", taxi.Date)
	}
	if taxi.Category != wealthdash.Other {
		t.Errorf("off-contract category = %s, want Other", taxi.Category)
	}
	if !taxi.Amount.Equal(decimal.NewFromFloat(-45.5)) {
		t.Errorf("amount = %s, want -45.5", taxi.Amount)
	}
}

func TestDecodeExtraction_StatementRates(t *testing.T) {
	raw := `{
		"accounts": [{"name": "HSBC", "balance": 100}],
		"exchangeRates": [
			{"currency": "USD", "rate": 7.8},
			{"currency": "CNY", "rate": 1.08},
			{"currency": "XAU", "rate": 18000},
			{"currency": "JPY", "rate": -1}
		]
	}`

	ex, err := decodeExtraction([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if !ex.Rates[wealthdash.USD].Equal(decimal.NewFromFloat(7.8)) {
		t.Errorf("USD = %s, want 7.8", ex.Rates[wealthdash.USD])
	}
	if !ex.Rates[wealthdash.CNY].Equal(decimal.NewFromFloat(1.08)) {
		t.Errorf("CNY = %s, want 1.08", ex.Rates[wealthdash.CNY])
	}
	if _, ok := ex.Rates[wealthdash.Currency("XAU")]; ok {
		t.Error("unsupported currency leaked into the rates")
	}
	if _, ok := ex.Rates[wealthdash.JPY]; ok {
		t.Error("non-positive rate leaked into the rates")
	}

	// A statement without rates leaves the table nil so Confirm knows to
	// keep the store's current one.
	ex, err = decodeExtraction([]byte(`{"accounts": [{"name": "HSBC", "balance": 100}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if ex.Rates != nil {
		t.Errorf("rates = %v, want nil", ex.Rates)
	}
}

func TestDecodeExtraction_Failures(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{"not json", `the model apologises instead of answering`},
		{"wrong shape", `{"accounts": "none"}`},
		{"empty result", `{"accounts": [], "transactions": []}`},
		{"only nameless accounts", `{"accounts": [{"balance": 1}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeExtraction([]byte(tc.raw))
			var perr *wealthdash.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want ParseError", err)
			}
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `42.5`, 42.5},
		{"numeric string", `"-120"`, -120},
		{"formatted string", `"HK$1,000.00"`, 1000},
		{"null", `null`, 0},
		{"object", `{"value": 5}`, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := coerceAmount([]byte(tc.raw))
			if !got.Equal(decimal.NewFromFloat(tc.want)) {
				t.Errorf("coerceAmount(%s) = %s, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestSchemaEnumsTrackDomainSets(t *testing.T) {
	if got, want := len(currencyEnum()), len(wealthdash.Currencies); got != want {
		t.Errorf("currency enum has %d entries, want %d", got, want)
	}
	if got, want := len(typeEnum()), len(wealthdash.AccountTypes); got != want {
		t.Errorf("type enum has %d entries, want %d", got, want)
	}
	if got, want := len(categoryEnum()), len(wealthdash.Categories); got != want {
		t.Errorf("category enum has %d entries, want %d", got, want)
	}
}
