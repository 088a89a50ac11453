package oracle

import (
	"strings"
	"testing"

	"github.com/Ray-XRay/wealthdash-google"
	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	accounts := []wealthdash.Account{
		{ID: "secret-id-1", Name: "HSBC", Type: wealthdash.Bank, Currency: wealthdash.HKD, Balance: decimal.NewFromInt(1000)},
		{ID: "secret-id-2", Name: "Futu", Type: wealthdash.Investment, Currency: wealthdash.USD, Balance: decimal.NewFromInt(50)},
	}
	txs := []wealthdash.Transaction{
		{ID: "secret-id-3", Description: "Lunch", Category: wealthdash.Dining, Amount: decimal.NewFromInt(-80)},
	}
	rates := wealthdash.RateTable{
		wealthdash.HKD: decimal.NewFromInt(1),
		wealthdash.USD: decimal.NewFromFloat(7.8),
	}

	got := Summarize(accounts, txs, rates, wealthdash.HKD)

	for _, want := range []string{
		"Base currency: HKD",
		"Net worth:",
		"HSBC (Bank, HKD)",
		"Futu (Investment, USD)",
		"Dining: 80.00 HKD",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}

	// Internal ids never reach the prompt.
	if strings.Contains(got, "secret-id") {
		t.Errorf("summary leaks internal ids:\n%s", got)
	}
}

func TestSummarize_EmptyLedger(t *testing.T) {
	got := Summarize(nil, nil, wealthdash.DefaultRates(), wealthdash.HKD)
	if !strings.Contains(got, "Accounts (0):") {
		t.Errorf("empty ledger summary:\n%s", got)
	}
	if strings.Contains(got, "Spending by category") {
		t.Error("no spending section without transactions")
	}
}
