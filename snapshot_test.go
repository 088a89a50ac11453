package wealthdash

import (
	"testing"

	"github.com/Ray-XRay/wealthdash-google/date"
	"github.com/shopspring/decimal"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	s := NewStore(nil)
	s.AddAccount("HSBC", "1234.56", "Bank", "HKD")
	s.AddAccount("BOC", "-50", "Investment", "CNY")
	s.MergeImportedTransactions([]TransactionDraft{
		{Date: date.New(2025, 1, 15), Description: "Lunch", Category: Dining, Amount: decimal.NewFromFloat(-88.5)},
	})

	data, err := EncodeSnapshot(s.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	restored := NewStoreFromSnapshot(nil, DecodeSnapshot(data))

	want, got := s.Accounts(), restored.Accounts()
	if len(got) != len(want) {
		t.Fatalf("got %d accounts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name ||
			got[i].Type != want[i].Type || got[i].Currency != want[i].Currency ||
			!got[i].Balance.Equal(want[i].Balance) {
			t.Errorf("account %d: got %+v, want %+v", i, got[i], want[i])
		}
	}

	txs := restored.Transactions()
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Date.String() != "2025-01-15" || txs[0].Category != Dining {
		t.Errorf("transaction mangled: %+v", txs[0])
	}
	if !restored.Rates()[CNY].Equal(s.Rates()[CNY]) {
		t.Errorf("CNY rate = %s, want %s", restored.Rates()[CNY], s.Rates()[CNY])
	}
}

func TestDecodeSnapshot_NeverFails(t *testing.T) {
	testCases := []struct {
		name string
		blob string
	}{
		{"not json", `garbage{{`},
		{"empty object", `{}`},
		{"accounts not a list", `{"accounts": {"oops": true}, "transactions": []}`},
		{"transactions not a list", `{"accounts": [], "transactions": 42}`},
		{"rates not a map", `{"exchangeRates": [1, 2, 3]}`},
		{"null everything", `{"accounts": null, "transactions": null, "exchangeRates": null}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			snap := DecodeSnapshot([]byte(tc.blob))
			if snap == nil {
				t.Fatal("decode returned nil")
			}
			if snap.Accounts == nil || snap.Transactions == nil || snap.Rates == nil {
				t.Error("collections must come back empty, not nil")
			}
			if len(snap.Accounts) != 0 || len(snap.Transactions) != 0 {
				t.Errorf("malformed blob decoded to %d accounts / %d transactions",
					len(snap.Accounts), len(snap.Transactions))
			}
		})
	}
}

func TestDecodeSnapshot_CoercesRecords(t *testing.T) {
	blob := `{
		"accounts": [
			{"name": "Old Bank", "type": "Chequing", "currency": "xyz", "balance": "HK$1,234.50"},
			{"id": "a-1", "name": "Broker", "type": "investment", "currency": "usd", "balance": 99}
		],
		"transactions": [
			{"description": "Dinner", "category": "Fine Dining", "date": "not-a-date", "amount": "-120"}
		],
		"exchangeRates": {"usd": 7.8, "cny": 1.08},
		"lastUpdated": "2025-06-01T12:00:00Z"
	}`

	snap := DecodeSnapshot([]byte(blob))

	if len(snap.Accounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(snap.Accounts))
	}
	a := snap.Accounts[0]
	if a.ID == "" {
		t.Error("missing account id must be minted")
	}
	if a.Type != Bank || a.Currency != HKD {
		t.Errorf("unknown enums must coerce to defaults, got %s/%s", a.Type, a.Currency)
	}
	if !a.Balance.Equal(decimal.NewFromFloat(1234.50)) {
		t.Errorf("formatted balance = %s, want 1234.5", a.Balance)
	}
	b := snap.Accounts[1]
	if b.ID != "a-1" || b.Type != Investment || b.Currency != USD {
		t.Errorf("valid record mangled: %+v", b)
	}

	tx := snap.Transactions[0]
	if tx.Category != Other {
		t.Errorf("unknown category = %s, want Other", tx.Category)
	}
	if !tx.Date.IsZero() {
		t.Errorf("unparseable date = %s, want zero", tx.Date)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(-120)) {
		t.Errorf("amount = %s, want -120", tx.Amount)
	}

	if !snap.Rates[USD].Equal(decimal.NewFromFloat(7.8)) {
		t.Errorf("rate codes must be upcased, USD = %s", snap.Rates[USD])
	}
}
