package wealthdash

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/Ray-XRay/wealthdash-google/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// SnapshotKey is the key the snapshot blob is stored under. The version
// suffix is bumped whenever the schema changes, which intentionally discards
// old-schema data instead of migrating it.
const SnapshotKey = "wealthdash.v3"

// Snapshot is the unit of persistence: the whole document is written after
// every store mutation and read once at startup.
type Snapshot struct {
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Rates        RateTable     `json:"exchangeRates"`
	LastUpdated  time.Time     `json:"lastUpdated"`
}

// Snapshot captures the current store state.
func (s *Store) Snapshot() *Snapshot {
	return &Snapshot{
		Accounts:     s.Accounts(),
		Transactions: s.Transactions(),
		Rates:        s.Rates(),
		LastUpdated:  s.lastUpdated,
	}
}

// NewStoreFromSnapshot builds a store from a decoded snapshot. A nil
// snapshot yields an empty store.
func NewStoreFromSnapshot(saver Saver, snap *Snapshot) *Store {
	s := NewStore(saver)
	if snap == nil {
		return s
	}
	if snap.Accounts != nil {
		s.accounts = snap.Accounts
	}
	if snap.Transactions != nil {
		s.transactions = snap.Transactions
	}
	if len(snap.Rates) > 0 {
		s.rates.Merge(snap.Rates)
	}
	s.lastUpdated = snap.LastUpdated
	return s
}

// EncodeSnapshot marshals the snapshot to its JSON wire form.
func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// DecodeSnapshot parses a persisted snapshot defensively. The decoder never
// trusts the blob: a non-array collection falls back to empty, unknown enum
// values are coerced to their defaults, non-numeric balances become zero,
// and records without an id get a fresh one. It never returns an error; the
// worst-case result is an empty snapshot.
func DecodeSnapshot(data []byte) *Snapshot {
	// Local mirror structs keep the untyped blob from leaking past this
	// boundary.
	type jaccount struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Type     string          `json:"type"`
		Currency string          `json:"currency"`
		Balance  json.RawMessage `json:"balance"`
	}
	type jtransaction struct {
		ID          string          `json:"id"`
		Date        string          `json:"date"`
		Description string          `json:"description"`
		Category    string          `json:"category"`
		Amount      json.RawMessage `json:"amount"`
	}
	type jsnapshot struct {
		Accounts     json.RawMessage `json:"accounts"`
		Transactions json.RawMessage `json:"transactions"`
		Rates        json.RawMessage `json:"exchangeRates"`
		LastUpdated  string          `json:"lastUpdated"`
	}

	snap := &Snapshot{
		Accounts:     make([]Account, 0),
		Transactions: make([]Transaction, 0),
		Rates:        RateTable{},
	}

	var js jsnapshot
	if err := json.Unmarshal(data, &js); err != nil {
		log.Printf("unreadable snapshot, starting empty: %v", err)
		return snap
	}

	var jaccounts []jaccount
	if err := json.Unmarshal(js.Accounts, &jaccounts); err != nil && len(js.Accounts) > 0 {
		log.Printf("snapshot accounts are not a list, dropping them: %v", err)
	}
	for _, ja := range jaccounts {
		id := ja.ID
		if id == "" {
			id = uuid.NewString()
		}
		snap.Accounts = append(snap.Accounts, Account{
			ID:       id,
			Name:     ja.Name,
			Type:     CoerceAccountType(ja.Type),
			Currency: CoerceCurrency(ja.Currency),
			Balance:  coerceRawAmount(ja.Balance),
		})
	}

	var jtransactions []jtransaction
	if err := json.Unmarshal(js.Transactions, &jtransactions); err != nil && len(js.Transactions) > 0 {
		log.Printf("snapshot transactions are not a list, dropping them: %v", err)
	}
	for _, jt := range jtransactions {
		id := jt.ID
		if id == "" {
			id = uuid.NewString()
		}
		day, err := date.Parse(jt.Date)
		if err != nil {
			day = date.Date{}
		}
		snap.Transactions = append(snap.Transactions, Transaction{
			ID:          id,
			Date:        day,
			Description: jt.Description,
			Category:    CoerceCategory(jt.Category),
			Amount:      coerceRawAmount(jt.Amount),
		})
	}

	var jrates map[string]float64
	if err := json.Unmarshal(js.Rates, &jrates); err != nil && len(js.Rates) > 0 {
		log.Printf("snapshot rates are not a map, dropping them: %v", err)
	}
	for code, rate := range jrates {
		snap.Rates[Currency(strings.ToUpper(code))] = decimal.NewFromFloat(rate)
	}

	if t, err := time.Parse(time.RFC3339, js.LastUpdated); err == nil {
		snap.LastUpdated = t
	}
	return snap
}

// coerceRawAmount accepts a JSON number or a formatted string and coerces
// anything else to zero.
func coerceRawAmount(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err == nil {
		return d
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return CoerceAmount(s)
	}
	return decimal.Zero
}
