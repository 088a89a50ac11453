package wealthdash

import (
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Saver persists a snapshot of the store. Persistence is best-effort: the
// store logs a failed save and carries on, it never blocks a user flow on it.
type Saver interface {
	SaveSnapshot(*Snapshot) error
	DropSnapshot() error
}

// Store owns the account and transaction collections for the process
// lifetime. It is the single mutation entry point: callers hold only
// transient references to what it returns. Every mutating call persists a
// full snapshot through the Saver and notifies subscribers.
//
// The store is not safe for concurrent use; the application is event-driven
// and mutates it from a single goroutine.
type Store struct {
	accounts     []Account
	transactions []Transaction
	rates        RateTable
	lastUpdated  time.Time

	saver Saver
	subs  []func()
}

// NewStore creates an empty store with the default rate table. A nil saver
// disables persistence, which is what the tests use.
func NewStore(saver Saver) *Store {
	return &Store{
		accounts:     make([]Account, 0),
		transactions: make([]Transaction, 0),
		rates:        DefaultRates(),
		saver:        saver,
	}
}

// Subscribe registers a callback invoked after every mutation. This is how
// the presentation layer finds out it must re-render.
func (s *Store) Subscribe(fn func()) { s.subs = append(s.subs, fn) }

// dirty persists a snapshot and notifies subscribers. Called after every
// mutation.
func (s *Store) dirty() {
	s.lastUpdated = time.Now()
	if s.saver != nil {
		if err := s.saver.SaveSnapshot(s.Snapshot()); err != nil {
			log.Printf("could not persist snapshot (ignored): %v", err)
		}
	}
	for _, fn := range s.subs {
		fn()
	}
}

// Accounts returns a copy of the account list in stable order.
func (s *Store) Accounts() []Account { return slices.Clone(s.accounts) }

// Transactions returns a copy of the transaction list, newest first.
func (s *Store) Transactions() []Transaction { return slices.Clone(s.transactions) }

// Rates returns a copy of the current exchange-rate table.
func (s *Store) Rates() RateTable { return s.rates.Clone() }

// LastUpdated returns the time of the last mutation.
func (s *Store) LastUpdated() time.Time { return s.lastUpdated }

// Account returns the account with the given id.
func (s *Store) Account(id string) (Account, bool) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// Totals computes the dashboard totals in the given base currency.
func (s *Store) Totals(base Currency) Totals {
	return ComputeTotals(s.accounts, s.rates, base)
}

// AddAccount validates a quick-add form and appends a new account with a
// fresh id. Name and balance come in as raw form strings; an absent name or
// an unparseable balance is a ValidationError, type and currency are coerced.
func (s *Store) AddAccount(name, balance, typ, currency string) (Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Account{}, &ValidationError{Field: "name", Msg: "must not be empty"}
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(balance))
	if err != nil {
		return Account{}, &ValidationError{Field: "balance", Msg: "not a number"}
	}
	a := Account{
		ID:       uuid.NewString(),
		Name:     name,
		Type:     CoerceAccountType(typ),
		Currency: CoerceCurrency(currency),
		Balance:  amount,
	}
	s.accounts = append(s.accounts, a)
	s.dirty()
	return a, nil
}

// AccountPatch carries the fields of an account edit; nil fields are left
// untouched.
type AccountPatch struct {
	Name     *string
	Type     *AccountType
	Currency *Currency
	Balance  *decimal.Decimal
}

// UpdateAccount applies a patch to the account with the given id, replacing
// the record in place so ordering is preserved. Unknown ids are a
// NotFoundError.
func (s *Store) UpdateAccount(id string, patch AccountPatch) (Account, error) {
	for i, a := range s.accounts {
		if a.ID != id {
			continue
		}
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return Account{}, &ValidationError{Field: "name", Msg: "must not be empty"}
			}
			a.Name = name
		}
		if patch.Type != nil {
			a.Type = CoerceAccountType(string(*patch.Type))
		}
		if patch.Currency != nil {
			a.Currency = CoerceCurrency(string(*patch.Currency))
		}
		if patch.Balance != nil {
			a.Balance = *patch.Balance
		}
		s.accounts[i] = a
		s.dirty()
		return a, nil
	}
	return Account{}, &NotFoundError{ID: id}
}

// DeleteAccount removes the account with the given id. Deleting an unknown
// id is a no-op, not an error.
func (s *Store) DeleteAccount(id string) {
	before := len(s.accounts)
	s.accounts = slices.DeleteFunc(s.accounts, func(a Account) bool { return a.ID == id })
	if len(s.accounts) != before {
		s.dirty()
	}
}

// MergeImportedAccounts reconciles imported account drafts into the store.
// Each draft is matched against existing accounts by case-insensitive name
// equality; a match overwrites only the balance (the user's chosen type and
// currency survive re-imports), a miss inserts a new account with a fresh
// id. Renaming an account therefore breaks future auto-matching; that is the
// accepted cost of not doing duplicate detection.
func (s *Store) MergeImportedAccounts(drafts []AccountDraft) {
	if len(drafts) == 0 {
		return
	}
	for _, d := range drafts {
		matched := false
		for i, a := range s.accounts {
			if strings.EqualFold(a.Name, d.Name) {
				s.accounts[i].Balance = d.Balance
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		s.accounts = append(s.accounts, Account{
			ID:       uuid.NewString(),
			Name:     d.Name,
			Type:     d.Type,
			Currency: d.Currency,
			Balance:  d.Balance,
		})
	}
	s.dirty()
}

// MergeImportedTransactions prepends imported transactions, newest first.
// No deduplication: re-importing the same statement duplicates its
// transactions. The user is expected to reset before re-importing.
func (s *Store) MergeImportedTransactions(drafts []TransactionDraft) {
	if len(drafts) == 0 {
		return
	}
	minted := make([]Transaction, 0, len(drafts))
	for _, d := range drafts {
		minted = append(minted, Transaction{
			ID:          uuid.NewString(),
			Date:        d.Date,
			Description: d.Description,
			Category:    d.Category,
			Amount:      d.Amount,
		})
	}
	s.transactions = append(minted, s.transactions...)
	s.dirty()
}

// SetRates replaces the rate table wholesale, as import-time extraction
// does. The anchor stays pinned to 1.
func (s *Store) SetRates(t RateTable) {
	s.rates = t.Clone()
	if s.rates == nil {
		s.rates = RateTable{}
	}
	s.rates[Anchor] = decimal.NewFromInt(1)
	s.dirty()
}

// MergeRates folds a partial rate refresh into the current table.
func (s *Store) MergeRates(update map[Currency]decimal.Decimal) {
	s.rates.Merge(update)
	s.dirty()
}

// ResetAll clears both collections, restores the default rate table and
// drops the persisted snapshot. Destructive; callers confirm with the user
// first.
func (s *Store) ResetAll() {
	s.accounts = s.accounts[:0]
	s.transactions = s.transactions[:0]
	s.rates = DefaultRates()
	s.lastUpdated = time.Now()
	if s.saver != nil {
		if err := s.saver.DropSnapshot(); err != nil {
			log.Printf("could not drop snapshot (ignored): %v", err)
		}
	}
	for _, fn := range s.subs {
		fn()
	}
}
