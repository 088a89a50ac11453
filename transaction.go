package wealthdash

import (
	"github.com/Ray-XRay/wealthdash-google/date"
	"github.com/shopspring/decimal"
)

// Transaction is a single imported ledger entry. Negative amounts are
// outflows, positive amounts inflows. Transactions are immutable once
// created; the only bulk operation is ResetAll.
type Transaction struct {
	ID          string          `json:"id"`
	Date        date.Date       `json:"date"`
	Description string          `json:"description"`
	Category    ExpenseCategory `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// IsOutflow reports whether the transaction is an expense.
func (t Transaction) IsOutflow() bool { return t.Amount.IsNegative() }

// TransactionDraft is a transaction candidate produced by the import
// pipeline, before it is assigned an identity by the store.
type TransactionDraft struct {
	Date        date.Date
	Description string
	Category    ExpenseCategory
	Amount      decimal.Decimal
}

// Extraction is the normalized result of a statement import: account and
// transaction candidates with every enum already coerced into the supported
// sets, plus any exchange rates the statement itself declared. It is what
// the pipeline previews and what the store merges.
type Extraction struct {
	Accounts     []AccountDraft
	Transactions []TransactionDraft
	Rates        RateTable
}

// IsEmpty reports whether the extraction carries no candidate at all.
func (e *Extraction) IsEmpty() bool {
	return e == nil || (len(e.Accounts) == 0 && len(e.Transactions) == 0)
}

// SpendingByCategory sums transaction outflows per category, as positive
// amounts. Used by the insight prompt and the transactions report.
func SpendingByCategory(txs []Transaction) map[ExpenseCategory]decimal.Decimal {
	out := make(map[ExpenseCategory]decimal.Decimal)
	for _, tx := range txs {
		if !tx.IsOutflow() {
			continue
		}
		out[tx.Category] = out[tx.Category].Add(tx.Amount.Neg())
	}
	return out
}
