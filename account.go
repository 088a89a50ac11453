package wealthdash

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account for bucketing purposes.
type AccountType string

const (
	Bank       AccountType = "Bank"
	Investment AccountType = "Investment"
	Wallet     AccountType = "Wallet"
	Personal   AccountType = "Personal"
)

// AccountTypes lists the valid account types in display order.
var AccountTypes = []AccountType{Bank, Investment, Wallet, Personal}

func (t AccountType) String() string { return string(t) }

// ParseAccountType parses an account type name, case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	for _, known := range AccountTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// CoerceAccountType maps any string to a valid account type, defaulting to Bank.
func CoerceAccountType(s string) AccountType {
	t, err := ParseAccountType(s)
	if err != nil {
		return Bank
	}
	return t
}

// Account is a single cash or investment account. Balance is signed; a
// negative balance makes the account a liability in the aggregation.
type Account struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Currency Currency        `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// Money returns the account balance as a Money value in the account currency.
func (a Account) Money() Money { return M(a.Balance, a.Currency) }

// AccountDraft is an account candidate produced by the import pipeline or a
// quick-add form, before it is assigned an identity by the store.
type AccountDraft struct {
	Name     string
	Type     AccountType
	Currency Currency
	Balance  decimal.Decimal
}
