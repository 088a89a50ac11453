package wealthdash

import (
	"fmt"
	"strings"
)

// ExpenseCategory is the fixed expense/income taxonomy for transactions.
type ExpenseCategory string

const (
	Dining        ExpenseCategory = "Dining"
	Groceries     ExpenseCategory = "Groceries"
	Transport     ExpenseCategory = "Transport"
	Shopping      ExpenseCategory = "Shopping"
	Entertainment ExpenseCategory = "Entertainment"
	Utilities     ExpenseCategory = "Utilities"
	Housing       ExpenseCategory = "Housing"
	Health        ExpenseCategory = "Health"
	Travel        ExpenseCategory = "Travel"
	Salary        ExpenseCategory = "Salary"
	Transfer      ExpenseCategory = "Transfer"
	Other         ExpenseCategory = "Other"
)

// Categories lists the valid expense categories in display order.
var Categories = []ExpenseCategory{
	Dining, Groceries, Transport, Shopping, Entertainment, Utilities,
	Housing, Health, Travel, Salary, Transfer, Other,
}

func (c ExpenseCategory) String() string { return string(c) }

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (ExpenseCategory, error) {
	for _, known := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown expense category %q", s)
}

// CoerceCategory maps any string to a valid category, defaulting to Other.
func CoerceCategory(s string) ExpenseCategory {
	c, err := ParseCategory(s)
	if err != nil {
		return Other
	}
	return c
}
