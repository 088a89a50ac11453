package wealthdash

// Totals is the aggregate view the dashboard cards are built from. All
// amounts are denominated in the base currency the totals were computed for.
type Totals struct {
	NetWorth    Money
	CashAnchor  Money // cash held in the anchor currency
	CashForeign Money // cash held in any other currency, converted
	Investments Money
	Liabilities Money // absolute value of all negative balances
	Symbol      string
}

// Cash returns the combined cash buckets.
func (t Totals) Cash() Money { return t.CashAnchor.Add(t.CashForeign) }

// ComputeTotals derives the dashboard totals from the account list. It is a
// pure function of its inputs: accounts are bucketed, converted to the base
// currency, and summed.
//
// Bucketing is a display policy, not an accounting rule: any negative
// balance counts as a liability regardless of account type, any positive
// Investment balance is an asset separate from cash, and a zero-balance
// investment account contributes to neither bucket. Cash is split by whether
// the account is denominated in the anchor currency, purely for presentation.
func ComputeTotals(accounts []Account, rates RateTable, base Currency) Totals {
	t := Totals{
		NetWorth:    M(0, base),
		CashAnchor:  M(0, base),
		CashForeign: M(0, base),
		Investments: M(0, base),
		Liabilities: M(0, base),
		Symbol:      base.Symbol(),
	}
	for _, a := range accounts {
		converted := rates.ToBase(a.Money(), base)
		switch {
		case a.Balance.IsNegative():
			t.Liabilities = t.Liabilities.Add(converted.Abs())
		case a.Type == Investment:
			if a.Balance.IsPositive() {
				t.Investments = t.Investments.Add(converted)
			}
		case a.Currency == Anchor:
			t.CashAnchor = t.CashAnchor.Add(converted)
		default:
			t.CashForeign = t.CashForeign.Add(converted)
		}
	}
	t.NetWorth = t.Cash().Add(t.Investments).Sub(t.Liabilities)
	return t
}
