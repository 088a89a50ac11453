// Package renderer turns store state into the markdown the dashboard
// commands print (through glamour, in the terminal).
package renderer

import (
	"bytes"
	"fmt"

	"github.com/Ray-XRay/wealthdash-google"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the net-worth dashboard card.
func SummaryMarkdown(s *wealthdash.Snapshot, base wealthdash.Currency) string {
	totals := wealthdash.ComputeTotals(s.Accounts, s.Rates, base)

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth (%s)", base))
	doc.PlainText(fmt.Sprintf("**%s**", totals.NetWorth))

	doc.H2("Buckets")
	table := md.TableSet{
		Header: []string{"Bucket", "Amount"},
		Rows: [][]string{
			{fmt.Sprintf("Cash (%s)", wealthdash.Anchor), totals.CashAnchor.String()},
			{"Cash (foreign)", totals.CashForeign.String()},
			{"Investments", totals.Investments.String()},
			{"Liabilities", totals.Liabilities.String()},
		},
	}
	doc.Table(table)

	if !s.LastUpdated.IsZero() {
		doc.PlainText(fmt.Sprintf("Last updated %s.", s.LastUpdated.Format("2006-01-02 15:04")))
	}
	return doc.String()
}

// AccountsMarkdown renders the account list with balances converted to the
// base currency.
func AccountsMarkdown(accounts []wealthdash.Account, rates wealthdash.RateTable, base wealthdash.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No accounts yet. Add one with `wd add` or import a statement.")
		return doc.String()
	}

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{
			a.Name,
			string(a.Type),
			string(a.Currency),
			a.Money().String(),
			rates.ToBase(a.Money(), base).String(),
			a.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Currency", "Balance", fmt.Sprintf("In %s", base), "ID"},
		Rows:   rows,
	})
	return doc.String()
}
