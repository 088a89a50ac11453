package renderer

import (
	"bytes"
	"fmt"

	"github.com/Ray-XRay/wealthdash-google"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the transaction list (already newest-first in
// the store) followed by a spending-by-category breakdown.
func TransactionsMarkdown(txs []wealthdash.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions yet. They appear after a statement import.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Date.String(),
			tx.Description,
			string(tx.Category),
			wealthdash.M(tx.Amount, wealthdash.Anchor).SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Description", "Category", "Amount"},
		Rows:   rows,
	})

	spending := wealthdash.SpendingByCategory(txs)
	if len(spending) > 0 {
		doc.H2("Spending by category")
		var catRows [][]string
		for _, cat := range wealthdash.Categories {
			if amount, ok := spending[cat]; ok {
				catRows = append(catRows, []string{string(cat), wealthdash.M(amount, wealthdash.Anchor).String()})
			}
		}
		doc.Table(md.TableSet{Header: []string{"Category", "Spent"}, Rows: catRows})
	}
	return doc.String()
}

// PreviewMarkdown renders an import preview: what would be merged if the
// user confirms.
func PreviewMarkdown(ex *wealthdash.Extraction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Import preview")
	if len(ex.Accounts) > 0 {
		doc.H2(fmt.Sprintf("Accounts (%d)", len(ex.Accounts)))
		rows := make([][]string, 0, len(ex.Accounts))
		for _, d := range ex.Accounts {
			rows = append(rows, []string{
				d.Name, string(d.Type), string(d.Currency),
				wealthdash.M(d.Balance, d.Currency).String(),
			})
		}
		doc.Table(md.TableSet{Header: []string{"Name", "Type", "Currency", "Balance"}, Rows: rows})
	}
	if len(ex.Transactions) > 0 {
		doc.H2(fmt.Sprintf("Transactions (%d)", len(ex.Transactions)))
		rows := make([][]string, 0, len(ex.Transactions))
		for _, d := range ex.Transactions {
			rows = append(rows, []string{
				d.Date.String(), d.Description, string(d.Category),
				wealthdash.M(d.Amount, wealthdash.Anchor).SignedString(),
			})
		}
		doc.Table(md.TableSet{Header: []string{"Date", "Description", "Category", "Amount"}, Rows: rows})
	}
	if len(ex.Rates) > 0 {
		doc.H2(fmt.Sprintf("Exchange rates (%d)", len(ex.Rates)))
		var rateRows [][]string
		for _, c := range wealthdash.Currencies {
			if r, ok := ex.Rates[c]; ok {
				rateRows = append(rateRows, []string{string(c), r.StringFixed(4)})
			}
		}
		doc.Table(md.TableSet{Header: []string{"Currency", "Rate"}, Rows: rateRows})
		doc.PlainText("Confirming replaces the whole exchange-rate table with these rates.")
	}
	doc.PlainText("Matched account names overwrite balances only; everything else inserts as new.")
	return doc.String()
}

// RatesMarkdown renders the exchange-rate table.
func RatesMarkdown(rates wealthdash.RateTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Exchange rates (%s per unit)", wealthdash.Anchor))
	rows := make([][]string, 0, len(wealthdash.Currencies))
	for _, c := range wealthdash.Currencies {
		if r, ok := rates[c]; ok {
			rows = append(rows, []string{string(c), r.StringFixed(4)})
		}
	}
	doc.Table(md.TableSet{Header: []string{"Currency", "Rate"}, Rows: rows})
	return doc.String()
}
