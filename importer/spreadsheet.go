package importer

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/Ray-XRay/wealthdash-google"
)

// The tabular path. Binary workbook formats are converted to CSV upstream
// (an external collaborator); this file turns delimiter-separated text into
// account drafts with column-header heuristics.

// parseTable reads delimiter-separated text into rows, sniffing whether the
// file is comma- or tab-separated from its first line.
func parseTable(data []byte) ([][]string, error) {
	firstLine, _, _ := bytes.Cut(data, []byte("\n"))
	comma := ','
	if bytes.Count(firstLine, []byte("\t")) > bytes.Count(firstLine, []byte(",")) {
		comma = '\t'
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &wealthdash.ParseError{Msg: "the file is not readable as a spreadsheet"}
	}
	return rows, nil
}

// columns locates the relevant columns by matching header cells against the
// multilingual keyword sets. A row counts as the header once it carries both
// a name column and a balance column; the currency column is optional.
type columns struct {
	header   int // index of the header row
	name     int
	balance  int
	currency int // -1 when the sheet has no currency column
}

const headerScanLimit = 10 // statements often carry preamble rows before the table

func findColumns(rows [][]string) (columns, bool) {
	for i, row := range rows {
		if i >= headerScanLimit {
			break
		}
		c := columns{header: i, name: -1, balance: -1, currency: -1}
		for j, cell := range row {
			switch {
			case c.name < 0 && keywordMatch(cell, nameKeywords):
				c.name = j
			case c.balance < 0 && keywordMatch(cell, balanceKeywords):
				c.balance = j
			case c.currency < 0 && keywordMatch(cell, currencyKeywords):
				c.currency = j
			}
		}
		if c.name >= 0 && c.balance >= 0 {
			return c, true
		}
	}
	return columns{}, false
}

// extractAccounts runs the whole tabular heuristic: locate columns, then per
// row coerce a balance and infer type and currency from the name and any
// currency cell. Rows with an empty name cell are skipped.
func extractAccounts(data []byte) (*wealthdash.Extraction, error) {
	rows, err := parseTable(data)
	if err != nil {
		return nil, err
	}

	cols, ok := findColumns(rows)
	if !ok {
		return nil, &wealthdash.ParseError{Msg: "no recognizable name and balance columns"}
	}

	ex := &wealthdash.Extraction{}
	for _, row := range rows[cols.header+1:] {
		if cols.name >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[cols.name])
		if name == "" {
			continue
		}

		var balanceCell string
		if cols.balance < len(row) {
			balanceCell = row[cols.balance]
		}

		// Currency comes from the dedicated column when there is one, and
		// otherwise from whatever the name or the balance cell gives away
		// ("HK$1,234.50" carries its own currency).
		currency := wealthdash.Anchor
		if cols.currency >= 0 && cols.currency < len(row) && strings.TrimSpace(row[cols.currency]) != "" {
			cell := row[cols.currency]
			if c, err := wealthdash.ParseCurrency(cell); err == nil {
				currency = c
			} else {
				// The cell may spell the currency out ("港幣", "US Dollar").
				currency = inferCurrency(cell)
			}
		} else {
			currency = inferCurrency(name + " " + balanceCell)
		}

		ex.Accounts = append(ex.Accounts, wealthdash.AccountDraft{
			Name:     name,
			Type:     inferAccountType(name),
			Currency: currency,
			Balance:  wealthdash.CoerceAmount(balanceCell),
		})
	}

	if ex.IsEmpty() {
		return nil, &wealthdash.ParseError{Msg: "the spreadsheet has no account rows"}
	}
	return ex, nil
}
