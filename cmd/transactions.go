package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ray-XRay/wealthdash-google"
	"github.com/Ray-XRay/wealthdash-google/date"
	"github.com/Ray-XRay/wealthdash-google/renderer"
	"github.com/google/subcommands"
)

type transactionsCmd struct {
	category string
	since    string
	limit    int
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list imported transactions" }
func (*transactionsCmd) Usage() string {
	return `wd transactions [-c <category>] [-since <date>] [-n <limit>]

  Lists transactions newest-first, with a spending breakdown by category.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Only show one category.")
	f.StringVar(&c.since, "since", "", "Only show transactions on or after this date (YYYY-MM-DD).")
	f.IntVar(&c.limit, "n", 0, "Show at most n transactions. 0 shows all.")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	txs, err := filterTransactions(store.Transactions(), c.category, c.since, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}

// filterTransactions applies the listing filters. Filter values are parsed
// strictly: a mistyped category or date is an error, not an empty listing.
func filterTransactions(txs []wealthdash.Transaction, category, since string, limit int) ([]wealthdash.Transaction, error) {
	if category != "" {
		want, err := wealthdash.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		filtered := txs[:0]
		for _, tx := range txs {
			if tx.Category == want {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}
	if since != "" {
		cutoff, err := date.Parse(since)
		if err != nil {
			return nil, err
		}
		filtered := txs[:0]
		for _, tx := range txs {
			if !tx.Date.Before(cutoff) {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}
