package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ray-XRay/wealthdash-google/oracle"
	"github.com/google/subcommands"
)

type insightCmd struct {
	base string
}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "ask the AI for commentary on the ledger" }
func (*insightCmd) Usage() string {
	return `wd insight [-b <currency>]

  Sends a summary of accounts and recent transactions to the analysis
  service and prints its commentary. Only aggregates leave the machine,
  never account ids.
`
}

func (c *insightCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "b", "", "Display currency. Defaults to WEALTHDASH_BASE.")
}

func (c *insightCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	client, err := oracle.New(ctx, cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing the analysis service: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := oracle.Summarize(store.Accounts(), store.Transactions(), store.Rates(), baseCurrency(c.base, cfg))
	commentary, err := client.Insight(ctx, summary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(commentary)
	return subcommands.ExitSuccess
}
