package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ray-XRay/wealthdash-google"
	"github.com/Ray-XRay/wealthdash-google/rates"
	"github.com/Ray-XRay/wealthdash-google/renderer"
	"github.com/google/subcommands"
)

type ratesCmd struct {
	refresh bool
	spot    string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show or refresh exchange rates" }
func (*ratesCmd) Usage() string {
	return `wd rates [-refresh] [-spot <currency>]

  Shows the exchange-rate table. With -refresh, fetches current rates from
  the configured feed and merges them in; currencies the feed omits keep
  their previous rate. With -spot, looks up a single currency.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Fetch current rates and merge them into the table.")
	f.StringVar(&c.spot, "spot", "", "Look up a single currency's current rate.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.spot != "" {
		cur, err := wealthdash.ParseCurrency(c.spot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		rate, err := rates.New(cfg.RatesURL).Spot(cur)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("1 %s = %s %s\n", cur, rate.StringFixed(4), wealthdash.Anchor)
		return subcommands.ExitSuccess
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.refresh {
		update, err := rates.New(cfg.RatesURL).Fetch()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error refreshing rates: %v\n", err)
			return subcommands.ExitFailure
		}
		store.MergeRates(update)
		fmt.Printf("Merged %d rates.\n", len(update))
	}

	printMarkdown(renderer.RatesMarkdown(store.Rates()))
	return subcommands.ExitSuccess
}
