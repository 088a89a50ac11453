package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ray-XRay/wealthdash-google/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	base string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the net worth dashboard" }
func (*summaryCmd) Usage() string {
	return `wd summary [-b <currency>]

  Displays net worth and the cash, investment and liability buckets,
  converted to the display currency.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "b", "", "Display currency. Defaults to WEALTHDASH_BASE.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.SummaryMarkdown(store.Snapshot(), baseCurrency(c.base, cfg)))
	return subcommands.ExitSuccess
}
