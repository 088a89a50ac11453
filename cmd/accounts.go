package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ray-XRay/wealthdash-google/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct {
	base string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts" }
func (*accountsCmd) Usage() string {
	return `wd accounts [-b <currency>]

  Lists every account with its balance, both native and converted.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "b", "", "Display currency. Defaults to WEALTHDASH_BASE.")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.AccountsMarkdown(store.Accounts(), store.Rates(), baseCurrency(c.base, cfg)))
	return subcommands.ExitSuccess
}
