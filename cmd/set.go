package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ray-XRay/wealthdash-google"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// setCmd edits an existing account in place.
type setCmd struct {
	id       string
	name     string
	balance  string
	typ      string
	currency string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "edit an account" }
func (*setCmd) Usage() string {
	return `wd set -id <id> [-name <name>] [-balance <amount>] [-type <type>] [-cur <currency>]

  Edits the given fields of an account; everything else is left untouched.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id (see 'wd accounts').")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.balance, "balance", "", "New balance.")
	f.StringVar(&c.typ, "type", "", "New type.")
	f.StringVar(&c.currency, "cur", "", "New currency.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	var patch wealthdash.AccountPatch
	if c.name != "" {
		patch.Name = &c.name
	}
	if c.balance != "" {
		amount, err := decimal.NewFromString(c.balance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: balance %q is not a number\n", c.balance)
			return subcommands.ExitUsageError
		}
		patch.Balance = &amount
	}
	if c.typ != "" {
		t := wealthdash.CoerceAccountType(c.typ)
		patch.Type = &t
	}
	if c.currency != "" {
		cur := wealthdash.CoerceCurrency(c.currency)
		patch.Currency = &cur
	}

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

	a, err := store.UpdateAccount(c.id, patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s (%s, %s), balance %s\n", a.Name, a.Type, a.Currency, a.Money())
	return subcommands.ExitSuccess
}
