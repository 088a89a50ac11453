package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// addCmd is the quick-add form: name and balance are required, type and
// currency coerce to their defaults.
type addCmd struct {
	name     string
	balance  string
	typ      string
	currency string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an account" }
func (*addCmd) Usage() string {
	return `wd add -name <name> -balance <amount> [-type <type>] [-cur <currency>]

  Adds an account. Type is one of Bank, Investment, Wallet, Personal.

Usage Examples:
$ wd add -name "HSBC One" -balance 12500.50
$ wd add -name "IBKR" -balance 8000 -type Investment -cur USD
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.balance, "balance", "", "Opening balance, negative for a liability.")
	f.StringVar(&c.typ, "type", "Bank", "Account type.")
	f.StringVar(&c.currency, "cur", "HKD", "Account currency.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	a, err := store.AddAccount(c.name, c.balance, c.typ, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Printf("Added %s (%s, %s) with balance %s, id %s\n", a.Name, a.Type, a.Currency, a.Money(), a.ID)
	return subcommands.ExitSuccess
}
