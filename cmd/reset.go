package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete all accounts, transactions and the snapshot" }
func (*resetCmd) Usage() string {
	return `wd reset [-y]

  Clears everything: accounts, transactions and the persisted snapshot.
  There is no undo.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Reset without asking.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes && !confirm("Delete all accounts and transactions?") {
		fmt.Println("Reset cancelled.")
		return subcommands.ExitSuccess
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

	store.ResetAll()
	fmt.Println("All data cleared.")
	return subcommands.ExitSuccess
}
