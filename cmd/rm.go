package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an account" }
func (*rmCmd) Usage() string {
	return `wd rm -id <id>

  Deletes an account. Removing an unknown id is a no-op.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id (see 'wd accounts').")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
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

	store.DeleteAccount(c.id)
	fmt.Printf("Deleted %s\n", c.id)
	return subcommands.ExitSuccess
}
