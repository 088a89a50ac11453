// Command wd is the wealthdash terminal dashboard.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Ray-XRay/wealthdash-google/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: this returns immediately unless the shell is asking.
	completion().Complete("wd")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion derives the completion tree from the registered subcommands.
func completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{Args: predict.Files("*")}
	}
	return &complete.Command{Sub: sub}
}
