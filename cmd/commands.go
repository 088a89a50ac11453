package cmd

import (
	"github.com/google/subcommands"
)

// Commands lists every subcommand. The main package registers them all and
// the completion script is derived from the same list.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&accountsCmd{},
	&addCmd{},
	&setCmd{},
	&rmCmd{},
	&transactionsCmd{},
	&importCmd{},
	&ratesCmd{},
	&insightCmd{},
	&resetCmd{},
	&topicCmd{},
}
