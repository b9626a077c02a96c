// Command census increments and reads meters persisted by a meter store.
package main

import (
	"os"

	"github.com/maruel/subcommands"

	_ "modernc.org/sqlite"
)

func application() *subcommands.DefaultApplication {
	return &subcommands.DefaultApplication{
		Name:  "census",
		Title: "Increment and read meters persisted by a meter store.",
		Commands: []*subcommands.Command{
			cmdMeter,
			cmdGet,
			cmdDump,
			subcommands.CmdHelp,
		},
	}
}

func main() {
	os.Exit(subcommands.Run(application(), nil))
}
