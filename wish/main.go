package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/etnz/wishlist/cmd"
)

func main() {
	// Shell completion: when invoked by the completion engine this call
	// prints the candidates and exits.
	cmd.Completion().Complete("wish")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	// Unknown subcommands fall through to wish-<name> extension binaries.
	if args := flag.Args(); len(args) > 0 && !cmd.IsKnown(args[0]) && args[0] != "help" && args[0] != "flags" {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
