package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/wishlist/renderer"
)

type categoryCmd struct {
	add string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "list or create wish categories" }
func (*categoryCmd) Usage() string {
	return `wish category [-add <name>]

  Without flags, lists the known categories. With -add, registers a new one;
  names that differ only in case or spacing count as duplicates.
`
}

func (p *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.add, "add", "", "Name of the category to create.")
}

func (p *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg := OpenRegistry()

	if p.add != "" {
		if err := reg.Add(p.add); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added category %q.\n", p.add)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Categories(reg.Names()), OpenSettings().Theme)
	return subcommands.ExitSuccess
}
