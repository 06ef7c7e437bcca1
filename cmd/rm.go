package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	force bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a wish" }
func (*rmCmd) Usage() string {
	return `wish rm [-f] <id>

  Deletes the wish with that id, after confirmation. Removing an id that does
  not exist is a no-op.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "f", false, "Delete without asking for confirmation.")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one wish id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	collection := OpenCollection()
	w, found := collection.Get(id)
	if !found {
		fmt.Printf("No wish %s, nothing to delete.\n", id)
		return subcommands.ExitSuccess
	}

	if !p.force && !confirm(fmt.Sprintf("Delete wish %s %q?", w.ID, w.Title)) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	collection.Remove(id)
	fmt.Printf("Deleted wish %s: %s\n", w.ID, w.Title)
	return subcommands.ExitSuccess
}
