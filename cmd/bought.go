package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type boughtCmd struct{}

func (*boughtCmd) Name() string     { return "bought" }
func (*boughtCmd) Synopsis() string { return "toggle the purchased flag on a wish" }
func (*boughtCmd) Usage() string {
	return `wish bought <id>

  Flips the purchased flag on the wish with that id. Running it again flips
  the flag back.
`
}

func (*boughtCmd) SetFlags(f *flag.FlagSet) {}

func (p *boughtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one wish id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	collection := OpenCollection()
	if !collection.TogglePurchased(id) {
		fmt.Printf("No wish %s, nothing to toggle.\n", id)
		return subcommands.ExitSuccess
	}

	w, _ := collection.Get(id)
	if w.Purchased {
		fmt.Printf("Marked %q as purchased.\n", w.Title)
	} else {
		fmt.Printf("Marked %q as not purchased.\n", w.Title)
	}
	return subcommands.ExitSuccess
}
