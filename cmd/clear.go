package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all wishes, categories and preferences" }
func (*clearCmd) Usage() string {
	return `wish clear [-f]

  Resets the wishlist directory: wishes, categories and preferences are all
  removed. Asks for confirmation unless -f is given.
`
}

func (p *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "f", false, "Do not ask for confirmation.")
}

func (p *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force && !confirm("Delete ALL wishes, categories and preferences?") {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitFailure
	}
	OpenStore().ClearAll()
	fmt.Println("Wishlist cleared.")
	return subcommands.ExitSuccess
}
