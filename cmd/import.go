package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/wishlist"
)

type importCmd struct {
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import wishes from a JSON file" }
func (*importCmd) Usage() string {
	return `wish import [-path <jsonpath>] <file>

  Reads wishes from a JSON file and adds them to the wishlist. The file can be
  a previous 'wish export' in JSON format, or any JSON document: -path selects
  where the wish objects live inside it (e.g. '$.data.wishes').
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.path, "path", "$", "JSONPath selecting the wish array (or object) inside the file.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: 'import' expects exactly one file argument.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	wishes, err := wishlist.ImportWishes(file, p.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing wishes: %v\n", err)
		return subcommands.ExitFailure
	}

	col := OpenCollection()
	for _, w := range wishes {
		col.Add(w)
	}
	fmt.Printf("Imported %d wishes from %s\n", len(wishes), f.Arg(0))
	return subcommands.ExitSuccess
}
