package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/wishlist/renderer"
	"github.com/google/subcommands"
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type listCmd struct {
	query      string
	categories stringList
	bought     bool
	open       bool
	summary    bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list wishes, with prices in the display currency" }
func (*listCmd) Usage() string {
	return `wish list [-q <query>] [-c <category>]... [-bought | -open] [-summary]

  Lists wishes as a table, converting every price into the display currency.
  -q filters on the title (case-insensitive substring), -c keeps only the
  given categories and can be repeated. -summary prints the totals instead.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Keep only wishes whose title contains this text.")
	f.Var(&p.categories, "c", "Keep only wishes in this category. Repeatable.")
	f.BoolVar(&p.bought, "bought", false, "Keep only purchased wishes.")
	f.BoolVar(&p.open, "open", false, "Keep only wishes not purchased yet.")
	f.BoolVar(&p.summary, "summary", false, "Print the collection totals instead of the table.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.bought && p.open {
		fmt.Fprintln(os.Stderr, "Error: -bought and -open flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	settings := OpenSettings()
	collection := OpenCollection()

	wishes := collection.Filter(p.query, p.categories)
	if p.bought || p.open {
		kept := wishes[:0]
		for _, w := range wishes {
			if w.Purchased == p.bought {
				kept = append(kept, w)
			}
		}
		wishes = kept
	}

	if p.summary {
		printMarkdown(renderer.Summary(wishes, settings.Currency), settings.Theme)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Wishes(wishes, settings.Currency), settings.Theme)
	return subcommands.ExitSuccess
}
