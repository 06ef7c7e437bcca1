package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/wishlist"
)

type configCmd struct {
	currency string
	format   string
	theme    string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the persisted preferences" }
func (*configCmd) Usage() string {
	return `wish config [-currency <code>] [-format csv|json|xml] [-theme light|dark]

  Without flags, prints the current preferences. Each flag validates and
  persists its preference independently.
`
}

func (p *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "currency", "", "Display currency ("+strings.Join(wishlist.Currencies(), ", ")+").")
	f.StringVar(&p.format, "format", "", "Preferred export format (csv, json, xml).")
	f.StringVar(&p.theme, "theme", "", "Color theme (light, dark).")
}

func (p *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings := OpenSettings()

	changed := false
	if p.currency != "" {
		if err := settings.SetCurrency(p.currency); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		changed = true
	}
	if p.format != "" {
		if err := settings.SetFormat(p.format); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		changed = true
	}
	if p.theme != "" {
		if err := settings.SetTheme(p.theme); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		changed = true
	}

	if changed {
		fmt.Println("Preferences updated.")
	}
	fmt.Printf("currency: %s\nformat:   %s\ntheme:    %s\n", settings.Currency, settings.Format, settings.Theme)
	return subcommands.ExitSuccess
}
