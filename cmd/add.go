package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/wishlist"
	"github.com/google/subcommands"
)

type addCmd struct {
	title       string
	description string
	price       float64
	currency    string
	date        string
	link        string
	image       string
	category    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new wish to the list" }
func (*addCmd) Usage() string {
	return `wish add -t <title> -p <price> [-c <currency>] [-d <date>] [-cat <category>] [-link <url>] [-img <path>] [-desc <text>]

  Adds a new wish. The price is recorded in the currency it was quoted in,
  never pre-converted. The target date defaults to one month from today.

Usage Examples:
$ wish add -t "50mm Lens" -p 499.99 -c USD -d 2025-12-01 -cat Electronics
$ wish add -t "Bookshelf" -p 120 -c EUR -d +2m
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.title, "t", "", "Title of the wish.")
	f.StringVar(&p.description, "desc", "", "Optional free-text description.")
	f.Float64Var(&p.price, "p", -1, "Price, in the currency given by -c. Required.")
	f.StringVar(&p.currency, "c", "", "Currency the price was quoted in. Defaults to the display currency.")
	f.StringVar(&p.date, "d", "+1m", "Target purchase date.")
	f.StringVar(&p.link, "link", "", "Optional URL to the item.")
	f.StringVar(&p.image, "img", "", "Optional path to a locally stored image.")
	f.StringVar(&p.category, "cat", "", "Optional category label, must exist in the registry.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings := OpenSettings()

	if p.price < 0 {
		fmt.Fprintln(os.Stderr, "Error: a price is required (-p).")
		return subcommands.ExitUsageError
	}

	currency := p.currency
	if currency == "" {
		currency = settings.Currency
	}

	date, err := wishlist.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target date: %v\n", err)
		return subcommands.ExitUsageError
	}

	if p.category != "" && !OpenRegistry().Has(p.category) {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q, declare it first with 'wish category -add'\n", p.category)
		return subcommands.ExitUsageError
	}

	w := wishlist.Wish{
		Title:       strings.TrimSpace(p.title),
		Description: p.description,
		Price:       wishlist.M(p.price, currency),
		TargetDate:  date,
		Link:        p.link,
		Image:       p.image,
		Category:    p.category,
	}
	if err := w.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid wish:\n%v\n", err)
		return subcommands.ExitUsageError
	}

	w = OpenCollection().Add(w)
	fmt.Printf("Added wish %s: %s\n", w.ID, w)
	return subcommands.ExitSuccess
}
