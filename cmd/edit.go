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

type editCmd struct {
	title       string
	description string
	price       float64
	currency    string
	date        string
	link        string
	image       string
	category    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing wish" }
func (*editCmd) Usage() string {
	return `wish edit <id> [-t <title>] [-p <price>] [-c <currency>] [-d <date>] [-cat <category>] [-link <url>] [-img <path>] [-desc <text>]

  Replaces the fields given by flags on the wish with that id, leaving the
  others untouched. Editing an id that does not exist creates the wish
  (upsert).
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.title, "t", "", "New title.")
	f.StringVar(&p.description, "desc", "", "New description.")
	f.Float64Var(&p.price, "p", -1, "New price, in the currency given by -c.")
	f.StringVar(&p.currency, "c", "", "New currency for the price.")
	f.StringVar(&p.date, "d", "", "New target purchase date.")
	f.StringVar(&p.link, "link", "", "New URL to the item.")
	f.StringVar(&p.image, "img", "", "New path to a locally stored image.")
	f.StringVar(&p.category, "cat", "", "New category label, must exist in the registry.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one wish id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	collection := OpenCollection()
	w, found := collection.Get(id)
	if !found {
		// upsert: start from a blank wish carrying the requested id
		w = wishlist.Wish{ID: id, Price: wishlist.M(0, OpenSettings().Currency)}
	}

	if title := strings.TrimSpace(p.title); title != "" {
		w.Title = title
	}
	if p.description != "" {
		w.Description = p.description
	}
	currency := w.Price.Currency()
	if p.currency != "" {
		currency = p.currency
	}
	if p.price >= 0 {
		w.Price = wishlist.M(p.price, currency)
	} else if p.currency != "" {
		w.Price = wishlist.M(w.Price.AsFloat(), currency)
	}
	if p.date != "" {
		date, err := wishlist.ParseDate(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing target date: %v\n", err)
			return subcommands.ExitUsageError
		}
		w.TargetDate = date
	}
	if p.link != "" {
		w.Link = p.link
	}
	if p.image != "" {
		w.Image = p.image
	}
	if p.category != "" {
		if !OpenRegistry().Has(p.category) {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q, declare it first with 'wish category -add'\n", p.category)
			return subcommands.ExitUsageError
		}
		w.Category = p.category
	}

	if err := w.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid wish:\n%v\n", err)
		return subcommands.ExitUsageError
	}

	w = collection.Update(w)
	if found {
		fmt.Printf("Updated wish %s: %s\n", w.ID, w)
	} else {
		fmt.Printf("Created wish %s: %s\n", w.ID, w)
	}
	return subcommands.ExitSuccess
}
