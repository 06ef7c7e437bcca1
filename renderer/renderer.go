// Package renderer formats wishlist data into markdown strings, suitable for
// pretty-printing in a terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/wishlist"
)

// Wishes renders the given wishes as a markdown table, with every price
// converted into the display currency.
func Wishes(wishes []wishlist.Wish, display string) string {
	b := &strings.Builder{}
	if len(wishes) == 0 {
		fmt.Fprintf(b, "*No wishes yet.*\n")
		return b.String()
	}

	fmt.Fprintf(b, "| ID | Title | Price (%s) | Category | Target | Status |\n", display)
	fmt.Fprintf(b, "|:---|:---|---:|:---|:---|:---|\n")
	for _, w := range wishes {
		category := w.Category
		if category == "" {
			category = "-"
		}
		status := "open"
		if w.Purchased {
			status = "purchased"
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			w.ID, w.Title, w.Price.In(display), category, w.TargetDate, status)
	}
	return b.String()
}

// Summary renders the collection totals: counts and the remaining cost of
// unpurchased wishes, in the display currency, with a per-category breakdown.
func Summary(wishes []wishlist.Wish, display string) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Wishlist Summary\n\n")

	var purchased int
	remaining := wishlist.M(0, display)
	perCategory := make(map[string]wishlist.Money)
	var categories []string
	for _, w := range wishes {
		if w.Purchased {
			purchased++
			continue
		}
		price := w.Price.In(display)
		remaining = remaining.Add(price)

		cat := w.Category
		if cat == "" {
			cat = wishlist.CategoryOther
		}
		if _, ok := perCategory[cat]; !ok {
			categories = append(categories, cat)
		}
		perCategory[cat] = perCategory[cat].Add(price)
	}

	fmt.Fprintf(b, "- Wishes: %d (%d purchased)\n", len(wishes), purchased)
	fmt.Fprintf(b, "- Remaining to buy: %s\n", wishlist.Format(remaining.AsFloat(), display))

	if len(categories) > 0 {
		fmt.Fprintf(b, "\n## By Category\n\n")
		fmt.Fprintf(b, "| Category | Remaining |\n")
		fmt.Fprintf(b, "|:---|---:|\n")
		for _, cat := range categories {
			m := perCategory[cat]
			fmt.Fprintf(b, "| %s | %s |\n", cat, wishlist.Format(m.AsFloat(), display))
		}
	}
	return b.String()
}

// Categories renders the category registry as a markdown list.
func Categories(names []string) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Categories\n\n")
	for _, name := range names {
		fmt.Fprintf(b, "- %s\n", name)
	}
	return b.String()
}
