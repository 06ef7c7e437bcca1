package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/wishlist"
)

// printMarkdown pretty-prints a markdown string to the terminal, styled per
// the user's theme preference. If rendering fails the raw markdown is printed
// instead.
func printMarkdown(md string, theme wishlist.Theme) {
	style := "light"
	if theme == wishlist.ThemeDark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		log.Printf("render-markdown error=%q", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
