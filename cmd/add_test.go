package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestAdd_RequiresPrice(t *testing.T) {
	*wishlistDir = t.TempDir()

	c := &addCmd{title: "Lens", price: -1, date: "+1m"}
	f := flag.NewFlagSet("add", flag.ContinueOnError)
	if got := c.Execute(context.Background(), f); got != subcommands.ExitUsageError {
		t.Errorf("add without a price = %v, want ExitUsageError", got)
	}
	if n := OpenCollection().Len(); n != 0 {
		t.Errorf("add without a price stored %d wishes, want 0", n)
	}
}

func TestAdd_RejectsBlankTitle(t *testing.T) {
	*wishlistDir = t.TempDir()

	c := &addCmd{title: "   ", price: 10, date: "+1m"}
	f := flag.NewFlagSet("add", flag.ContinueOnError)
	if got := c.Execute(context.Background(), f); got != subcommands.ExitUsageError {
		t.Errorf("add with a blank title = %v, want ExitUsageError", got)
	}
	if n := OpenCollection().Len(); n != 0 {
		t.Errorf("add with a blank title stored %d wishes, want 0", n)
	}
}
