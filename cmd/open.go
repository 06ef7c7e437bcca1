package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/google/subcommands"
)

type openCmd struct{}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a wish's product link in the browser" }
func (*openCmd) Usage() string {
	return `wish open <id>

  Launches the default browser on the product link of the given wish.
`
}

func (*openCmd) SetFlags(f *flag.FlagSet) {}

func (p *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: 'open' expects exactly one wish id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	w, ok := OpenCollection().Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "No wish with id %q.\n", id)
		return subcommands.ExitFailure
	}
	if w.Link == "" {
		fmt.Fprintf(os.Stderr, "Wish %q has no link.\n", w.Title)
		return subcommands.ExitFailure
	}

	url := w.Link
	if !strings.Contains(url, "://") {
		url = "https://" + url
	}

	if err := browse(url); err != nil {
		// the wishlist itself is fine, the browser just did not start
		log.Printf("open id=%q url=%q error=%q", id, url, err)
		fmt.Printf("Could not open a browser; the link is %s\n", url)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Opening %s\n", url)
	return subcommands.ExitSuccess
}

func browse(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
