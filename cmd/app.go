// Package cmd implements the CLI application to manage a wishlist.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/wishlist"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var wishlistDir = flag.String("wishlist-dir", defaultDir(), "Path to the folder holding the wishlist data")

// Environment variables read by the application and passed to extension binaries.
const (
	EnvWishlistDir = "WISH_DIR"
	EnvCurrency    = "WISH_CURRENCY"
	EnvFormat      = "WISH_FORMAT"
)

// defaultDir resolves the data folder: the WISH_DIR environment variable, or
// ~/.wishlist.
func defaultDir() string {
	if dir := os.Getenv(EnvWishlistDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wishlist"
	}
	return filepath.Join(home, ".wishlist")
}

// Commands lists every subcommand of the application.
// A main package registers them all and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&editCmd{},
	&rmCmd{},
	&boughtCmd{},
	&exportCmd{},
	&importCmd{},
	&categoryCmd{},
	&configCmd{},
	&openCmd{},
	&clearCmd{},
	&topicCmd{},
}

// IsKnown reports whether name is one of the registered subcommands.
func IsKnown(name string) bool {
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// Completion describes the CLI to the shell completion engine.
func Completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(Commands))
	for _, c := range Commands {
		sub[c.Name()] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"wishlist-dir": predict.Dirs("*"),
		},
	}
}

// OpenStore opens the application store at the configured folder.
func OpenStore() *wishlist.Store {
	return wishlist.OpenStore(*wishlistDir)
}

// OpenCollection loads the wish collection from the application store.
// A missing or corrupt store yields an empty collection.
func OpenCollection() *wishlist.Collection {
	return wishlist.LoadCollection(OpenStore())
}

// OpenSettings loads the user preferences from the application store.
func OpenSettings() *wishlist.Settings {
	return wishlist.LoadSettings(OpenStore())
}

// OpenRegistry loads the category registry from the application store.
func OpenRegistry() *wishlist.Registry {
	return wishlist.LoadRegistry(OpenStore())
}

// confirm asks the user a yes/no question on the terminal and returns the
// answer. Anything but "y" or "yes" is a no.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
