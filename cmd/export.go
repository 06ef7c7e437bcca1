package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/wishlist"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	outDir string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the whole wishlist to a CSV, JSON or XML file" }
func (*exportCmd) Usage() string {
	return `wish export [-format csv|json|xml] [-o <dir>]

  Serializes the full wish collection into a timestamp-suffixed file in the
  output directory. The format defaults to the persisted preference; picking
  one with -format makes it the new default.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.format, "format", "", "Export format (csv, json, xml). Defaults to the persisted preference.")
	f.StringVar(&p.outDir, "o", ".", "Directory to write the export file into.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings := OpenSettings()

	format := settings.Format
	if p.format != "" {
		// an explicit choice becomes the default for the next export
		if err := settings.SetFormat(p.format); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		format = settings.Format
	}

	wishes := OpenCollection().All()
	if len(wishes) == 0 {
		fmt.Fprintln(os.Stderr, "No data: there are no wishes to export.")
		return subcommands.ExitFailure
	}

	filename := filepath.Join(p.outDir, wishlist.ExportFileName(format))

	// write the complete content or nothing: serialize into a temp file and
	// rename it into place only on success.
	tmp, err := os.CreateTemp(p.outDir, ".wish-export-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating export file: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := wishlist.Export(tmp, format, wishes); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		fmt.Fprintf(os.Stderr, "Error exporting wishes: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		fmt.Fprintf(os.Stderr, "Error writing export file: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		os.Remove(tmp.Name())
		fmt.Fprintf(os.Stderr, "Error writing export file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d wishes to %s\n", len(wishes), filename)
	return subcommands.ExitSuccess
}
