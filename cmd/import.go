package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ray-XRay/wealthdash-google/importer"
	"github.com/Ray-XRay/wealthdash-google/oracle"
	"github.com/Ray-XRay/wealthdash-google/renderer"
	"github.com/google/subcommands"
)

// importCmd drives the statement import pipeline from the terminal: the
// preview is printed and the merge happens only on confirmation.
type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a statement file" }
func (*importCmd) Usage() string {
	return `wd import [-y] <file> [<file>...]

  Imports a statement. CSV and TSV files parse locally with column
  heuristics; image files (scanned statement pages, rasterized upstream)
  are submitted together to the extraction service, up to four pages.

Usage Examples:
$ wd import statement.csv
$ wd import -y page1.png page2.png
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Confirm the preview without asking.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no file to import")
		return subcommands.ExitUsageError
	}

	src, needsOracle, err := readSource(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var extractor importer.Extractor
	if needsOracle {
		client, err := oracle.New(ctx, cfg.Model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing the extraction service: %v\n", err)
			return subcommands.ExitFailure
		}
		extractor = client
	}

	pipeline := importer.New(extractor)
	if err := pipeline.Run(ctx, src); err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		return subcommands.ExitFailure
	}

	preview := pipeline.Preview()
	printMarkdown(renderer.PreviewMarkdown(preview))

	if !c.yes && !confirm(fmt.Sprintf("Merge %d accounts and %d transactions?", len(preview.Accounts), len(preview.Transactions))) {
		pipeline.Cancel()
		fmt.Println("Import cancelled, nothing was changed.")
		return subcommands.ExitSuccess
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := pipeline.Confirm(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Import confirmed.")
	return subcommands.ExitSuccess
}

// readSource loads the named files into an import source. All-image
// arguments become one document of pages; otherwise a single tabular file
// is expected.
func readSource(names []string) (importer.Source, bool, error) {
	images := true
	for _, name := range names {
		if imageMIME(name) == "" {
			images = false
			break
		}
	}

	if images {
		src := importer.Source{Kind: importer.Document, Name: names[0]}
		for _, name := range names {
			data, err := os.ReadFile(name)
			if err != nil {
				return importer.Source{}, false, err
			}
			src.Pages = append(src.Pages, oracle.Page{MIMEType: imageMIME(name), Data: data})
		}
		return src, true, nil
	}

	if len(names) != 1 {
		return importer.Source{}, false, fmt.Errorf("expected a single spreadsheet, got %d files", len(names))
	}
	data, err := os.ReadFile(names[0])
	if err != nil {
		return importer.Source{}, false, err
	}
	return importer.Source{Kind: importer.Spreadsheet, Name: names[0], Data: data}, false, nil
}

// imageMIME returns the image mime type for a filename, or "" when it is
// not an image.
func imageMIME(name string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if strings.HasPrefix(t, "image/") {
		return t
	}
	return ""
}

// confirm asks a yes/no question on the terminal and defaults to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
