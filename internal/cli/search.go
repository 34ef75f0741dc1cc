package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mrlokans/signbook/internal/catalog"
	"github.com/mrlokans/signbook/internal/entities"
	"github.com/mrlokans/signbook/internal/logger"
)

// SearchCommand searches the bundled catalog by term.
type SearchCommand struct {
	Query        string
	Category     string
	DatabasePath string

	Out io.Writer
	Log *logger.Logger
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{Out: os.Stdout, Log: logger.NewNop()}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)

	fs.StringVar(&cmd.Category, "category", "", "Only search within this category")
	fs.StringVar(&cmd.DatabasePath, "db", "", "Database to mark favourites from (optional)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search [options] <query>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search sign terms, case-insensitive.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.Query = strings.Join(fs.Args(), " ")
	if strings.TrimSpace(cmd.Query) == "" {
		return fmt.Errorf("search query not provided")
	}
	return nil
}

func (cmd *SearchCommand) Run() error {
	c, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	scope := catalog.AllCategories
	if cmd.Category != "" {
		scope = catalog.InCategory(cmd.Category)
	}
	results := c.Search(cmd.Query, scope)
	if len(results) == 0 {
		fmt.Fprintf(cmd.Out, "No signs found for %q\n", cmd.Query)
		return nil
	}

	isFavorite := func(entities.VocabularyEntry) bool { return false }
	if cmd.DatabasePath != "" {
		db, store, err := openExistingFavourites(cmd.DatabasePath, cmd.Log)
		if err != nil {
			return err
		}
		defer db.Close()
		isFavorite = store.IsFavorite
	}

	return printEntries(cmd.Out, results, isFavorite)
}

func printEntries(out io.Writer, entries []entities.VocabularyEntry, isFavorite func(entities.VocabularyEntry) bool) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tTERM\tCATEGORY\tUSAGE")
	for _, e := range entries {
		mark := ""
		if isFavorite(e) {
			mark = "*"
		}
		usage := ""
		if u, ok := e.Usage(); ok {
			usage = u.Label()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mark, e.Term, e.Category, usage)
	}
	return w.Flush()
}
