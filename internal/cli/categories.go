package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mrlokans/signbook/internal/catalog"
	"github.com/mrlokans/signbook/internal/entities"
)

// CategoriesCommand lists the catalog categories, or one category's entries
// in display order.
type CategoriesCommand struct {
	Category string

	Out io.Writer
}

func NewCategoriesCommand() *CategoriesCommand {
	return &CategoriesCommand{Out: os.Stdout}
}

func (cmd *CategoriesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("categories", flag.ContinueOnError)

	fs.StringVar(&cmd.Category, "category", "", "List the entries of this category")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s categories [-category <name>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *CategoriesCommand) Run() error {
	c, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if cmd.Category == "" {
		for _, name := range c.Categories() {
			fmt.Fprintf(cmd.Out, "%-20s %4d\n", name, len(c.ByCategory(name)))
		}
		return nil
	}

	if !slices.Contains(c.Categories(), cmd.Category) {
		return fmt.Errorf("unknown category: %s", cmd.Category)
	}
	return printEntries(cmd.Out, c.ByCategory(cmd.Category), func(entities.VocabularyEntry) bool { return false })
}
