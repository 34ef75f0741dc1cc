package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/signbook/internal/config"
	"github.com/mrlokans/signbook/internal/logger"
)

// FavouritesExportCommand writes the stored favourites to Merken.json.
type FavouritesExportCommand struct {
	DatabasePath string
	OutputDir    string
	Stdout       bool

	Out io.Writer
	Log *logger.Logger
}

func NewFavouritesExportCommand() *FavouritesExportCommand {
	return &FavouritesExportCommand{Out: os.Stdout, Log: logger.NewNop()}
}

func (cmd *FavouritesExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("favourites-export", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.OutputDir, "dir", ".", "Directory to write Merken.json into")
	fs.BoolVar(&cmd.Stdout, "stdout", false, "Write the document to stdout instead of a file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s favourites-export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export bookmarked signs as a Merken.json document that can be imported again.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *FavouritesExportCommand) Run() error {
	db, store, err := openFavourites(cmd.DatabasePath, cmd.Log)
	if err != nil {
		return err
	}
	defer db.Close()

	if cmd.Stdout {
		return store.Export(cmd.Out)
	}

	path, err := store.ExportFile(cmd.OutputDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Out, "Exported %d favourites to %s\n", store.Len(), path)
	return nil
}
