package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/signbook/internal/config"
	"github.com/mrlokans/signbook/internal/entities"
	"github.com/mrlokans/signbook/internal/favourites"
	"github.com/mrlokans/signbook/internal/kvstore"
	"github.com/mrlokans/signbook/internal/logger"
)

// FavouritesImportCommand merges a favourites document into the database.
type FavouritesImportCommand struct {
	DatabasePath string
	FilePath     string
	DryRun       bool

	Out io.Writer
	Log *logger.Logger
}

func NewFavouritesImportCommand() *FavouritesImportCommand {
	return &FavouritesImportCommand{Out: os.Stdout, Log: logger.NewNop()}
}

func (cmd *FavouritesImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("favourites-import", flag.ContinueOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to a Merken.json document (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show how many favourites would be added without saving")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s favourites-import -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Merge favourites from a Merken.json document. Existing favourites are kept.\n")
		fmt.Fprintf(os.Stderr, "Documents exported by the old mobile app are accepted too.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	return nil
}

func (cmd *FavouritesImportCommand) Run() error {
	db, store, err := openFavourites(cmd.DatabasePath, cmd.Log)
	if err != nil {
		return err
	}
	defer db.Close()

	if cmd.DryRun {
		// Import into an in-memory copy of the current slot.
		scratch := kvstore.NewMemory()
		current, err := db.Get(entities.SettingKeyFavoriteEntries)
		if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
			return fmt.Errorf("read favourites: %w", err)
		}
		if err == nil {
			if err := scratch.Set(entities.SettingKeyFavoriteEntries, current); err != nil {
				return err
			}
		}
		store = favourites.NewStore(scratch, cmd.Log)
	}

	before := store.Len()
	added, err := store.ImportFile(cmd.FilePath)
	if err != nil {
		return err
	}

	if cmd.DryRun {
		fmt.Fprintf(cmd.Out, "Dry run: %d new favourites would be added (%d already stored)\n", added, before)
		return nil
	}
	fmt.Fprintf(cmd.Out, "Imported %d new favourites, %d total\n", added, store.Len())
	return nil
}
