package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/signbook/internal/database"
	"github.com/mrlokans/signbook/internal/favourites"
	"github.com/mrlokans/signbook/internal/logger"
)

// openFavourites opens the database at dbPath and loads the favourites
// stored in it. The caller closes the database.
func openFavourites(dbPath string, log *logger.Logger) (*database.Database, *favourites.Store, error) {
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, favourites.NewStore(db, log), nil
}

// openExistingFavourites is openFavourites for read-only callers. It refuses
// to create a database that is not there yet.
func openExistingFavourites(dbPath string, log *logger.Logger) (*database.Database, *favourites.Store, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, nil, fmt.Errorf("database %s: %w", dbPath, err)
	}
	return openFavourites(dbPath, log)
}
