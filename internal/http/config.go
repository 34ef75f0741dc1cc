package http

import (
	"github.com/mrlokans/signbook/internal/logger"
	"github.com/mrlokans/signbook/internal/tasks"
)

// RouterConfig contains all dependencies needed to build the router.
// Optional dependencies left nil disable their endpoints.
type RouterConfig struct {
	// Core dependencies
	Catalog    CatalogReader
	Favourites FavouritesStore
	Settings   SettingsStore
	Database   Pinger

	// Favourites backup (optional)
	Backup BackupRunner

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string

	Logger *logger.Logger
}
