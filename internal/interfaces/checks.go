package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/signbook/internal/catalog"
	"github.com/mrlokans/signbook/internal/database"
	"github.com/mrlokans/signbook/internal/favourites"
	"github.com/mrlokans/signbook/internal/http"
	"github.com/mrlokans/signbook/internal/kvstore"
	"github.com/mrlokans/signbook/internal/scheduler"
	"github.com/mrlokans/signbook/internal/settingsstore"
	"github.com/mrlokans/signbook/internal/tasks"
)

// =============================================================================
// Persistence
// =============================================================================

var _ kvstore.Store = (*database.Database)(nil)
var _ kvstore.Store = (*kvstore.Memory)(nil)

var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Domain stores
// =============================================================================

var _ http.CatalogReader = (*catalog.Catalog)(nil)
var _ http.FavouritesStore = (*favourites.Store)(nil)
var _ http.SettingsStore = (*settingsstore.SettingsStore)(nil)

// =============================================================================
// Background work
// =============================================================================

var _ tasks.FavouritesWriter = (*favourites.Store)(nil)
var _ scheduler.BackupEnqueuer = (*tasks.Client)(nil)
var _ http.BackupRunner = (*scheduler.FavouritesBackupScheduler)(nil)
