// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Persistence
//
//   - kvstore.Store: byte slots keyed by name (internal/kvstore/kvstore.go).
//     database.Database backs it with the settings table, kvstore.Memory
//     serves tests and dry runs.
//
// ## Consumer-side HTTP interfaces (internal/http/stores.go)
//
//   - CatalogReader: categories, scoped search and key lookup
//   - FavouritesChecker / FavouritesStore: membership, mutation, transfer
//   - SettingsStore: text scale and colour theme
//   - BackupRunner: on-demand favourites backup
//   - Pinger: database liveness for /health
//
// ## Background work
//
//   - tasks.FavouritesWriter: what the backup processor needs from the store
//   - scheduler.BackupEnqueuer: what the cron scheduler needs from the queue
//
// # Adding a New Persisted Preference
//
//  1. Add a slot name to internal/entities/setting.go
//
//  2. Read it in settingsstore.New and add a getter/setter pair that writes
//     through the kvstore.Store
//
//  3. Extend http.SettingsStore and the settings controller
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the current set.
package interfaces
