package http

import (
	"context"
	"io"

	"github.com/mrlokans/signbook/internal/catalog"
	"github.com/mrlokans/signbook/internal/entities"
	"github.com/mrlokans/signbook/internal/settingsstore"
)

// This file collects the store interfaces the controllers depend on. Each
// controller only sees the methods it uses.

// CatalogReader is the read side of the vocabulary catalog.
type CatalogReader interface {
	Categories() []string
	Search(query string, scope catalog.Scope) []entities.VocabularyEntry
	SearchCategory(category, query string) []entities.VocabularyEntry
	Lookup(key string) (entities.VocabularyEntry, bool)
}

// FavouritesChecker answers whether an entry is bookmarked.
type FavouritesChecker interface {
	IsFavorite(e entities.VocabularyEntry) bool
}

// FavouritesStore is everything the favourites controller needs.
type FavouritesStore interface {
	FavouritesChecker
	Add(e entities.VocabularyEntry) error
	Remove(e entities.VocabularyEntry) error
	Toggle(e entities.VocabularyEntry) (bool, error)
	Sorted() []entities.VocabularyEntry
	RemoveAt(positions []int, view []entities.VocabularyEntry) error
	Len() int
	Export(w io.Writer) error
	Import(r io.Reader) (int, error)
}

// SettingsStore reads and writes the display preferences.
type SettingsStore interface {
	Snapshot() settingsstore.Snapshot
	SetTextScale(v float64) error
	SetColorTheme(t settingsstore.ColorTheme) error
	Reset() error
}

// BackupRunner triggers a favourites backup outside the schedule.
type BackupRunner interface {
	RunNow(ctx context.Context) (string, error)
}

// Pinger reports database connectivity.
type Pinger interface {
	Ping() error
}
