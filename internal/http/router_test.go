package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/signbook/internal/catalog"
	"github.com/mrlokans/signbook/internal/database"
	"github.com/mrlokans/signbook/internal/entities"
	"github.com/mrlokans/signbook/internal/favourites"
	"github.com/mrlokans/signbook/internal/kvstore"
	"github.com/mrlokans/signbook/internal/logger"
	"github.com/mrlokans/signbook/internal/settingsstore"
)

type testEnv struct {
	router     *gin.Engine
	db         *database.Database
	catalog    *catalog.Catalog
	favourites *favourites.Store
	settings   *settingsstore.SettingsStore
}

type fakeBackup struct {
	id  string
	err error
}

func (f *fakeBackup) RunNow(context.Context) (string, error) {
	return f.id, f.err
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	entries := []entities.VocabularyEntry{
		entities.NewVocabularyEntry("Hallo", "Begrüßung", "Allgemein", "https://example.org/hallo.mp4", entities.UsagePtr(entities.UsageNeutralColloquial)),
		entities.NewVocabularyEntry("Danke", "Dank", "Allgemein", "https://example.org/danke.mp4", entities.UsagePtr(entities.UsagePolite)),
		entities.NewVocabularyEntry("Bitte", "Bitte", "Allgemein", "https://example.org/bitte.mp4", nil),
		entities.NewVocabularyEntry("B", "", "Fingeralphabet", "https://example.org/b.mp4", nil),
		entities.NewVocabularyEntry("A", "", "Fingeralphabet", "https://example.org/a.mp4", nil),
		entities.NewVocabularyEntry("Ich fahre/gehe nach Hause", "Heimweg", "Alltagssätze", "https://example.org/heim.mp4", nil),
	}
	c, err := catalog.New(entries)
	require.NoError(t, err)
	return c
}

func newTestEnv(t *testing.T, backup BackupRunner) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	env := &testEnv{
		db:         db,
		catalog:    testCatalog(t),
		favourites: favourites.NewStore(db, logger.NewNop()),
		settings:   settingsstore.New(db, logger.NewNop()),
	}
	cfg := RouterConfig{
		Catalog:    env.catalog,
		Favourites: env.favourites,
		Settings:   env.settings,
		Database:   db,
		Version:    "test",
		Logger:     logger.NewNop(),
	}
	if backup != nil {
		cfg.Backup = backup
	}
	env.router = NewRouter(cfg)
	return env
}

func (env *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type failingSettings struct {
	SettingsStore
}

func (failingSettings) SetTextScale(float64) error {
	return errors.New("database is locked")
}

func (failingSettings) Reset() error {
	return errors.New("database is locked")
}
