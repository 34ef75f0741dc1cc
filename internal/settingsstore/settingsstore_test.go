package settingsstore

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/signbook/internal/database"
	"github.com/mrlokans/signbook/internal/entities"
	"github.com/mrlokans/signbook/internal/kvstore"
	"github.com/mrlokans/signbook/internal/logger"
)

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

type readOnlyKV struct {
	kvstore.Store
}

func (readOnlyKV) Set(string, []byte) error {
	return errors.New("read-only")
}

func (readOnlyKV) Delete(string) error {
	return errors.New("read-only")
}

func TestNew(t *testing.T) {
	t.Run("defaults when nothing stored", func(t *testing.T) {
		store := New(kvstore.NewMemory(), logger.NewNop())

		assert.Equal(t, 16.0, store.TextScale())
		assert.Equal(t, ColorThemeSystem, store.ColorTheme())
	})

	t.Run("reads stored values", func(t *testing.T) {
		kv := kvstore.NewMemory()
		require.NoError(t, kv.Set(entities.SettingKeyTextSize, []byte("22.5")))
		require.NoError(t, kv.Set(entities.SettingKeyColorScheme, []byte("2")))

		store := New(kv, logger.NewNop())
		assert.Equal(t, 22.5, store.TextScale())
		assert.Equal(t, ColorThemeDark, store.ColorTheme())
	})

	t.Run("unparsable values fall back to defaults", func(t *testing.T) {
		kv := kvstore.NewMemory()
		require.NoError(t, kv.Set(entities.SettingKeyTextSize, []byte("huge")))
		require.NoError(t, kv.Set(entities.SettingKeyColorScheme, []byte("7")))

		store := New(kv, logger.NewNop())
		assert.Equal(t, DefaultTextScale, store.TextScale())
		assert.Equal(t, ColorThemeSystem, store.ColorTheme())
	})
}

func TestSetTextScale(t *testing.T) {
	t.Run("persists across reopen", func(t *testing.T) {
		db := setupTestDB(t)

		store := New(db, logger.NewNop())
		require.NoError(t, store.SetTextScale(20))

		raw, err := db.Get(entities.SettingKeyTextSize)
		require.NoError(t, err)
		assert.Equal(t, "20", string(raw))

		assert.Equal(t, 20.0, New(db, logger.NewNop()).TextScale())
	})

	t.Run("store does not clamp", func(t *testing.T) {
		store := New(kvstore.NewMemory(), logger.NewNop())
		require.NoError(t, store.SetTextScale(99))
		assert.Equal(t, 99.0, store.TextScale())
	})

	t.Run("slots are independent", func(t *testing.T) {
		kv := kvstore.NewMemory()
		store := New(kv, logger.NewNop())
		require.NoError(t, store.SetTextScale(14))

		_, err := kv.Get(entities.SettingKeyColorScheme)
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("write failure is returned", func(t *testing.T) {
		store := New(readOnlyKV{Store: kvstore.NewMemory()}, logger.NewNop())
		err := store.SetTextScale(18)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read-only")
	})
}

func TestSetColorTheme(t *testing.T) {
	t.Run("persists integer value", func(t *testing.T) {
		db := setupTestDB(t)

		store := New(db, logger.NewNop())
		require.NoError(t, store.SetColorTheme(ColorThemeLight))

		raw, err := db.Get(entities.SettingKeyColorScheme)
		require.NoError(t, err)
		assert.Equal(t, "1", string(raw))
		assert.Equal(t, ColorThemeLight, New(db, logger.NewNop()).ColorTheme())
	})

	t.Run("rejects unknown theme", func(t *testing.T) {
		store := New(kvstore.NewMemory(), logger.NewNop())
		assert.Error(t, store.SetColorTheme(ColorTheme(9)))
		assert.Equal(t, ColorThemeSystem, store.ColorTheme())
	})
}

func TestReset(t *testing.T) {
	t.Run("restores defaults and clears both slots", func(t *testing.T) {
		db := setupTestDB(t)

		store := New(db, logger.NewNop())
		require.NoError(t, store.SetTextScale(28))
		require.NoError(t, store.SetColorTheme(ColorThemeDark))

		require.NoError(t, store.Reset())
		assert.Equal(t, Snapshot{TextScale: DefaultTextScale, ColorTheme: ColorThemeSystem}, store.Snapshot())

		_, err := db.Get(entities.SettingKeyTextSize)
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
		_, err = db.Get(entities.SettingKeyColorScheme)
		assert.ErrorIs(t, err, kvstore.ErrNotFound)

		reopened := New(db, logger.NewNop())
		assert.Equal(t, DefaultTextScale, reopened.TextScale())
		assert.Equal(t, ColorThemeSystem, reopened.ColorTheme())
	})

	t.Run("nothing stored is fine", func(t *testing.T) {
		store := New(kvstore.NewMemory(), logger.NewNop())
		assert.NoError(t, store.Reset())
	})

	t.Run("delete failure is returned", func(t *testing.T) {
		store := New(readOnlyKV{Store: kvstore.NewMemory()}, logger.NewNop())
		err := store.Reset()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read-only")
	})
}

func TestParseColorTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorTheme
		wantErr bool
	}{
		{"system", ColorThemeSystem, false},
		{"Light", ColorThemeLight, false},
		{" dark ", ColorThemeDark, false},
		{"sepia", ColorThemeSystem, true},
		{"", ColorThemeSystem, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorTheme(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshot(t *testing.T) {
	store := New(kvstore.NewMemory(), logger.NewNop())
	require.NoError(t, store.SetTextScale(24))
	require.NoError(t, store.SetColorTheme(ColorThemeDark))

	snap := store.Snapshot()
	assert.Equal(t, Snapshot{TextScale: 24, ColorTheme: ColorThemeDark}, snap)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text_scale":24,"color_theme":"dark"}`, string(data))

	var decoded Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{"text_scale":13,"color_theme":"light"}`), &decoded))
	assert.Equal(t, Snapshot{TextScale: 13, ColorTheme: ColorThemeLight}, decoded)
}
