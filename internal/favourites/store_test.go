package favourites

import (
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

func entry(term, category string) entities.VocabularyEntry {
	return entities.NewVocabularyEntry(term, "Erklärung zu "+term, category, "https://example.org/"+term+".mp4", nil)
}

func terms(entries []entities.VocabularyEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Term
	}
	return out
}

// failingKV accepts reads but refuses every write.
type failingKV struct {
	kvstore.Store
}

func (failingKV) Set(string, []byte) error {
	return errors.New("disk full")
}

func TestNewStore(t *testing.T) {
	t.Run("missing slot starts empty", func(t *testing.T) {
		store := NewStore(kvstore.NewMemory(), logger.NewNop())
		assert.Equal(t, 0, store.Len())
		assert.NotNil(t, store.Sorted())
	})

	t.Run("corrupt slot starts empty", func(t *testing.T) {
		kv := kvstore.NewMemory()
		require.NoError(t, kv.Set(entities.SettingKeyFavoriteEntries, []byte("{not json")))

		store := NewStore(kv, logger.NewNop())
		assert.Equal(t, 0, store.Len())
	})

	t.Run("loads previously persisted favourites", func(t *testing.T) {
		kv := kvstore.NewMemory()
		first := NewStore(kv, logger.NewNop())
		require.NoError(t, first.Add(entry("Hallo", "Allgemein")))
		require.NoError(t, first.Add(entry("Danke", "Allgemein")))

		second := NewStore(kv, logger.NewNop())
		assert.Equal(t, []string{"Danke", "Hallo"}, terms(second.Sorted()))
	})
}

func TestStore_IdentityAcrossReload(t *testing.T) {
	kv := kvstore.NewMemory()
	store := NewStore(kv, logger.NewNop())
	original := entry("Hallo", "Allgemein")
	require.NoError(t, store.Add(original))

	// The catalog rebuilds entries with new IDs on every start.
	rebuilt := entry("Hallo", "Allgemein")
	require.NotEqual(t, original.ID, rebuilt.ID)

	reloaded := NewStore(kv, logger.NewNop())
	assert.True(t, reloaded.IsFavorite(rebuilt))
	assert.False(t, reloaded.IsFavorite(entry("Hallo", "Alltagssätze")))
}

func TestStore_Add(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		store := NewStore(kvstore.NewMemory(), logger.NewNop())
		e := entry("Hallo", "Allgemein")

		require.NoError(t, store.Add(e))
		require.NoError(t, store.Add(e))
		require.NoError(t, store.Add(entry("Hallo", "Allgemein")))

		assert.Equal(t, 1, store.Len())
		assert.True(t, store.IsFavorite(e))
	})

	t.Run("persist failure is returned and state is kept", func(t *testing.T) {
		store := NewStore(failingKV{Store: kvstore.NewMemory()}, logger.NewNop())
		e := entry("Hallo", "Allgemein")

		err := store.Add(e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.True(t, store.IsFavorite(e))
	})
}

func TestStore_Remove(t *testing.T) {
	store := NewStore(kvstore.NewMemory(), logger.NewNop())
	e := entry("Hallo", "Allgemein")
	require.NoError(t, store.Add(e))

	require.NoError(t, store.Remove(entry("Hallo", "Allgemein")))
	assert.False(t, store.IsFavorite(e))

	t.Run("absent entry is a no-op", func(t *testing.T) {
		require.NoError(t, store.Remove(e))
		assert.Equal(t, 0, store.Len())
	})
}

func TestStore_Toggle(t *testing.T) {
	store := NewStore(kvstore.NewMemory(), logger.NewNop())
	e := entry("Bitte", "Allgemein")

	on, err := store.Toggle(e)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, store.IsFavorite(e))

	on, err = store.Toggle(e)
	require.NoError(t, err)
	assert.False(t, on)
	assert.False(t, store.IsFavorite(e))
}

func TestStore_Sorted(t *testing.T) {
	store := NewStore(kvstore.NewMemory(), logger.NewNop())
	for _, term := range []string{"Hallo", "Bitte", "Danke", "Apfel"} {
		require.NoError(t, store.Add(entry(term, "Allgemein")))
	}
	require.NoError(t, store.Add(entry("Apfel", "Lebensmittel")))

	sorted := store.Sorted()
	assert.Equal(t, []string{"Apfel", "Apfel", "Bitte", "Danke", "Hallo"}, terms(sorted))
	assert.Equal(t, "Allgemein", sorted[0].Category)
	assert.Equal(t, "Lebensmittel", sorted[1].Category)
}

func TestStore_RemoveAt(t *testing.T) {
	newStore := func(t *testing.T) *Store {
		store := NewStore(kvstore.NewMemory(), logger.NewNop())
		for _, term := range []string{"Hallo", "Bitte", "Danke"} {
			require.NoError(t, store.Add(entry(term, "Allgemein")))
		}
		return store
	}

	t.Run("removes the entry at the displayed position", func(t *testing.T) {
		store := newStore(t)
		view := store.Sorted()
		require.Equal(t, []string{"Bitte", "Danke", "Hallo"}, terms(view))

		require.NoError(t, store.RemoveAt([]int{1}, view))
		assert.Equal(t, []string{"Bitte", "Hallo"}, terms(store.Sorted()))
	})

	t.Run("removes several positions at once", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.RemoveAt([]int{0, 2}, store.Sorted()))
		assert.Equal(t, []string{"Danke"}, terms(store.Sorted()))
	})

	t.Run("ignores positions outside the view", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.RemoveAt([]int{-1, 3, 42}, store.Sorted()))
		assert.Equal(t, 3, store.Len())
	})

	t.Run("targets the view, not the current state", func(t *testing.T) {
		store := newStore(t)
		view := store.Sorted()
		require.NoError(t, store.Add(entry("Apfel", "Lebensmittel")))

		require.NoError(t, store.RemoveAt([]int{0}, view))
		assert.Equal(t, []string{"Apfel", "Danke", "Hallo"}, terms(store.Sorted()))
	})
}

func TestStore_Subscribe(t *testing.T) {
	store := NewStore(kvstore.NewMemory(), logger.NewNop())

	var changes []Change
	unsubscribe := store.Subscribe(func(c Change) {
		// Callbacks run outside the lock, so reading the store is safe.
		_ = store.Len()
		changes = append(changes, c)
	})

	e := entry("Hallo", "Allgemein")
	require.NoError(t, store.Add(e))
	require.NoError(t, store.Add(e))
	_, err := store.Toggle(e)
	require.NoError(t, err)

	assert.Equal(t, []Change{{Op: OpAdd, Count: 1}, {Op: OpRemove, Count: 0}}, changes)

	unsubscribe()
	unsubscribe()
	require.NoError(t, store.Add(e))
	assert.Len(t, changes, 2)
}

func TestStore_PersistsThroughDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "favourites.db")

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	store := NewStore(db, logger.NewNop())
	require.NoError(t, store.Add(entry("Ich fahre/gehe nach Hause", "Alltagssätze")))
	require.NoError(t, store.Add(entry("A", "Fingeralphabet")))
	require.NoError(t, db.Close())

	db, err = database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	reloaded := NewStore(db, logger.NewNop())
	assert.Equal(t, []string{"A", "Ich fahre/gehe nach Hause"}, terms(reloaded.Sorted()))
	assert.True(t, reloaded.IsFavorite(entry("Ich fahre/gehe nach Hause", "Alltagssätze")))
}
