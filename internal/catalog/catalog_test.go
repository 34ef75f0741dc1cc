package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/signbook/internal/entities"
)

func entry(term, category string) entities.VocabularyEntry {
	return entities.NewVocabularyEntry(term, "Erklärung für "+term, category, "https://example.com/"+term+".mp4", nil)
}

func newTestCatalog(t *testing.T, entries ...entities.VocabularyEntry) *Catalog {
	t.Helper()
	c, err := New(entries)
	require.NoError(t, err)
	return c
}

func terms(entries []entities.VocabularyEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Term
	}
	return out
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 423, c.Len())
	assert.Equal(t,
		[]string{"Allgemein", "Alltagssätze", "Familie", "Fingeralphabet", "Politik", "Redewendungen", "Zahlen"},
		c.Categories())

	hallo, ok := c.Lookup(entities.EntryKey("Allgemein", "Hallo"))
	require.True(t, ok)
	assert.Equal(t, "Ein Gruß, um jemanden zu begrüßen.", hallo.Explanation)
	usage, ok := hallo.Usage()
	require.True(t, ok)
	assert.Equal(t, entities.UsageNeutralColloquial, usage)
}

func TestDefault_FreshIDsStableKeys(t *testing.T) {
	first, err := Default()
	require.NoError(t, err)
	second, err := Default()
	require.NoError(t, err)

	a := first.Entries()
	b := second.Entries()
	require.Len(t, b, len(a))
	for i := range a {
		assert.NotEqual(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].Key(), b[i].Key())
	}
}

func TestNew(t *testing.T) {
	t.Run("rejects duplicate identity", func(t *testing.T) {
		_, err := New([]entities.VocabularyEntry{entry("Hallo", "Allgemein"), entry("Hallo", "Allgemein")})
		assert.Error(t, err)
	})

	t.Run("same term in different categories is allowed", func(t *testing.T) {
		c, err := New([]entities.VocabularyEntry{entry("Hallo", "Allgemein"), entry("Hallo", "Alltagssätze")})
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("rejects slash in category", func(t *testing.T) {
		_, err := New([]entities.VocabularyEntry{entry("Hallo", "Allgemein/Alt")})
		assert.Error(t, err)
	})

	t.Run("rejects empty term", func(t *testing.T) {
		_, err := New([]entities.VocabularyEntry{entry("", "Allgemein")})
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("accepts legacy usage values", func(t *testing.T) {
		c, err := Load(strings.NewReader(`[{"term":"Danke","explanation":"x","category":"Allgemein","video_reference":"https://v","usage_register":"hoeflich"}]`))
		require.NoError(t, err)

		e, ok := c.Lookup("Allgemein/Danke")
		require.True(t, ok)
		usage, _ := e.Usage()
		assert.Equal(t, entities.UsagePolite, usage)
	})

	t.Run("rejects unknown usage", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[{"term":"Danke","category":"Allgemein","usage_register":"rude"}]`))
		assert.Error(t, err)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{`))
		assert.Error(t, err)
	})
}

func TestCatalog_Contains(t *testing.T) {
	c := newTestCatalog(t, entry("Hallo", "Allgemein"))

	assert.True(t, c.Contains(entry("Hallo", "Allgemein")))
	assert.False(t, c.Contains(entry("Hallo", "Familie")))
}

func TestCatalog_EntriesIsCopy(t *testing.T) {
	c := newTestCatalog(t, entry("Hallo", "Allgemein"))

	entries := c.Entries()
	entries[0].Term = "Changed"

	assert.Equal(t, "Hallo", c.Entries()[0].Term)
}
