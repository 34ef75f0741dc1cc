// Package catalog holds the static vocabulary fixture and the read-only
// queries the presentation layer runs against it: category listing, category
// filtering with per-category ordering, and term search.
//
// A Catalog never changes after construction, so every method is safe for
// concurrent use.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/signbook/internal/entities"
)

//go:embed data/catalog.json
var embeddedCatalog []byte

// Catalog is an immutable list of vocabulary entries.
type Catalog struct {
	entries []entities.VocabularyEntry
	byKey   map[string]int
}

// New builds a catalog from the given entries. Entries sharing an identity
// key are rejected because favourites could not tell them apart.
func New(entries []entities.VocabularyEntry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]entities.VocabularyEntry, len(entries)),
		byKey:   make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, e := range c.entries {
		if e.Term == "" || e.Category == "" {
			return nil, fmt.Errorf("entry %d: term and category are required", i)
		}
		if strings.Contains(e.Category, "/") {
			return nil, fmt.Errorf("entry %d: category %q contains '/'", i, e.Category)
		}
		if prev, dup := c.byKey[e.Key()]; dup {
			return nil, fmt.Errorf("entry %d duplicates entry %d (%s)", i, prev, e.Key())
		}
		c.byKey[e.Key()] = i
	}
	return c, nil
}

// Load reads a JSON array of entries. IDs in the input are ignored and
// regenerated.
func Load(r io.Reader) (*Catalog, error) {
	var records []entities.VocabularyEntry
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	entries := make([]entities.VocabularyEntry, len(records))
	for i, rec := range records {
		entries[i] = entities.NewVocabularyEntry(rec.Term, rec.Explanation, rec.Category, rec.VideoReference, rec.UsageRegister)
	}
	return New(entries)
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}

// Entries returns a copy of all entries in fixture order.
func (c *Catalog) Entries() []entities.VocabularyEntry {
	out := make([]entities.VocabularyEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup finds an entry by its identity key.
func (c *Catalog) Lookup(key string) (entities.VocabularyEntry, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return entities.VocabularyEntry{}, false
	}
	return c.entries[i], true
}

// Contains reports whether an entry with the same identity exists in the catalog.
func (c *Catalog) Contains(e entities.VocabularyEntry) bool {
	_, ok := c.byKey[e.Key()]
	return ok
}
