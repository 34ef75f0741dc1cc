package favourites

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mrlokans/signbook/internal/entities"
)

// record accepts both the current field names and the German ones written by
// the old mobile app export.
type record struct {
	Term           string                  `json:"term"`
	Explanation    string                  `json:"explanation"`
	Category       string                  `json:"category"`
	VideoReference string                  `json:"video_reference"`
	UsageRegister  *entities.UsageRegister `json:"usage_register"`

	Wort       string                  `json:"wort"`
	Erklaerung string                  `json:"erklaerung"`
	Kategorie  string                  `json:"kategorie"`
	VideoURL   string                  `json:"videoURL"`
	Gebrauch   *entities.UsageRegister `json:"gebrauch"`
}

func (r record) legacy() bool {
	return r.Term == "" && r.Wort != ""
}

func (r record) entry() entities.VocabularyEntry {
	if r.legacy() {
		return entities.NewVocabularyEntry(r.Wort, r.Erklaerung, r.Kategorie, r.VideoURL, r.Gebrauch)
	}
	return entities.NewVocabularyEntry(r.Term, r.Explanation, r.Category, r.VideoReference, r.UsageRegister)
}

// Encode serializes entries as a JSON array in display order.
func Encode(entries []entities.VocabularyEntry) ([]byte, error) {
	sorted := make([]entities.VocabularyEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return entities.LessByTerm(sorted[i], sorted[j])
	})

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode favourites: %w", err)
	}
	return data, nil
}

// Decode parses a favourites document. Every returned entry gets a fresh ID.
// Records without a term or category cannot be identified and make the whole
// document invalid.
func Decode(data []byte) ([]entities.VocabularyEntry, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &DecodeError{Err: err}
	}

	entries := make([]entities.VocabularyEntry, 0, len(records))
	for i, rec := range records {
		e := rec.entry()
		if e.Term == "" || e.Category == "" {
			return nil, &DecodeError{Err: fmt.Errorf("record %d: term and category are required", i)}
		}
		// Keys are category + "/" + term, so a slash in the category would be ambiguous.
		if strings.Contains(e.Category, "/") {
			return nil, &DecodeError{Err: fmt.Errorf("record %d: category %q contains '/'", i, e.Category)}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
