package entities

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type UsageRegister string

const (
	UsagePolite            UsageRegister = "polite"
	UsageNeutralColloquial UsageRegister = "neutral_colloquial"
	UsageOffensiveInsult   UsageRegister = "offensive_insult"
	UsageVulgarCoarse      UsageRegister = "vulgar_coarse"
)

// Values shown next to an entry's usage hint.
var usageLabels = map[UsageRegister]struct {
	label  string
	detail string
}{
	UsagePolite: {
		label:  "Höflich",
		detail: "Freundlich, respektvoll, für Alltag und formelle Situationen geeignet.",
	},
	UsageNeutralColloquial: {
		label:  "Neutral / Umgangssprachlich",
		detail: "Alltagssprache, locker, nicht beleidigend, kann in Gesprächen benutzt werden.",
	},
	UsageOffensiveInsult: {
		label:  "Beleidigend / Schimpfwort",
		detail: "Negativ, verletzend, sollte nur verstanden werden, nicht benutzen.",
	},
	UsageVulgarCoarse: {
		label:  "Vulgär / Derb",
		detail: "Sehr starkes Schimpfwort, oft tabu, nur in extrem lockeren oder aggressiven Situationen.",
	},
}

// legacyUsage maps the raw values written by the original mobile app export.
var legacyUsage = map[string]UsageRegister{
	"hoeflich":                 UsagePolite,
	"neutralUmgangssprachlich": UsageNeutralColloquial,
	"beleidigendSchimpfwort":   UsageOffensiveInsult,
	"vulgaerDerb":              UsageVulgarCoarse,
}

func (u UsageRegister) Valid() bool {
	_, ok := usageLabels[u]
	return ok
}

// Label returns the short display label for the register.
func (u UsageRegister) Label() string {
	return usageLabels[u].label
}

// Detail returns the longer explanation shown in the usage info dialog.
func (u UsageRegister) Detail() string {
	return usageLabels[u].detail
}

func (u *UsageRegister) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseUsageRegister(raw)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUsageRegister accepts both the canonical names and the legacy app values.
func ParseUsageRegister(raw string) (UsageRegister, error) {
	if u := UsageRegister(raw); u.Valid() {
		return u, nil
	}
	if u, ok := legacyUsage[raw]; ok {
		return u, nil
	}
	return "", fmt.Errorf("unknown usage register %q", raw)
}

// UsageRegisters lists all registers in a stable order.
func UsageRegisters() []UsageRegister {
	return []UsageRegister{UsagePolite, UsageNeutralColloquial, UsageOffensiveInsult, UsageVulgarCoarse}
}

// VocabularyEntry is one learnable sign with its explanation and demo video.
//
// ID is regenerated whenever an entry value is built and only serves list
// identity. Equality between entries always goes through Key.
type VocabularyEntry struct {
	ID             uuid.UUID      `json:"id"`
	Term           string         `json:"term"`
	Explanation    string         `json:"explanation"`
	Category       string         `json:"category"`
	VideoReference string         `json:"video_reference"`
	UsageRegister  *UsageRegister `json:"usage_register,omitempty"`
}

// NewVocabularyEntry builds an entry with a freshly generated list ID.
func NewVocabularyEntry(term, explanation, category, videoReference string, usage *UsageRegister) VocabularyEntry {
	return VocabularyEntry{
		ID:             uuid.New(),
		Term:           term,
		Explanation:    explanation,
		Category:       category,
		VideoReference: videoReference,
		UsageRegister:  usage,
	}
}

// Key is the stable content identity of an entry: category and term.
func (e VocabularyEntry) Key() string {
	return EntryKey(e.Category, e.Term)
}

// EntryKey builds the identity key for a category/term pair.
func EntryKey(category, term string) string {
	return category + "/" + term
}

// SplitEntryKey is the inverse of EntryKey. Terms may contain slashes,
// categories never do.
func SplitEntryKey(key string) (category, term string, ok bool) {
	category, term, ok = strings.Cut(key, "/")
	if !ok || category == "" || term == "" {
		return "", "", false
	}
	return category, term, true
}

// Usage returns the register and whether one is set.
func (e VocabularyEntry) Usage() (UsageRegister, bool) {
	if e.UsageRegister == nil {
		return "", false
	}
	return *e.UsageRegister, true
}

// UsagePtr is a helper for building entries with a register literal.
func UsagePtr(u UsageRegister) *UsageRegister {
	return &u
}

// LessByTerm orders entries lexicographically by term, falling back to the
// category so that the order is total.
func LessByTerm(a, b VocabularyEntry) bool {
	if a.Term != b.Term {
		return a.Term < b.Term
	}
	return a.Category < b.Category
}
