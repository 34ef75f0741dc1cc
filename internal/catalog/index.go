package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mrlokans/signbook/internal/entities"
)

// Scope restricts a search to one category. The zero value searches the
// whole catalog.
type Scope struct {
	Category string
}

// AllCategories is the global search scope.
var AllCategories = Scope{}

// InCategory scopes a search to a single category.
func InCategory(category string) Scope {
	return Scope{Category: category}
}

func (s Scope) IsGlobal() bool {
	return s.Category == ""
}

// Categories returns every distinct category, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, e := range c.entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		categories = append(categories, e.Category)
	}
	sort.Strings(categories)
	return categories
}

// ByCategory returns the entries of one category in that category's display
// order. Unknown categories yield an empty slice.
func (c *Catalog) ByCategory(category string) []entities.VocabularyEntry {
	return orderForCategory(category, c.filter(func(e entities.VocabularyEntry) bool {
		return e.Category == category
	}))
}

// Search matches query as a case-insensitive substring of the term. An empty
// query matches nothing. Results are ordered by term.
func (c *Catalog) Search(query string, scope Scope) []entities.VocabularyEntry {
	if query == "" {
		return []entities.VocabularyEntry{}
	}
	needle := fold(query)
	results := c.filter(func(e entities.VocabularyEntry) bool {
		if !scope.IsGlobal() && e.Category != scope.Category {
			return false
		}
		return strings.Contains(fold(e.Term), needle)
	})
	sortByTerm(results)
	return results
}

// SearchCategory is the search box of a category screen: an empty query lists
// the whole category, otherwise matching terms are kept. Either way the
// category's ordering policy applies.
func (c *Catalog) SearchCategory(category, query string) []entities.VocabularyEntry {
	if query == "" {
		return c.ByCategory(category)
	}
	return orderForCategory(category, c.Search(query, InCategory(category)))
}

func (c *Catalog) filter(keep func(entities.VocabularyEntry) bool) []entities.VocabularyEntry {
	out := make([]entities.VocabularyEntry, 0)
	for _, e := range c.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// fold applies Unicode case folding. A Caser keeps state, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
