package http

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/signbook/internal/catalog"
	"github.com/mrlokans/signbook/internal/entities"
)

// EntryView is an entry as listed by the API.
type EntryView struct {
	entities.VocabularyEntry
	Key      string `json:"key"`
	Favorite bool   `json:"favorite"`
}

// UsageView spells out a usage register for display.
type UsageView struct {
	Register entities.UsageRegister `json:"register"`
	Label    string                 `json:"label"`
	Detail   string                 `json:"detail"`
}

// EntryDetail is the detail view of a single entry.
type EntryDetail struct {
	EntryView
	Usage     *UsageView            `json:"usage,omitempty"`
	Videos    catalog.VideoVariants `json:"videos"`
	ShareText string                `json:"share_text"`
}

func newEntryViews(entries []entities.VocabularyEntry, favs FavouritesChecker) []EntryView {
	views := make([]EntryView, len(entries))
	for i, e := range entries {
		views[i] = EntryView{
			VocabularyEntry: e,
			Key:             e.Key(),
			Favorite:        favs != nil && favs.IsFavorite(e),
		}
	}
	return views
}

type CatalogController struct {
	catalog CatalogReader
	favs    FavouritesChecker
}

func NewCatalogController(catalog CatalogReader, favs FavouritesChecker) *CatalogController {
	return &CatalogController{catalog: catalog, favs: favs}
}

// ListCategories returns all categories, sorted.
// GET /api/categories
func (cc *CatalogController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": cc.catalog.Categories()})
}

// ListCategoryEntries returns one category in its display order, optionally
// filtered by ?q=.
// GET /api/categories/:category/entries
func (cc *CatalogController) ListCategoryEntries(c *gin.Context) {
	category := c.Param("category")
	if !slices.Contains(cc.catalog.Categories(), category) {
		respondNotFound(c, "category")
		return
	}

	entries := cc.catalog.SearchCategory(category, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"entries":  newEntryViews(entries, cc.favs),
		"total":    len(entries),
	})
}

// Search matches terms case-insensitively. An empty query yields no results.
// GET /api/search?q=&category=
func (cc *CatalogController) Search(c *gin.Context) {
	scope := catalog.AllCategories
	if category := c.Query("category"); category != "" {
		scope = catalog.InCategory(category)
	}

	entries := cc.catalog.Search(c.Query("q"), scope)
	c.JSON(http.StatusOK, gin.H{
		"query":   c.Query("q"),
		"entries": newEntryViews(entries, cc.favs),
		"total":   len(entries),
	})
}

// GetEntry returns the detail view of one entry.
// GET /api/entry?key=
func (cc *CatalogController) GetEntry(c *gin.Context) {
	key, ok := parseKeyQuery(c, "key")
	if !ok {
		return
	}

	e, found := cc.catalog.Lookup(key)
	if !found {
		respondNotFound(c, "entry")
		return
	}

	detail := EntryDetail{
		EntryView: newEntryViews([]entities.VocabularyEntry{e}, cc.favs)[0],
		Videos:    catalog.VideoVariantsFor(e),
		ShareText: catalog.ShareText(e),
	}
	if u, ok := e.Usage(); ok {
		detail.Usage = &UsageView{Register: u, Label: u.Label(), Detail: u.Detail()}
	}
	c.JSON(http.StatusOK, detail)
}
