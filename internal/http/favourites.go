package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/signbook/internal/entities"
	"github.com/mrlokans/signbook/internal/favourites"
	"github.com/mrlokans/signbook/internal/logger"
)

// maxImportSize caps uploaded favourites documents.
const maxImportSize = 5 << 20

type FavouriteView struct {
	EntryView
	Position int `json:"position"`
}

type favouriteKeyRequest struct {
	Key string `json:"key" binding:"required"`
}

type removeAtRequest struct {
	Positions []int    `json:"positions" binding:"required"`
	View      []string `json:"view" binding:"required"`
}

type FavouritesController struct {
	store   FavouritesStore
	catalog CatalogReader
	log     *logger.Logger
}

func NewFavouritesController(store FavouritesStore, catalog CatalogReader, log *logger.Logger) *FavouritesController {
	return &FavouritesController{store: store, catalog: catalog, log: log}
}

// ListFavourites returns the favourites in display order with their positions.
// GET /api/favourites
func (fc *FavouritesController) ListFavourites(c *gin.Context) {
	sorted := fc.store.Sorted()
	views := make([]FavouriteView, len(sorted))
	for i, e := range sorted {
		views[i] = FavouriteView{
			EntryView: EntryView{VocabularyEntry: e, Key: e.Key(), Favorite: true},
			Position:  i,
		}
	}
	c.JSON(http.StatusOK, gin.H{"entries": views, "total": len(views)})
}

// AddFavourite bookmarks a catalog entry.
// POST /api/favourites
func (fc *FavouritesController) AddFavourite(c *gin.Context) {
	e, ok := fc.bindCatalogEntry(c)
	if !ok {
		return
	}
	if err := fc.store.Add(e); err != nil {
		respondInternalError(c, fc.log, err, "add favourite")
		return
	}
	respondSuccess(c, "favourite added", gin.H{"key": e.Key(), "total": fc.store.Len()})
}

// RemoveFavourite drops a favourite. The entry does not need to be in the
// catalog any more.
// DELETE /api/favourites?key=
func (fc *FavouritesController) RemoveFavourite(c *gin.Context) {
	key, ok := parseKeyQuery(c, "key")
	if !ok {
		return
	}
	e, _ := entryFromKey(key)
	if err := fc.store.Remove(e); err != nil {
		respondInternalError(c, fc.log, err, "remove favourite")
		return
	}
	respondSuccess(c, "favourite removed", gin.H{"key": key, "total": fc.store.Len()})
}

// ToggleFavourite flips the bookmark on a catalog entry.
// POST /api/favourites/toggle
func (fc *FavouritesController) ToggleFavourite(c *gin.Context) {
	e, ok := fc.bindCatalogEntry(c)
	if !ok {
		return
	}
	favorite, err := fc.store.Toggle(e)
	if err != nil {
		respondInternalError(c, fc.log, err, "toggle favourite")
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": e.Key(), "favorite": favorite, "total": fc.store.Len()})
}

// RemoveAt deletes the favourites at the given positions of the list the
// client displayed. The client sends that list back as keys.
// POST /api/favourites/remove-at
func (fc *FavouritesController) RemoveAt(c *gin.Context) {
	var req removeAtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "positions and view are required")
		return
	}

	view := make([]entities.VocabularyEntry, len(req.View))
	for i, key := range req.View {
		e, ok := entryFromKey(key)
		if !ok {
			respondBadRequest(c, "invalid key in view: "+key)
			return
		}
		view[i] = e
	}

	if err := fc.store.RemoveAt(req.Positions, view); err != nil {
		respondInternalError(c, fc.log, err, "remove favourites at positions")
		return
	}
	respondSuccess(c, "favourites removed", gin.H{"total": fc.store.Len()})
}

// Export downloads the favourites document.
// GET /api/favourites/export
func (fc *FavouritesController) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := fc.store.Export(&buf); err != nil {
		respondInternalError(c, fc.log, err, "export favourites")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+favourites.ExportFileName+`"`)
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}

// Import merges an uploaded favourites document. Accepts a raw JSON body or
// a multipart form with a "file" field.
// POST /api/favourites/import
func (fc *FavouritesController) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)

	var body io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			respondBadRequest(c, "file is required")
			return
		}
		f, err := header.Open()
		if err != nil {
			respondInternalError(c, fc.log, err, "open uploaded favourites")
			return
		}
		defer f.Close()
		body = f
	}

	added, err := fc.store.Import(body)
	if err != nil {
		var decodeErr *favourites.DecodeError
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &decodeErr):
			respondBadRequest(c, decodeErr.Error())
		case errors.As(err, &maxBytesErr):
			respondError(c, http.StatusRequestEntityTooLarge, "favourites document too large")
		default:
			respondInternalError(c, fc.log, err, "import favourites")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": added, "total": fc.store.Len()})
}

func (fc *FavouritesController) bindCatalogEntry(c *gin.Context) (entities.VocabularyEntry, bool) {
	var req favouriteKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "key is required")
		return entities.VocabularyEntry{}, false
	}
	e, found := fc.catalog.Lookup(req.Key)
	if !found {
		respondNotFound(c, "entry")
		return entities.VocabularyEntry{}, false
	}
	return e, true
}
