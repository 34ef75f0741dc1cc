package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/signbook/internal/entities"
	"github.com/mrlokans/signbook/internal/logger"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500. The error itself is
// not exposed to the client.
func respondInternalError(c *gin.Context, log *logger.Logger, err error, context string) {
	log.Error("internal error", "context", context, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// --- Success Response Helpers ---

func respondSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message, Data: data})
}

// respondAccepted sends a 202 for work handed to the task queue.
func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message, Data: data})
}

// --- Parameter Parsing ---

// parseKeyQuery reads an entry identity key from the query string. Keys are
// never path parameters because terms may contain slashes.
func parseKeyQuery(c *gin.Context, paramName string) (string, bool) {
	key := c.Query(paramName)
	if key == "" {
		respondBadRequest(c, paramName+" is required")
		return "", false
	}
	if _, _, ok := entities.SplitEntryKey(key); !ok {
		respondBadRequest(c, "invalid "+paramName)
		return "", false
	}
	return key, true
}

// entryFromKey builds a bare entry carrying only the identity fields. It is
// enough for membership checks and removal.
func entryFromKey(key string) (entities.VocabularyEntry, bool) {
	category, term, ok := entities.SplitEntryKey(key)
	if !ok {
		return entities.VocabularyEntry{}, false
	}
	return entities.VocabularyEntry{Term: term, Category: category}, true
}
