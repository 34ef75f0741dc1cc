package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/signbook/internal/logger"
	"github.com/mrlokans/signbook/internal/settingsstore"
)

// UpdateSettingsRequest changes any subset of the preferences.
type UpdateSettingsRequest struct {
	TextScale  *float64 `json:"text_scale"`
	ColorTheme *string  `json:"color_theme"`
}

type SettingsController struct {
	store SettingsStore
	log   *logger.Logger
}

func NewSettingsController(store SettingsStore, log *logger.Logger) *SettingsController {
	return &SettingsController{store: store, log: log}
}

// GetSettings handles GET /api/settings
func (sc *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, sc.store.Snapshot())
}

// UpdateSettings handles PUT /api/settings. The text scale range is checked
// here; the store accepts any value.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	var theme settingsstore.ColorTheme
	if req.ColorTheme != nil {
		parsed, err := settingsstore.ParseColorTheme(*req.ColorTheme)
		if err != nil {
			respondBadRequest(c, "color_theme must be one of system, light, dark")
			return
		}
		theme = parsed
	}
	if req.TextScale != nil {
		if *req.TextScale < settingsstore.MinTextScale || *req.TextScale > settingsstore.MaxTextScale {
			respondBadRequest(c, fmt.Sprintf("text_scale must be between %g and %g",
				settingsstore.MinTextScale, settingsstore.MaxTextScale))
			return
		}
		if err := sc.store.SetTextScale(*req.TextScale); err != nil {
			respondInternalError(c, sc.log, err, "save text scale")
			return
		}
	}
	if req.ColorTheme != nil {
		if err := sc.store.SetColorTheme(theme); err != nil {
			respondInternalError(c, sc.log, err, "save color theme")
			return
		}
	}

	c.JSON(http.StatusOK, sc.store.Snapshot())
}

// ResetSettings handles DELETE /api/settings and returns the defaults.
func (sc *SettingsController) ResetSettings(c *gin.Context) {
	if err := sc.store.Reset(); err != nil {
		respondInternalError(c, sc.log, err, "reset settings")
		return
	}
	c.JSON(http.StatusOK, sc.store.Snapshot())
}
