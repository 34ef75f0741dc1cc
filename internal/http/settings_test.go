package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/signbook/internal/logger"
	"github.com/mrlokans/signbook/internal/settingsstore"
)

func TestSettingsController(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("defaults", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/settings", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"text_scale":16,"color_theme":"system"}`, w.Body.String())
	})

	t.Run("partial update", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/settings", map[string]any{"color_theme": "dark"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"text_scale":16,"color_theme":"dark"}`, w.Body.String())
		assert.Equal(t, settingsstore.ColorThemeDark, env.settings.ColorTheme())
	})

	t.Run("text scale bounds are inclusive", func(t *testing.T) {
		for _, v := range []float64{12, 30} {
			w := env.do(t, http.MethodPut, "/api/settings", map[string]any{"text_scale": v})
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, v, env.settings.TextScale())
		}
	})

	t.Run("text scale out of range", func(t *testing.T) {
		for _, v := range []float64{11.9, 31} {
			w := env.do(t, http.MethodPut, "/api/settings", map[string]any{"text_scale": v})
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
		assert.Equal(t, 30.0, env.settings.TextScale())
	})

	t.Run("unknown theme leaves text scale untouched", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/settings", map[string]any{"text_scale": 20, "color_theme": "sepia"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 30.0, env.settings.TextScale())
	})

	t.Run("invalid body", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/settings", "{")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reset restores defaults", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/api/settings", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"text_scale":16,"color_theme":"system"}`, w.Body.String())
		assert.Equal(t, settingsstore.ColorThemeSystem, env.settings.ColorTheme())

		w = env.do(t, http.MethodGet, "/api/settings", nil)
		assert.JSONEq(t, `{"text_scale":16,"color_theme":"system"}`, w.Body.String())
	})
}

func TestSettingsController_StoreFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	controller := NewSettingsController(failingSettings{SettingsStore: env.settings}, logger.NewNop())
	router.PUT("/api/settings", controller.UpdateSettings)
	router.DELETE("/api/settings", controller.ResetSettings)
	env.router = router

	w := env.do(t, http.MethodPut, "/api/settings", map[string]any{"text_scale": 20})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())

	w = env.do(t, http.MethodDelete, "/api/settings", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
