package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/signbook/internal/logger"
)

// NewRouter creates the HTTP router with all endpoints. Optional
// dependencies left nil in cfg disable their routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Catalog, cfg.Version)
	catalogController := NewCatalogController(cfg.Catalog, cfg.Favourites)
	tasksController := NewTasksController(cfg.TaskClient, cfg.Backup, cfg.Logger)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")

	// Catalog endpoints
	api.GET("/categories", catalogController.ListCategories)
	api.GET("/categories/:category/entries", catalogController.ListCategoryEntries)
	api.GET("/search", catalogController.Search)
	api.GET("/entry", catalogController.GetEntry)

	// Favourites endpoints
	if cfg.Favourites != nil {
		favouritesController := NewFavouritesController(cfg.Favourites, cfg.Catalog, cfg.Logger)
		api.GET("/favourites", favouritesController.ListFavourites)
		api.POST("/favourites", favouritesController.AddFavourite)
		api.DELETE("/favourites", favouritesController.RemoveFavourite)
		api.POST("/favourites/toggle", favouritesController.ToggleFavourite)
		api.POST("/favourites/remove-at", favouritesController.RemoveAt)
		api.GET("/favourites/export", favouritesController.Export)
		api.POST("/favourites/import", favouritesController.Import)
		api.POST("/favourites/backup", tasksController.RunBackup)
	}

	// Settings endpoints
	if cfg.Settings != nil {
		settingsController := NewSettingsController(cfg.Settings, cfg.Logger)
		api.GET("/settings", settingsController.GetSettings)
		api.PUT("/settings", settingsController.UpdateSettings)
		api.DELETE("/settings", settingsController.ResetSettings)
	}

	// Task status
	if cfg.TaskClient != nil {
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
	}

	return router
}
