package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/signbook/internal/catalog"
	"github.com/mrlokans/signbook/internal/config"
	"github.com/mrlokans/signbook/internal/database"
	"github.com/mrlokans/signbook/internal/favourites"
	http_controllers "github.com/mrlokans/signbook/internal/http"
	"github.com/mrlokans/signbook/internal/logger"
	"github.com/mrlokans/signbook/internal/scheduler"
	"github.com/mrlokans/signbook/internal/settingsstore"
	"github.com/mrlokans/signbook/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, log *logger.Logger, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen failed", "error", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT. SIGKILL can't be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the server goes away.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	log.Info("server exiting")
}

func Run(cfg *config.Config, version string) {
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Log.Mode == "production" || cfg.Log.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("starting signbook", "version", version)

	vocab, err := catalog.Default()
	if err != nil {
		log.Fatal("failed to load catalog", "error", err)
	}
	log.Info("catalog loaded", "entries", vocab.Len(), "categories", len(vocab.Categories()))

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatal("failed to initialize database", "error", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", "error", err)
		}
	}()

	favStore := favourites.NewStore(db, log.With("component", "favourites"))
	settings := settingsstore.New(db, log.With("component", "settings"))

	unsubscribe := favStore.Subscribe(func(ch favourites.Change) {
		log.Debug("favourites changed", "op", ch.Op, "count", ch.Count)
	})
	defer unsubscribe()

	routerCfg := http_controllers.RouterConfig{
		Catalog:    vocab,
		Favourites: favStore,
		Settings:   settings,
		Database:   db,
		Version:    version,
		Logger:     log.With("component", "http"),
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	var backupScheduler *scheduler.FavouritesBackupScheduler
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg, log)
		if err != nil {
			log.Fatal("failed to initialize task queue", "error", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Error("error closing task client", "error", err)
			}
		}()

		taskClient.Register(tasks.NewBackupFavouritesQueue(favStore, log.With("component", "backup")))

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
		routerCfg.TaskClient = taskClient

		backupScheduler = scheduler.NewFavouritesBackupScheduler(taskClient, cfg.Backup.Schedule, cfg.Backup.Dir, log)
		routerCfg.Backup = backupScheduler
		if cfg.Backup.Enabled {
			if err := backupScheduler.Start(taskCtx); err != nil {
				log.Error("favourites backup scheduler not started", "error", err)
			}
		} else {
			log.Info("scheduled favourites backup disabled")
		}
	} else if cfg.Backup.Enabled {
		log.Warn("BACKUP_ENABLED is set but the task queue is disabled, backups will not run")
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if backupScheduler != nil {
			backupScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, log, onShutdown)
}
