package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/signbook/internal/logger"
)

const BackupFavouritesQueue = "backup_favourites"

// FavouritesWriter writes the current favourites document to a file.
type FavouritesWriter interface {
	WriteFile(path string) error
}

// BackupFavouritesTask snapshots the favourites into Dir.
type BackupFavouritesTask struct {
	Dir         string `json:"dir"`
	RequestedBy string `json:"requested_by"` // "schedule" or "api"
}

func (t BackupFavouritesTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        BackupFavouritesQueue,
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// BackupFileName names a backup taken at t.
func BackupFileName(t time.Time) string {
	return "favourites-" + t.UTC().Format("20060102T150405Z") + ".json"
}

// BackupFavouritesProcessor creates the processor for BackupFavouritesTask.
func BackupFavouritesProcessor(writer FavouritesWriter, log *logger.Logger) backlite.QueueProcessor[BackupFavouritesTask] {
	return func(ctx context.Context, task BackupFavouritesTask) error {
		if writer == nil {
			return fmt.Errorf("favourites writer not configured")
		}
		if task.Dir == "" {
			return fmt.Errorf("backup directory not set")
		}
		if err := os.MkdirAll(task.Dir, 0o755); err != nil {
			return fmt.Errorf("create backup directory: %w", err)
		}

		path := filepath.Join(task.Dir, BackupFileName(time.Now()))
		if err := writer.WriteFile(path); err != nil {
			return fmt.Errorf("backup favourites: %w", err)
		}

		log.Info("favourites backup written", "path", path, "requested_by", task.RequestedBy)
		return nil
	}
}

// NewBackupFavouritesQueue creates the backlite queue for favourites backups.
func NewBackupFavouritesQueue(writer FavouritesWriter, log *logger.Logger) backlite.Queue {
	return backlite.NewQueue(BackupFavouritesProcessor(writer, log))
}

// EnqueueFavouritesBackup adds a backup task and returns its ID.
func (c *Client) EnqueueFavouritesBackup(ctx context.Context, dir, requestedBy string) (string, error) {
	ids, err := c.Add(BackupFavouritesTask{Dir: dir, RequestedBy: requestedBy}).Ctx(ctx).Save()
	if err != nil {
		return "", fmt.Errorf("enqueue favourites backup: %w", err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("enqueue favourites backup: no task id returned")
	}
	return ids[0], nil
}
