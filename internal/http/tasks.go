package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/signbook/internal/logger"
	"github.com/mrlokans/signbook/internal/tasks"
)

// TasksController exposes the task queue: manual backups and task status.
type TasksController struct {
	client *tasks.Client
	backup BackupRunner
	log    *logger.Logger
}

func NewTasksController(client *tasks.Client, backup BackupRunner, log *logger.Logger) *TasksController {
	return &TasksController{client: client, backup: backup, log: log}
}

// RunBackup enqueues a favourites backup.
// POST /api/favourites/backup
func (tc *TasksController) RunBackup(c *gin.Context) {
	if tc.backup == nil {
		respondError(c, http.StatusServiceUnavailable, "favourites backup is not enabled")
		return
	}

	id, err := tc.backup.RunNow(c.Request.Context())
	if err != nil {
		respondInternalError(c, tc.log, err, "enqueue favourites backup")
		return
	}
	respondAccepted(c, "backup enqueued", gin.H{"task_id": id, "type": tasks.BackupFavouritesQueue})
}

// GetTaskStatus handles GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	if tc.client == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is not enabled")
		return
	}

	taskID := c.Param("id")
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, tc.log, err, "task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
