package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/signbook/internal/logger"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule checks a five-field cron expression.
func ValidateSchedule(schedule string) error {
	_, err := parser.Parse(schedule)
	return err
}

// BackupEnqueuer hands a backup to the task queue.
type BackupEnqueuer interface {
	EnqueueFavouritesBackup(ctx context.Context, dir, requestedBy string) (string, error)
}

// FavouritesBackupScheduler periodically enqueues a favourites backup.
type FavouritesBackupScheduler struct {
	enqueuer BackupEnqueuer
	schedule string
	dir      string
	log      *logger.Logger

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewFavouritesBackupScheduler(enqueuer BackupEnqueuer, schedule, dir string, log *logger.Logger) *FavouritesBackupScheduler {
	return &FavouritesBackupScheduler{
		enqueuer: enqueuer,
		schedule: schedule,
		dir:      dir,
		log:      log.With("component", "backup_scheduler"),
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start registers the job and starts the cron loop. Cancelling ctx stops it.
func (s *FavouritesBackupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if s.dir == "" {
		return fmt.Errorf("backup directory not configured")
	}
	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runBackup(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule backup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.log.Info("started", "schedule", s.schedule, "dir", s.dir, "next_run", s.nextRunLocked())

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running job and stops the cron loop.
func (s *FavouritesBackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning = false
	s.cancelFunc = nil

	s.log.Info("stopped")
}

// RunNow enqueues a backup immediately and returns the task ID.
func (s *FavouritesBackupScheduler) RunNow(ctx context.Context) (string, error) {
	return s.enqueuer.EnqueueFavouritesBackup(ctx, s.dir, "api")
}

func (s *FavouritesBackupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next backup is due, or nil when stopped.
func (s *FavouritesBackupScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	return s.nextRunLocked()
}

func (s *FavouritesBackupScheduler) nextRunLocked() *time.Time {
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *FavouritesBackupScheduler) runBackup(ctx context.Context) {
	id, err := s.enqueuer.EnqueueFavouritesBackup(ctx, s.dir, "schedule")
	if err != nil {
		s.log.Error("failed to enqueue backup", "error", err)
		return
	}
	s.log.Debug("backup enqueued", "task_id", id)
}
