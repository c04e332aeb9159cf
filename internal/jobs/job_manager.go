package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"visibility/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotReloadJob *SnapshotReloadJob
}

// NewJobManager creates a new job manager with all required jobs.
// A nil reloader or an empty schedule disables snapshot reloading, which is the case for
// sources that are read live on every request.
func NewJobManager(
	reloader ports.SnapshotReloader,
	reloadSchedule string,
	reloadTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if reloader != nil && reloadSchedule != "" {
		jm.snapshotReloadJob = NewSnapshotReloadJob(reloader, reloadSchedule, reloadTimeout, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.snapshotReloadJob == nil {
		return nil
	}

	if err := jm.snapshotReloadJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot reload job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.snapshotReloadJob != nil {
		jm.snapshotReloadJob.Stop()
	}
}
