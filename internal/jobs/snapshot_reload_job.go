package jobs

import (
	"context"
	"log/slog"
	"time"

	"visibility/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SnapshotReloadJob periodically re-reads the shipment snapshot.
// A failed reload keeps the previous snapshot in service and is only logged.
type SnapshotReloadJob struct {
	reloader ports.SnapshotReloader
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotReloadJob creates a job running reloader on schedule.
// The schedule is a cron expression with a seconds field, or a descriptor such as "@every 30s".
// Each run is bounded by timeout.
func NewSnapshotReloadJob(
	reloader ports.SnapshotReloader,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *SnapshotReloadJob {
	return &SnapshotReloadJob{
		reloader: reloader,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "snapshot_reload_job"),
	}
}

// Start schedules the job. Returns an error for an invalid schedule.
func (j *SnapshotReloadJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot reload job started", "schedule", j.schedule)
	return nil
}

// Run reloads the snapshot once.
func (j *SnapshotReloadJob) Run(ctx context.Context) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	count, err := j.reloader.Reload(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Snapshot reload failed, keeping previous snapshot", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Snapshot reloaded", "shipments", count)
}

// Stop stops the schedule and waits for a running reload to finish.
func (j *SnapshotReloadJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot reload job stopped")
}
