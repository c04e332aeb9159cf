// Package jobs provides scheduled background tasks for the visibility service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SnapshotReloadJob - re-reads the shipment snapshot document so that edits to the
// file are served without a restart
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the snapshot source
//	jobManager := jobs.NewJobManager(repo, "@every 30s", 5*time.Second, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are parsed with seconds precision, so "*/30 * * * * *" and "@every 30s" are
// equivalent.
//
// # Error Handling
//
// - A failed reload is logged and the previous snapshot keeps being served
// - An invalid schedule fails StartAll
package jobs
