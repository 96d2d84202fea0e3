// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order lifecycle coordination.
//
// # Available Jobs
//
// 1. StaleAssignmentJob - Runs every minute to revert assignments that were never picked up
// 2. DashboardSnapshotJob - Runs hourly to log the recomputed dashboard aggregates
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseHandler, statsHandler, systemActor, staleAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The stale assignment sweep treats conditional-write conflicts as expected
//   and skips the contested order; genuine failures are logged
// - Failed job starts will stop any already running jobs
package jobs
