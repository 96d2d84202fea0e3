package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"gasline/internal/core/application/usecases/commands"
	"gasline/internal/core/application/usecases/queries"
	"gasline/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleAssignmentJob   *StaleAssignmentJob
	dashboardSnapshotJob *DashboardSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the use case handlers as dependencies to wire up the job execution.
func NewJobManager(
	releaseHandler commands.ReleaseStaleAssignmentsCommandHandler,
	statsHandler queries.GetDashboardStatsQueryHandler,
	systemActor kernel.Actor,
	staleAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleAssignmentJob:   NewStaleAssignmentJob(releaseHandler, systemActor, staleAge, logger),
		dashboardSnapshotJob: NewDashboardSnapshotJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale assignment job: %w", err)
	}

	if err := jm.dashboardSnapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleAssignmentJob.Stop()
		return fmt.Errorf("failed to start dashboard snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleAssignmentJob.Stop()
	jm.dashboardSnapshotJob.Stop()
}
