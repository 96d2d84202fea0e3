package jobs

import (
	"context"
	"log/slog"
	"time"

	"gasline/internal/core/application/usecases/commands"
	"gasline/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// StaleAssignmentJob sweeps assignments that were never picked up.
// Runs every minute: any order resting in assigned longer than the configured
// age reverts to pending and its driver is freed, so a driver who never
// accepts cannot strand an order.
type StaleAssignmentJob struct {
	handler commands.ReleaseStaleAssignmentsCommandHandler
	actor   kernel.Actor
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleAssignmentJob creates the sweep job. The actor is the system
// dispatcher identity the sweep acts under.
func NewStaleAssignmentJob(
	handler commands.ReleaseStaleAssignmentsCommandHandler,
	actor kernel.Actor,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleAssignmentJob {
	return &StaleAssignmentJob{
		handler: handler,
		actor:   actor,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_assignment_job"),
	}
}

// Start begins the sweep, running every minute.
func (j *StaleAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReleaseStaleAssignmentsCommand(j.maxAge, j.actor)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale assignment sweep misconfigured", "error", cmdErr)
			return
		}

		released, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale assignment sweep failed", "error", handleErr)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Released stale assignments", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale assignment job started (running every minute)",
		"max_age", j.maxAge.String())
	return nil
}

// Stop stops the sweep.
func (j *StaleAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale assignment job stopped")
}
