package jobs

import (
	"context"
	"log/slog"

	"gasline/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DashboardSnapshotJob logs the dashboard aggregates once an hour.
// The statistics are recomputed from the full order set on every call, so the
// job is purely observational: it gives operators a periodic trace of totals
// without maintaining any incremental counters.
type DashboardSnapshotJob struct {
	handler queries.GetDashboardStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDashboardSnapshotJob creates the snapshot job.
func NewDashboardSnapshotJob(
	handler queries.GetDashboardStatsQueryHandler,
	logger *slog.Logger,
) *DashboardSnapshotJob {
	return &DashboardSnapshotJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "dashboard_snapshot_job"),
	}
}

// Start begins the snapshot job, running at the top of every hour.
func (j *DashboardSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		stats, handleErr := j.handler.Handle(ctx, queries.NewGetDashboardStatsQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Dashboard snapshot failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Dashboard snapshot",
			"total_orders", stats.TotalOrders,
			"total_deliveries", stats.TotalDeliveries,
			"revenue_cents", stats.Revenue,
			"stock", stats.StockCount,
			"drivers", stats.DriverCount,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard snapshot job started (running hourly)")
	return nil
}

// Stop stops the snapshot job.
func (j *DashboardSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard snapshot job stopped")
}
