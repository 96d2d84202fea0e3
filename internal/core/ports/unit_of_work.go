package ports

import (
	"context"

	"gasline/internal/core/domain/model/kernel"
)

// TrackedAggregate is one aggregate modified within a unit of work, surfaced
// after commit so the change feed can publish it to subscribers.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command, keeping
// concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one business transaction boundary.
// Client code manages the transaction lifecycle explicitly and reads the
// tracked aggregates after a successful commit to fan changes out.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Rolling back after a commit is a no-op for callers using defer.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// TrackedAggregates returns the aggregates modified during this unit of
	// work, in modification order.
	TrackedAggregates() []TrackedAggregate
}
