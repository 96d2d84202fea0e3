// Package commands contains business operations that mutate order state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent shape: validation,
// transaction management with a conditional write, and post-commit
// publication of the touched aggregates to the change feed.
package commands

import (
	"context"

	"gasline/internal/core/domain/model/order"
	"gasline/internal/core/ports"
)

// EventPublisher receives aggregates committed by a command handler.
// The change feed implements it; handlers publish after, and only after, a
// successful commit.
type EventPublisher interface {
	Publish(o *order.Order)
}

// Unit of Work interfaces provide transaction management for command
// handlers. They are narrowed per command so that tests mock exactly what a
// handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// AggregateTracker exposes the aggregates modified by a unit of work for
	// post-commit publication.
	AggregateTracker interface {
		TrackedAggregates() []ports.TrackedAggregate
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AggregateTracker
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// UoW manages transactions spanning order and driver aggregates, used by
	// commands that must keep assignment state and driver availability in
	// step.
	UoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		AggregateTracker
	}

	// UoWFactory creates cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// publishTracked forwards every order aggregate committed by the unit of work
// to the change feed. Call only after a successful commit.
func publishTracked(tracker AggregateTracker, publisher EventPublisher) {
	if publisher == nil {
		return
	}
	for _, tracked := range tracker.TrackedAggregates() {
		if o, ok := tracked.Aggregate.(*order.Order); ok {
			publisher.Publish(o)
		}
	}
}
