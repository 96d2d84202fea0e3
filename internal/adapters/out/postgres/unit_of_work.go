// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains the set of aggregates touched by one
// business transaction and coordinates writing out changes atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//
//	// Fan committed changes out to the feed.
//	for _, tracked := range uow.TrackedAggregates() {
//	    publish(tracked.Aggregate)
//	}
//
// Concurrency considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines must use separate UnitOfWork instances
//   - Contested order mutations are arbitrated by the repository's
//     conditional write, not by locks at this layer
package postgres

import (
	"context"

	"gasline/internal/adapters/out/postgres/driverrepo"
	"gasline/internal/adapters/out/postgres/orderrepo"
	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// isolated from concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]ports.TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates modified within it. The tracked aggregates are read after a
// successful commit to publish changes to the feed; publication before
// commit would leak uncommitted state to subscribers.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []ports.TrackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Rolling back with no open transaction is a no-op, so handlers can defer
// Rollback unconditionally and still commit on the success path.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence bound to the current
// transaction if one is active, otherwise to the main connection.
// The returned repository tracks every aggregate it writes.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// DriverRepository provides driver roster persistence bound to the current
// transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return driverrepo.NewGormDriverRepository(db)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, ports.TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates modified during this unit of
// work, in modification order.
func (uow *GormUnitOfWork) TrackedAggregates() []ports.TrackedAggregate {
	return uow.trackedAggregates
}
