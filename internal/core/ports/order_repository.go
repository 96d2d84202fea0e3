package ports

import (
	"context"
	"errors"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"
)

// ErrConcurrencyConflict is returned by conditional writes whose precondition
// no longer holds: another writer committed first. The losing write has no
// observable effect; the caller must re-read and retry or abort.
var ErrConcurrencyConflict = errors.New("concurrent update won the race")

// OrderRepository defines the persistence contract for order aggregates.
// The store is the single source of truth; every contested mutation is
// arbitrated by the conditional write, so no in-process locks exist anywhere
// above this interface.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, conditioned on the stored
	// status still being expectedStatus at write time. Returns
	// ErrConcurrencyConflict when the condition fails; the store is then
	// unchanged by this call.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first. Terminal orders are never
	// deleted, so this is the full history set used by feed snapshots.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders resting in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
