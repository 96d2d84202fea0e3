package ports

import (
	"context"

	"gasline/internal/core/domain/model/driver"
	"gasline/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for the driver roster.
// Drivers are stored in the shared user table; implementations filter by
// role at the query boundary so non-driver users never surface here.
type DriverRepository interface {
	// Add persists a new driver roster entry.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists availability changes for an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by identity. Returns an ObjectNotFoundError for
	// unknown ids and for users whose role is not driver.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves every driver free to take an assignment.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
}
