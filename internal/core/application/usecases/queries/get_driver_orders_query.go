package queries

import (
	"errors"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/pkg/guard"
)

var (
	ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
		"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
	)
)

// GetDriverOrdersQuery retrieves a driver's work pool: the orders assigned to
// them plus every pending order still up for grabs.
type GetDriverOrdersQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for a driver's work pool.
func NewGetDriverOrdersQuery(driverID kernel.UUID) (GetDriverOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverOrdersQuery{}, err
	}

	return GetDriverOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose work pool is requested.
func (q GetDriverOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}
