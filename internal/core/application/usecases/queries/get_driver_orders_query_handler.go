package queries

import (
	"context"

	"gasline/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler reads a driver's work pool from the database:
// orders assigned to the driver in any state plus unassigned pending orders.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver work pool
// queries. Requires a GORM database connection for query execution.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the driver's orders with their line
// items, newest first.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := scanOrderViews(ctx, h.db, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE driver_id = ? OR status = ?
		ORDER BY created_at DESC
	`, query.DriverID().String(), int(order.Pending))
	if err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, views); err != nil {
		return nil, err
	}

	return views, nil
}
