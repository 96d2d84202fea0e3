package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries. Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the customer's orders with their line
// items, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := scanOrderViews(ctx, h.db, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().String())
	if err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, views); err != nil {
		return nil, err
	}

	return views, nil
}
