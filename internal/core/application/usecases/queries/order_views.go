// Package queries contains read operations over order state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return denormalized read models, never
// domain aggregates.
package queries

import (
	"context"
	"time"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// OrderView is the denormalized order read model shared by the customer,
// driver and dispatch listings.
type OrderView struct {
	ID                 kernel.UUID
	Status             string
	AdminApproved      bool
	Amount             int64
	CustomerID         kernel.UUID
	CustomerName       string
	CustomerPhone      string
	CustomerAddress    string
	DestinationLat     float64
	DestinationLng     float64
	DestinationAddress string
	DriverID           *kernel.UUID
	DriverName         string
	DriverPhone        string
	CreatedAt          time.Time
	Items              []OrderItemView
}

// OrderItemView is a single line item of an order read model.
type OrderItemView struct {
	ProductID  string
	Name       string
	UnitWeight int
	UnitPrice  int64
}

const orderViewColumns = `
	id,
	status,
	admin_approved,
	amount,
	customer_id,
	customer_name,
	customer_phone,
	customer_address,
	dest_lat,
	dest_lng,
	dest_address,
	driver_id,
	driver_name,
	driver_phone,
	created_at
`

// scanOrderViews consumes rows produced by a SELECT over orderViewColumns.
// Items are not loaded here; callers attach them afterwards.
func scanOrderViews(ctx context.Context, db *gorm.DB, sql string, args ...any) ([]OrderView, error) {
	res, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer res.Close()

	views := make([]OrderView, 0)

	for res.Next() {
		var view OrderView
		var id, customerID uuid.UUID
		var driverID *uuid.UUID
		var status int
		var driverName, driverPhone *string

		err = res.Scan(
			&id,
			&status,
			&view.AdminApproved,
			&view.Amount,
			&customerID,
			&view.CustomerName,
			&view.CustomerPhone,
			&view.CustomerAddress,
			&view.DestinationLat,
			&view.DestinationLng,
			&view.DestinationAddress,
			&driverID,
			&driverName,
			&driverPhone,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		view.CustomerID = custID

		if driverID != nil {
			drvID, idErr := kernel.UUIDFromBytes((*driverID)[:])
			if idErr != nil {
				return nil, idErr
			}
			view.DriverID = &drvID
		}
		if driverName != nil {
			view.DriverName = *driverName
		}
		if driverPhone != nil {
			view.DriverPhone = *driverPhone
		}

		view.Status = order.Status(status).String()
		views = append(views, view)
	}

	if err = res.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// attachItems loads the line items of every view in a single query and
// distributes them to their owning views in place.
func attachItems(ctx context.Context, db *gorm.DB, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]string, 0, len(views))
	index := make(map[string]int, len(views))
	for i, view := range views {
		ids = append(ids, view.ID.String())
		index[view.ID.String()] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			unit_weight,
			unit_price
		FROM order_items
		WHERE CAST(order_id AS TEXT) = ANY(?)
		ORDER BY order_id, idx
	`, pq.Array(ids)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item OrderItemView

		err = rows.Scan(
			&orderID,
			&item.ProductID,
			&item.Name,
			&item.UnitWeight,
			&item.UnitPrice,
		)
		if err != nil {
			return err
		}

		if i, ok := index[orderID.String()]; ok {
			views[i].Items = append(views[i].Items, item)
		}
	}

	return rows.Err()
}
