// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and status history live in child tables keyed by order id; the
// customer and driver snapshots are denormalized into the order row itself so
// that read models never join against live profile data.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status        int       `gorm:"index"`
	AdminApproved bool
	Amount        int64

	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string

	DestLat     float64
	DestLng     float64
	DestAddress string

	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	DriverName  *string
	DriverPhone *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Items   []ItemDTO         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []StatusChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line item row. The idx column preserves the original
// item order within the aggregate.
type ItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Idx        int       `gorm:"primaryKey"`
	ProductID  string
	Name       string
	UnitWeight int
	UnitPrice  int64
}

// TableName specifies the database table name for line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO represents one append-only status history row. The seq
// column is the entry's position in the aggregate history; the composite key
// makes history appends idempotent.
type StatusChangeDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey"`
	Status     int
	OccurredAt time.Time
	ActorID    uuid.UUID `gorm:"type:uuid"`
	ActorRole  string
}

// TableName specifies the database table name for status history.
func (StatusChangeDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	var driverName, driverPhone *string
	if contact := aggregate.Driver(); contact != nil {
		rawID := contact.ID().Bytes()
		name := contact.Name()
		phone := contact.Phone()
		driverID = &rawID
		driverName = &name
		driverPhone = &phone
	}

	items := make([]ItemDTO, 0, len(aggregate.LineItems()))
	for i, item := range aggregate.LineItems() {
		items = append(items, ItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			Idx:        i,
			ProductID:  item.ProductID(),
			Name:       item.Name(),
			UnitWeight: item.UnitWeight(),
			UnitPrice:  item.UnitPrice(),
		})
	}

	history := make([]StatusChangeDTO, 0, len(aggregate.History()))
	for i, change := range aggregate.History() {
		history = append(history, StatusChangeDTO{
			OrderID:    aggregate.ID().Bytes(),
			Seq:        i,
			Status:     int(change.Status()),
			OccurredAt: change.At(),
			ActorID:    change.ActorID().Bytes(),
			ActorRole:  change.ActorRole().String(),
		})
	}

	customer := aggregate.Customer()
	destination := aggregate.Destination()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Status:          int(aggregate.Status()),
		AdminApproved:   aggregate.AdminApproved(),
		Amount:          aggregate.Amount(),
		CustomerID:      customer.ID().Bytes(),
		CustomerName:    customer.Name(),
		CustomerPhone:   customer.Phone(),
		CustomerAddress: customer.Address(),
		DestLat:         destination.Latitude(),
		DestLng:         destination.Longitude(),
		DestAddress:     destination.Address(),
		DriverID:        driverID,
		DriverName:      driverName,
		DriverPhone:     driverPhone,
		CreatedAt:       aggregate.CreatedAt(),
		Items:           items,
		History:         history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items, driver snapshot
// and status history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(customerID, dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewGeoPoint(dto.DestLat, dto.DestLng, dto.DestAddress)
	if err != nil {
		return nil, err
	}

	var contact *order.DriverContact
	if dto.DriverID != nil {
		driverID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		var name, phone string
		if dto.DriverName != nil {
			name = *dto.DriverName
		}
		if dto.DriverPhone != nil {
			phone = *dto.DriverPhone
		}

		c, contactErr := order.NewDriverContact(driverID, name, phone)
		if contactErr != nil {
			return nil, contactErr
		}
		contact = &c
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(
			itemDTO.ProductID, itemDTO.Name, itemDTO.UnitWeight, itemDTO.UnitPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		actorID, actorErr := kernel.UUIDFromBytes(changeDTO.ActorID[:])
		if actorErr != nil {
			return nil, actorErr
		}

		role, roleErr := kernel.RoleFromString(changeDTO.ActorRole)
		if roleErr != nil {
			return nil, roleErr
		}

		history = append(history, order.RestoreStatusChange(
			order.Status(changeDTO.Status), changeDTO.OccurredAt, actorID, role,
		))
	}

	return order.RestoreOrder(
		id,
		customer,
		items,
		dto.Amount,
		order.Status(dto.Status),
		contact,
		destination,
		dto.AdminApproved,
		dto.CreatedAt,
		history,
	)
}
