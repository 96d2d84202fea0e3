package commands

import (
	"errors"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"
	"gasline/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents the checkout collaborator handing a new order
// to the store. The customer snapshot, line items, and destination arrive
// fully priced; the engine freezes the amount and starts the lifecycle at
// pending with admin approval unset.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customer    order.Customer
	lineItems   []order.LineItem
	destination kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the identifier, the customer snapshot, every line item, and the
// destination.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	lineItems []order.LineItem,
	destination kernel.GeoPoint,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setLineItems(lineItems),
		cmd.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the purchaser snapshot.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// LineItems returns the priced items of the order.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

// Destination returns the delivery destination.
func (c CreateOrderCommand) Destination() kernel.GeoPoint {
	return c.destination
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return order.ErrLineItemsAreRequired
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.lineItems = lineItems
	return nil
}

func (c *CreateOrderCommand) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}
