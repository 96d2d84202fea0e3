package commands

import (
	"errors"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/pkg/guard"
)

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
)

// AssignDriverCommand represents a dispatcher's intent to assign a specific
// driver to a specific order.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
func NewAssignDriverCommand(orderID, driverID kernel.UUID, actor kernel.Actor) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setActor(actor),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the chosen driver.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Actor returns the dispatching caller.
func (c AssignDriverCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
