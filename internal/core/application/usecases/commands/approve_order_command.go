package commands

import (
	"errors"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/pkg/guard"
)

var (
	ErrApproveOrderCommandIsNotConstructed = errors.New(
		"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
	)
)

// ApproveOrderCommand represents dispatch clearing a pending order for driver
// assignment.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve an order.
func NewApproveOrderCommand(orderID kernel.UUID, actor kernel.Actor) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the order to approve.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the approving caller.
func (c ApproveOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
