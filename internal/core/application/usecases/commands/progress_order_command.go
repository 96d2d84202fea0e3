package commands

import (
	"errors"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"
	"gasline/internal/pkg/guard"
)

var (
	ErrProgressOrderCommandIsNotConstructed = errors.New(
		"ProgressOrderCommand must be created via NewProgressOrderCommand constructor",
	)
)

// ProgressOrderCommand represents an actor requesting one lifecycle
// transition on an order: a driver advancing pickup and delivery, a driver
// rejecting an assignment, or dispatch cancelling or returning the order.
// Role authorization happens in the domain state machine.
type ProgressOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewProgressOrderCommand creates a command requesting a transition to target.
func NewProgressOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor kernel.Actor,
) (ProgressOrderCommand, error) {
	cmd := ProgressOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return ProgressOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProgressOrderCommand) Validate() error {
	return c.guard.Validate(ErrProgressOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ProgressOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ProgressOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns the requesting caller.
func (c ProgressOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ProgressOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ProgressOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *ProgressOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
