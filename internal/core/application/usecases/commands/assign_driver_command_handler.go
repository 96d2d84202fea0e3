package commands

import (
	"context"
	"errors"
	"fmt"

	"gasline/internal/core/domain/model/order"
	"gasline/internal/core/ports"
	"gasline/internal/pkg/errs"
)

var (
	// ErrDriverNotFound is returned when the requested driver is absent from
	// the roster (unknown id or a user without the driver role).
	ErrDriverNotFound = errors.New("driver not found")

	// ErrAssignmentConflict is returned when a concurrent dispatcher won the
	// assignment race. The losing call had no observable effect; re-read and
	// retry against fresh state or abort.
	ErrAssignmentConflict = errors.New("assignment lost to a concurrent dispatcher")
)

// AssignDriverCommandHandler is the assignment coordinator: it resolves a
// dispatcher's "assign driver D to order O" intent into a race-free commit.
// The write is conditioned on the order status observed at read time, so of
// two concurrent assignments exactly one wins; the loser sees
// ErrAssignmentConflict and the store keeps the winner's driver. Driver
// availability is updated in the same transaction to prevent double-booking.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	publisher  EventPublisher
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory UoWFactory, publisher EventPublisher) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle performs the assignment and returns the updated order.
// Failure modes: order.ErrOrderNotAssignable when the order is not awaiting
// assignment or unapproved, ErrDriverNotFound for an unknown driver,
// driver.ErrDriverIsBusy for a double-booking attempt, and
// ErrAssignmentConflict when a concurrent dispatcher committed first.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	readStatus := target.Status()

	chosen, err := driverRepo.Get(ctx, cmd.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrDriverNotFound, cmd.DriverID())
	}
	if err != nil {
		return nil, err
	}

	if err = chosen.Reserve(); err != nil {
		return nil, err
	}

	contact, err := order.NewDriverContact(chosen.ID(), chosen.Name(), chosen.Phone())
	if err != nil {
		return nil, err
	}

	if err = target.AssignDriver(contact, cmd.Actor()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target, readStatus); err != nil {
		if errors.Is(err, ports.ErrConcurrencyConflict) {
			return nil, fmt.Errorf("%w: order %s", ErrAssignmentConflict, cmd.OrderID())
		}
		return nil, err
	}

	if err = driverRepo.Update(ctx, chosen); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishTracked(uow, h.publisher)
	return target, nil
}
