package commands

import (
	"context"
	"errors"

	"gasline/internal/core/domain/model/order"
	"gasline/internal/pkg/errs"
)

// ProgressOrderCommandHandler applies one lifecycle transition through the
// domain state machine and persists it with a conditional write keyed on the
// status observed at read time. A retry of an already-applied transition
// therefore fails its edge validation or its precondition instead of
// double-appending history, making retries after a timeout safe.
//
// When the transition ends the driver's involvement (rejection or a terminal
// state) the driver's availability is restored in the same transaction.
type ProgressOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  EventPublisher
}

// NewProgressOrderCommandHandler creates a handler for lifecycle transitions.
func NewProgressOrderCommandHandler(uowFactory UoWFactory, publisher EventPublisher) ProgressOrderCommandHandler {
	return ProgressOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle applies the transition and returns the updated order.
// Fails with order.ErrIllegalTransition for an undefined edge,
// order.ErrActorNotAllowed for a role violation, and
// ports.ErrConcurrencyConflict when the order changed under the caller.
func (h ProgressOrderCommandHandler) Handle(ctx context.Context, cmd ProgressOrderCommand) (*order.Order, error) {
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
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	readStatus := target.Status()
	previousDriver := target.Driver()

	if err = target.ApplyTransition(cmd.Target(), cmd.Actor()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target, readStatus); err != nil {
		return nil, err
	}

	if previousDriver != nil && driverIsDone(cmd.Target()) {
		if err = h.releaseDriver(ctx, uow, previousDriver); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishTracked(uow, h.publisher)
	return target, nil
}

// driverIsDone reports whether the transition ends the assigned driver's
// involvement with the order.
func driverIsDone(target order.Status) bool {
	return target == order.RejectedByDriver || target.IsTerminal()
}

// releaseDriver restores the availability of the previously assigned driver.
// A driver no longer on the roster is skipped: the order transition must not
// fail because a user record was deactivated mid-delivery.
func (h ProgressOrderCommandHandler) releaseDriver(
	ctx context.Context,
	uow UoW,
	contact *order.DriverContact,
) error {
	driverRepo := uow.DriverRepository()

	assigned, err := driverRepo.Get(ctx, contact.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	assigned.Release()
	return driverRepo.Update(ctx, assigned)
}
