package commands

import (
	"context"
	"errors"
	"time"

	"gasline/internal/core/domain/model/order"
	"gasline/internal/core/ports"
	"gasline/internal/pkg/errs"
)

// ReleaseStaleAssignmentsCommandHandler sweeps assigned orders whose driver
// never started the delivery and reverts them to pending, freeing both the
// order and the driver. This is the recovery path for the "driver never
// accepts" partial failure: without it an approved order could sit on an
// unresponsive driver forever.
//
// Each revert uses the conditional write keyed on the assigned status; an
// order that progressed concurrently simply loses its precondition and is
// skipped.
type ReleaseStaleAssignmentsCommandHandler struct {
	uowFactory UoWFactory
	publisher  EventPublisher
}

// NewReleaseStaleAssignmentsCommandHandler creates a handler for the sweep.
func NewReleaseStaleAssignmentsCommandHandler(
	uowFactory UoWFactory,
	publisher EventPublisher,
) ReleaseStaleAssignmentsCommandHandler {
	return ReleaseStaleAssignmentsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle reverts every stale assignment and returns how many were released.
func (h ReleaseStaleAssignmentsCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseStaleAssignmentsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assigned, err := orderRepo.GetAllInStatus(ctx, order.Assigned)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	released := 0

	for _, stale := range assigned {
		if !assignedBefore(stale, cutoff) {
			continue
		}

		previousDriver := stale.Driver()
		if err = stale.ApplyTransition(order.RejectedByDriver, cmd.Actor()); err != nil {
			return released, err
		}

		if err = orderRepo.Update(ctx, stale, order.Assigned); err != nil {
			if errors.Is(err, ports.ErrConcurrencyConflict) {
				// The order moved on while we swept; nothing to release.
				continue
			}
			return released, err
		}

		if previousDriver != nil {
			if err = h.releaseDriver(ctx, uow, previousDriver); err != nil {
				return released, err
			}
		}
		released++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	publishTracked(uow, h.publisher)
	return released, nil
}

// assignedBefore reports whether the order entered its current assignment
// before the cutoff, judged by the latest history entry.
func assignedBefore(o *order.Order, cutoff time.Time) bool {
	history := o.History()
	if len(history) == 0 {
		return false
	}
	return history[len(history)-1].At().Before(cutoff)
}

func (h ReleaseStaleAssignmentsCommandHandler) releaseDriver(
	ctx context.Context,
	uow UoW,
	contact *order.DriverContact,
) error {
	driverRepo := uow.DriverRepository()

	assigned, err := driverRepo.Get(ctx, contact.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		// Missing roster entries are skipped, not fatal
		return nil
	}
	if err != nil {
		return err
	}

	assigned.Release()
	return driverRepo.Update(ctx, assigned)
}
