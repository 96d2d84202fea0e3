package commands

import (
	"context"

	"gasline/internal/core/domain/model/order"
)

// ApproveOrderCommandHandler moves a pending order to approved and sets the
// assignment gate. The write is conditioned on the order still being pending,
// so two admins approving simultaneously produce exactly one transition.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  EventPublisher
}

// NewApproveOrderCommandHandler creates a handler for order approval.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory, publisher EventPublisher) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle approves the order and returns the updated aggregate.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (*order.Order, error) {
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
	if err = target.Approve(cmd.Actor()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target, readStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishTracked(uow, h.publisher)
	return target, nil
}
