package commands

import (
	"context"

	"gasline/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order creation on behalf of the checkout
// flow. New orders start pending and unapproved; the change feed announces
// them to every dispatch subscriber.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle persists the new order and returns it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.LineItems(), cmd.Destination())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishTracked(uow, h.publisher)
	return newOrder, nil
}
