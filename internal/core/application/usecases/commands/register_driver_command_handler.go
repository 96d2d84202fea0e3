package commands

import (
	"context"

	"gasline/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler enrolls drivers into the roster.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver enrollment.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the new driver. A freshly enrolled driver is available for
// assignment immediately.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newDriver, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Phone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
