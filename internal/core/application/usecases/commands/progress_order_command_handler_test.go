package commands_test

import (
	"testing"

	"gasline/internal/core/application/usecases/commands"
	"gasline/internal/core/domain/model/driver"
	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"
	"gasline/internal/core/ports"
	"gasline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProgressOrderCommandHandler_Handle_DriverAdvancesDelivery(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	target := assignedOrder(t, driverID)
	cmd, err := commands.NewProgressOrderCommand(target.ID(), order.PickedUp, driverActor(t, driverID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", ctx, target, order.Assigned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("TrackedAggregates").
			Return([]ports.TrackedAggregate{{ID: target.ID(), Aggregate: target}}).Once(),
		publisher.On("Publish", target).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewProgressOrderCommandHandler(factory, publisher)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, updated.Status())
	// The driver stays booked while the delivery is in flight.
	uow.AssertNotCalled(t, "DriverRepository")
	mock.AssertExpectationsForObjects(t, orderRepo, uow, factory, publisher)
}

func TestProgressOrderCommandHandler_Handle_RejectionReleasesDriver(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	target := assignedOrder(t, driverID)
	assigned, err := driver.RestoreDriver(driverID, "Musa Bello", "+2348098765432", false)
	require.NoError(t, err)

	cmd, err := commands.NewProgressOrderCommand(target.ID(), order.RejectedByDriver, driverActor(t, driverID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", ctx, target, order.Assigned).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(assigned, nil).Once(),
		driverRepo.On("Update", ctx, assigned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("TrackedAggregates").Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewProgressOrderCommandHandler(factory, publisher)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, updated.Status())
	assert.Nil(t, updated.Driver())
	assert.True(t, updated.AdminApproved(), "approval survives the rejection")
	assert.True(t, assigned.IsAvailable(), "rejected driver is free again")
	mock.AssertExpectationsForObjects(t, orderRepo, driverRepo, uow, factory)
}

func TestProgressOrderCommandHandler_Handle_DeliveryReleasesDriver(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	target := assignedOrder(t, driverID)
	actor := driverActor(t, driverID)
	require.NoError(t, target.ApplyTransition(order.PickedUp, actor))
	require.NoError(t, target.ApplyTransition(order.OutForDelivery, actor))

	assigned, err := driver.RestoreDriver(driverID, "Musa Bello", "+2348098765432", false)
	require.NoError(t, err)

	cmd, err := commands.NewProgressOrderCommand(target.ID(), order.Delivered, actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", ctx, target, order.OutForDelivery).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(assigned, nil).Once(),
		driverRepo.On("Update", ctx, assigned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("TrackedAggregates").Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewProgressOrderCommandHandler(factory, publisher)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, updated.Status())
	assert.True(t, updated.WasDelivered())
	assert.True(t, assigned.IsAvailable())
	mock.AssertExpectationsForObjects(t, orderRepo, driverRepo, uow, factory)
}

func TestProgressOrderCommandHandler_Handle_DepartedDriverIsSkipped(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	target := assignedOrder(t, driverID)
	cmd, err := commands.NewProgressOrderCommand(target.ID(), order.RejectedByDriver, dispatcherActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", ctx, target, order.Assigned).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		// The roster entry was deactivated mid-delivery; the transition
		// still goes through.
		driverRepo.On("Get", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("driver", driverID)).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("TrackedAggregates").Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewProgressOrderCommandHandler(factory, publisher)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, updated.Status())
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mock.AssertExpectationsForObjects(t, orderRepo, driverRepo, uow, factory)
}

func TestProgressOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	target := assignedOrder(t, driverID)
	cmd, err := commands.NewProgressOrderCommand(target.ID(), order.Delivered, driverActor(t, driverID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewProgressOrderCommandHandler(factory, publisher)
	updated, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrIllegalTransition)
	assert.Nil(t, updated)
	assert.Equal(t, order.Assigned, target.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	mock.AssertExpectationsForObjects(t, orderRepo, uow, factory)
}

func TestProgressOrderCommandHandler_Handle_ConcurrentTransitionLoses(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	target := assignedOrder(t, driverID)
	cmd, err := commands.NewProgressOrderCommand(target.ID(), order.PickedUp, driverActor(t, driverID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", ctx, target, order.Assigned).Return(ports.ErrConcurrencyConflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewProgressOrderCommandHandler(factory, publisher)
	updated, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrConcurrencyConflict)
	assert.Nil(t, updated)
	uow.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
	mock.AssertExpectationsForObjects(t, orderRepo, uow, factory)
}
