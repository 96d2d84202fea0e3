package commands_test

import (
	"testing"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer(kernel.NewUUID(), "Amina Yusuf", "+2348012345678", "12 Marina Rd, Lagos")
	require.NoError(t, err)
	return customer
}

func testItems(t *testing.T) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem("cyl-12kg", "12kg Cylinder Refill", 12000, 850000)
	require.NoError(t, err)
	return []order.LineItem{item}
}

func testDestination(t *testing.T) kernel.GeoPoint {
	t.Helper()
	destination, err := kernel.NewGeoPoint(6.4550, 3.3841, "12 Marina Rd, Lagos")
	require.NoError(t, err)
	return destination
}

func dispatcherActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDispatcher)
	require.NoError(t, err)
	return actor
}

func driverActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleDriver)
	require.NoError(t, err)
	return actor
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), testCustomer(t), testItems(t), testDestination(t))
	require.NoError(t, err)
	return o
}

func approvedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	require.NoError(t, o.Approve(dispatcherActor(t)))
	return o
}

func assignedOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()
	o := approvedOrder(t)
	contact, err := order.NewDriverContact(driverID, "Musa Bello", "+2348098765432")
	require.NoError(t, err)
	require.NoError(t, o.AssignDriver(contact, dispatcherActor(t)))
	return o
}
