package feed

import (
	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"
)

// Predicate selects the subset of orders a subscription observes.
// Predicates must be pure functions of the order snapshot.
type Predicate func(*order.Order) bool

// AllOrders matches every order; the dispatch view subscribes with it.
func AllOrders() Predicate {
	return func(*order.Order) bool { return true }
}

// CustomerOrders matches orders placed by the given customer.
func CustomerOrders(customerID kernel.UUID) Predicate {
	return func(o *order.Order) bool {
		return o.Customer().ID().IsEqual(customerID)
	}
}

// DriverOrders matches orders assigned to the given driver plus the shared
// pool of pending orders offered to all drivers.
func DriverOrders(driverID kernel.UUID) Predicate {
	return func(o *order.Order) bool {
		if o.Status() == order.Pending {
			return true
		}
		d := o.Driver()
		return d != nil && d.ID().IsEqual(driverID)
	}
}

// OrdersWithStatus matches orders resting in the given status.
func OrdersWithStatus(status order.Status) Predicate {
	return func(o *order.Order) bool {
		return o.Status() == status
	}
}
