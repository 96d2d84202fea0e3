package order

import (
	"errors"
	"fmt"
	"time"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrIllegalTransition is returned when the requested status is not
	// reachable from the order's current status along a defined edge.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrActorNotAllowed is returned when the actor's role lacks permission
	// for the requested edge.
	ErrActorNotAllowed = errors.New("actor is not allowed to perform this transition")

	// ErrOrderNotAssignable is returned when a driver assignment is attempted
	// on an order that is not awaiting assignment or lacks admin approval.
	ErrOrderNotAssignable = errors.New("order is not assignable")

	// ErrLineItemsAreRequired is returned when creating an order without items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")
)

// Order is the aggregate root coordinating one delivery request across the
// customer, dispatch, and driver. All fields are private; mutation happens
// only through validated methods, so a rejected transition leaves the
// aggregate unchanged.
type Order struct {
	// id is the opaque unique identifier assigned at creation.
	id kernel.UUID

	// customer is the immutable purchaser snapshot.
	customer Customer

	// lineItems is the immutable purchased-item sequence.
	lineItems []LineItem

	// amount is the total price frozen at creation from the line items.
	amount int64

	// status is the current lifecycle state.
	status Status

	// driver is the assigned driver snapshot, nil while unassigned.
	driver *DriverContact

	// destination is the read-only delivery destination.
	destination kernel.GeoPoint

	// adminApproved gates driver assignment, independent of status.
	adminApproved bool

	// createdAt is the server-assigned creation timestamp.
	createdAt time.Time

	// history is the append-only transition audit trail.
	history []StatusChange

	isConstructed bool
}

// NewOrder creates a pending order from the checkout collaborator's input.
// The amount is computed once as the sum of the line-item unit prices and is
// never recomputed, protecting historical orders against catalog price drift.
// The initial Pending entry is recorded in the history on behalf of the
// customer.
func NewOrder(id kernel.UUID, customer Customer, lineItems []LineItem, destination kernel.GeoPoint) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}
	if len(lineItems) == 0 {
		return nil, ErrLineItemsAreRequired
	}

	var amount int64
	items := make([]LineItem, 0, len(lineItems))
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		amount += item.UnitPrice()
		items = append(items, item)
	}

	creator, err := kernel.NewActor(customer.ID(), kernel.RoleCustomer)
	if err != nil {
		return nil, err
	}

	createdAt := time.Now().UTC()
	created, err := NewStatusChange(Pending, createdAt, creator)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customer:      customer,
		lineItems:     items,
		amount:        amount,
		status:        Pending,
		destination:   destination,
		createdAt:     createdAt,
		history:       []StatusChange{created},
		isConstructed: true,
	}, nil
}

// RestoreOrder rehydrates an order from persistence.
// It revalidates the structural invariants, in particular the consistency
// between status and driver assignment.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	lineItems []LineItem,
	amount int64,
	status Status,
	driver *DriverContact,
	destination kernel.GeoPoint,
	adminApproved bool,
	createdAt time.Time,
	history []StatusChange,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customer.Validate(),
		destination.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if len(lineItems) == 0 {
		return nil, ErrLineItemsAreRequired
	}
	if driver != nil {
		if err := driver.Validate(); err != nil {
			return nil, err
		}
	}
	if err := status.ValidateCanHaveDriver(driver != nil); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidError("amount")
	}

	return &Order{
		id:            id,
		customer:      customer,
		lineItems:     append([]LineItem(nil), lineItems...),
		amount:        amount,
		status:        status,
		driver:        driver,
		destination:   destination,
		adminApproved: adminApproved,
		createdAt:     createdAt.UTC(),
		history:       append([]StatusChange(nil), history...),
		isConstructed: true,
	}, nil
}

// Validate ensures the order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the purchaser snapshot.
func (o *Order) Customer() Customer {
	return o.customer
}

// LineItems returns a copy of the purchased-item sequence.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// Amount returns the total price frozen at creation.
func (o *Order) Amount() int64 {
	return o.amount
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver snapshot, or nil while unassigned.
func (o *Order) Driver() *DriverContact {
	if o.driver == nil {
		return nil
	}
	d := *o.driver
	return &d
}

// Destination returns the delivery destination.
func (o *Order) Destination() kernel.GeoPoint {
	return o.destination
}

// AdminApproved reports whether dispatch has cleared the order for assignment.
func (o *Order) AdminApproved() bool {
	return o.adminApproved
}

// CreatedAt returns the server-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// History returns a copy of the append-only transition audit trail.
func (o *Order) History() []StatusChange {
	return append([]StatusChange(nil), o.history...)
}

// WasDelivered reports whether the order ever reached Delivered.
func (o *Order) WasDelivered() bool {
	for _, change := range o.history {
		if change.Status() == Delivered {
			return true
		}
	}
	return false
}

// IsAssignable reports whether a driver may be assigned right now: the order
// must carry admin approval and rest in Pending or Approved. Pending covers
// re-assignment after a driver rejection, which reverts the order without
// withdrawing the approval.
func (o *Order) IsAssignable() bool {
	return o.adminApproved && (o.status == Pending || o.status == Approved)
}

// Approve records dispatch approval: it sets the assignment gate and moves
// Pending to Approved in one step.
func (o *Order) Approve(actor kernel.Actor) error {
	if err := o.ApplyTransition(Approved, actor); err != nil {
		return err
	}
	o.adminApproved = true
	return nil
}

// AssignDriver attaches the driver snapshot chosen by the assignment
// coordinator and transitions the order to Assigned. The coordinator is
// responsible for the race-free commit; this method only enforces the
// domain gate.
func (o *Order) AssignDriver(contact DriverContact, actor kernel.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := contact.Validate(); err != nil {
		return err
	}
	if !o.IsAssignable() {
		return fmt.Errorf("%w: status is %s, admin approved is %t",
			ErrOrderNotAssignable, o.status, o.adminApproved)
	}

	previous := o.driver
	o.driver = &contact
	if err := o.ApplyTransition(Assigned, actor); err != nil {
		o.driver = previous
		return err
	}
	return nil
}

// ApplyTransition validates and applies one lifecycle transition on behalf of
// actor. On success it appends exactly one history entry and updates the
// status; a RejectedByDriver transition additionally clears the driver and
// reverts the resting status to Pending with a second history entry. On
// failure the aggregate is left unchanged.
func (o *Order) ApplyTransition(target Status, actor kernel.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s is not reachable from %s", ErrIllegalTransition, target, o.status)
	}
	if err := o.authorizeTransition(target, actor); err != nil {
		return err
	}
	if target == Assigned && o.driver == nil {
		return errs.NewValueIsRequiredError("assigned driver")
	}
	if target == Assigned && !o.adminApproved {
		return fmt.Errorf("%w: admin approval is missing", ErrOrderNotAssignable)
	}

	now := time.Now().UTC()
	change, err := NewStatusChange(target, now, actor)
	if err != nil {
		return err
	}

	if target == RejectedByDriver {
		revert, revertErr := NewStatusChange(Pending, now, actor)
		if revertErr != nil {
			return revertErr
		}
		o.history = append(o.history, change, revert)
		o.status = Pending
		o.driver = nil
		return nil
	}

	o.history = append(o.history, change)
	o.status = target
	return nil
}

// authorizeTransition enforces the role permission per lifecycle edge.
func (o *Order) authorizeTransition(target Status, actor kernel.Actor) error {
	allowed := false
	switch target {
	case Approved, Assigned, Returned:
		allowed = actor.IsDispatcher()
	case PickedUp, OutForDelivery, Delivered:
		allowed = o.isAssignedDriver(actor)
	case RejectedByDriver, Cancelled:
		allowed = actor.IsDispatcher() || o.isAssignedDriver(actor)
	}

	if !allowed {
		return fmt.Errorf("%w: role %s may not move order %s to %s",
			ErrActorNotAllowed, actor.Role(), o.id, target)
	}
	return nil
}

func (o *Order) isAssignedDriver(actor kernel.Actor) bool {
	return actor.IsDriver() && o.driver != nil && o.driver.ID().IsEqual(actor.ID())
}
