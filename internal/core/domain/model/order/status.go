package order

import (
	"fmt"
	"strings"

	"gasline/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a closed state machine with defined transitions:
//
//	Pending ──> Approved ──> Assigned ──> PickedUp ──> OutForDelivery ──> Delivered
//	               ▲            │
//	               │            └──> RejectedByDriver ──> Pending
//	               │
//	 any non-terminal state ──> Cancelled / Returned (administrative action)
//
// Delivered, Returned, and Cancelled are terminal. RejectedByDriver is a
// transit state recorded in the history; the resting status after a rejection
// is Pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned by the checkout flow.
	// Pending orders are visible to dispatch and, once approved, assignable.
	Pending

	// Approved indicates dispatch has cleared the order for assignment.
	Approved

	// Assigned indicates a driver has been assigned by dispatch.
	Assigned

	// PickedUp indicates the assigned driver collected the cylinders.
	PickedUp

	// OutForDelivery indicates the assigned driver is en route.
	OutForDelivery

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// RejectedByDriver records that the assigned driver declined the order.
	// The order immediately reverts to Pending; this value appears only in
	// the status history.
	RejectedByDriver

	// Returned indicates the order came back undelivered. Terminal.
	Returned

	// Cancelled indicates administrative cancellation. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Pending:          "pending",
		Approved:         "approved",
		Assigned:         "assigned",
		PickedUp:         "picked_up",
		OutForDelivery:   "out_for_delivery",
		Delivered:        "delivered",
		RejectedByDriver: "rejected_by_driver",
		Returned:         "returned",
		Cancelled:        "cancelled",
	}
}

// statusEdges defines the legal transitions of the lifecycle state machine.
// Cancelled and Returned are reachable from every non-terminal state.
// Assigned is reachable directly from Pending as well as from Approved: after
// a driver rejection the order reverts to Pending while keeping its admin
// approval, and re-assignment must not require a second approval pass. The
// adminApproved gate on the aggregate enforces approval for both paths.
func statusEdges() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Approved, Assigned, Cancelled, Returned},
		Approved:       {Assigned, Cancelled, Returned},
		Assigned:       {PickedUp, RejectedByDriver, Cancelled, Returned},
		PickedUp:       {OutForDelivery, Cancelled, Returned},
		OutForDelivery: {Delivered, Cancelled, Returned},
	}
}

// StatusFromString parses a wire-form status, normalizing case at the store
// boundary so that legacy mixed-case values ("Pending") resolve to the
// canonical enumeration.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", s))
}

// String returns the lowercase wire form of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate returns an error for values outside the closed enumeration.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned || s == Cancelled
}

// CanTransitionTo reports whether an edge from s to target exists.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusEdges()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ValidateCanHaveDriver checks consistency between status and driver
// assignment. A driver is mandatory while the order is in flight, forbidden
// before assignment, and optionally retained on terminal states for history.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	inFlight := s == Assigned || s == PickedUp || s == OutForDelivery
	if inFlight && !hasDriver {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s requires an assigned driver", s))
	}
	if hasDriver && !inFlight && !s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s does not permit an assigned driver", s))
	}
	return nil
}
