package kernel

import (
	"fmt"
	"strings"

	"gasline/internal/pkg/errs"
)

// Role is the closed set of caller roles recognized by the engine.
// The identity provider supplies the role claim; the engine trusts it for
// authorization of lifecycle transitions.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders and observes only its own.
	RoleCustomer

	// RoleDispatcher approves orders, assigns drivers, and may cancel or
	// return any non-terminal order.
	RoleDispatcher

	// RoleDriver advances assigned orders through pickup and delivery and
	// may reject an assignment.
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer:   "customer",
		RoleDispatcher: "dispatcher",
		RoleDriver:     "driver",
	}
}

// RoleFromString parses a role claim, normalizing case at the boundary.
// Returns an error for unrecognized values.
func RoleFromString(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for role, str := range getRoleStrings() {
		if str == normalized {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a recognized role", s))
}

// String returns the lowercase wire form of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate returns an error for roles outside the closed set.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ErrActorIsNotConstructed indicates a zero-value Actor that bypassed NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"Actor must be created via NewActor")

// Actor identifies the authenticated caller of a mutating operation.
// It pairs the caller's identity with its role claim and is recorded in the
// order's status history on every transition.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates a validated Actor from an identity and a role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role claim.
func (a Actor) Role() Role {
	return a.role
}

// IsDispatcher reports whether the actor holds the dispatch/admin role.
func (a Actor) IsDispatcher() bool {
	return a.role == RoleDispatcher
}

// IsDriver reports whether the actor holds the driver role.
func (a Actor) IsDriver() bool {
	return a.role == RoleDriver
}

// Validate returns ErrActorIsNotConstructed for the zero value.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return ErrActorIsNotConstructed
	}
	return a.role.Validate()
}
