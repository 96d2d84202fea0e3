// Package driver implements the Driver aggregate: one roster entry read by the
// assignment coordinator. Drivers live in the shared user table and are
// filtered by role at the repository boundary; availability is modeled as a
// first-class attribute so that two dispatchers cannot double-book one driver.
package driver

import (
	"errors"
	"fmt"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

	// ErrDriverIsBusy is returned when reserving a driver who already carries
	// an active assignment.
	ErrDriverIsBusy = errors.New("driver already has an active assignment")

	// ErrNameIsRequired is returned when creating a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPhoneIsRequired is returned when creating a driver without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// Driver is the aggregate for one delivery driver.
type Driver struct {
	// id matches the identity-provider user id.
	id kernel.UUID

	// name and phone are copied onto orders at assignment time.
	name  string
	phone string

	// available is false while the driver carries an active assignment.
	available bool

	isConstructed bool
}

// NewDriver creates an available driver roster entry.
func NewDriver(id kernel.UUID, name, phone string) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if phone == "" {
		return nil, ErrPhoneIsRequired
	}

	return &Driver{
		id:            id,
		name:          name,
		phone:         phone,
		available:     true,
		isConstructed: true,
	}, nil
}

// RestoreDriver rehydrates a driver from persistence.
func RestoreDriver(id kernel.UUID, name, phone string, available bool) (*Driver, error) {
	d, err := NewDriver(id, name, phone)
	if err != nil {
		return nil, err
	}
	d.available = available
	return d, nil
}

// Validate ensures the driver was constructed through NewDriver or RestoreDriver.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's identity.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's phone.
func (d *Driver) Phone() string {
	return d.phone
}

// IsAvailable reports whether the driver can accept a new assignment.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// Reserve marks the driver busy for the duration of an assignment.
// Returns ErrDriverIsBusy if the driver already carries one.
func (d *Driver) Reserve() error {
	if !d.available {
		return fmt.Errorf("%w: %s", ErrDriverIsBusy, d.id)
	}
	d.available = false
	return nil
}

// Release frees the driver after a rejection or a terminal transition.
// Releasing an already free driver is a no-op.
func (d *Driver) Release() {
	d.available = true
}
