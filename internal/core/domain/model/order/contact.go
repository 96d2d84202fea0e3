package order

import (
	"gasline/internal/pkg/errs"

	"gasline/internal/core/domain/model/kernel"
)

// Customer is the denormalized purchaser snapshot taken at order time.
// It is not a live reference: later changes to the customer's profile must
// not retroactively alter historical orders.
type Customer struct {
	id      kernel.UUID
	name    string
	phone   string
	address string

	isConstructed bool
}

// NewCustomer creates a validated customer snapshot.
func NewCustomer(id kernel.UUID, name, phone, address string) (Customer, error) {
	if err := id.Validate(); err != nil {
		return Customer{}, err
	}
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer phone")
	}
	if address == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer address")
	}

	return Customer{
		id:            id,
		name:          name,
		phone:         phone,
		address:       address,
		isConstructed: true,
	}, nil
}

// ID returns the purchaser's identity.
func (c Customer) ID() kernel.UUID { return c.id }

// Name returns the purchaser's name snapshot.
func (c Customer) Name() string { return c.name }

// Phone returns the purchaser's phone snapshot.
func (c Customer) Phone() string { return c.phone }

// Address returns the purchaser's address snapshot.
func (c Customer) Address() string { return c.address }

// Validate returns an error for zero-value snapshots that bypassed NewCustomer.
func (c Customer) Validate() error {
	if !c.isConstructed {
		return errs.NewValueIsRequiredError("Customer must be created via NewCustomer")
	}
	return nil
}

// DriverContact is the denormalized snapshot of the assigned driver, set by
// the assignment coordinator and cleared on rejection or reassignment.
type DriverContact struct {
	id    kernel.UUID
	name  string
	phone string

	isConstructed bool
}

// NewDriverContact creates a validated driver snapshot.
func NewDriverContact(id kernel.UUID, name, phone string) (DriverContact, error) {
	if err := id.Validate(); err != nil {
		return DriverContact{}, err
	}
	if name == "" {
		return DriverContact{}, errs.NewValueIsRequiredError("driver name")
	}
	if phone == "" {
		return DriverContact{}, errs.NewValueIsRequiredError("driver phone")
	}

	return DriverContact{
		id:            id,
		name:          name,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// ID returns the driver's identity.
func (d DriverContact) ID() kernel.UUID { return d.id }

// Name returns the driver's name snapshot.
func (d DriverContact) Name() string { return d.name }

// Phone returns the driver's phone snapshot.
func (d DriverContact) Phone() string { return d.phone }

// Validate returns an error for zero-value snapshots that bypassed NewDriverContact.
func (d DriverContact) Validate() error {
	if !d.isConstructed {
		return errs.NewValueIsRequiredError("DriverContact must be created via NewDriverContact")
	}
	return nil
}
