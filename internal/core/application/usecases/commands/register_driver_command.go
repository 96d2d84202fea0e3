package commands

import (
	"errors"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/pkg/errs"
	"gasline/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
)

// RegisterDriverCommand enrolls an identity-provider user into the driver
// roster so dispatch can assign orders to them.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	phone    string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to enroll a driver.
func NewRegisterDriverCommand(driverID kernel.UUID, name, phone string) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the identity-provider user id of the driver.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's phone.
func (c RegisterDriverCommand) Phone() string {
	return c.phone
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
