package commands

import (
	"errors"
	"time"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/pkg/errs"
	"gasline/internal/pkg/guard"
)

var (
	ErrReleaseStaleAssignmentsCommandIsNotConstructed = errors.New(
		"ReleaseStaleAssignmentsCommand must be created via NewReleaseStaleAssignmentsCommand constructor",
	)
)

// ReleaseStaleAssignmentsCommand requests that assignments a driver never
// acted on be reverted to pending so dispatch can re-assign them. An
// assignment is stale when it has rested in assigned longer than maxAge.
type ReleaseStaleAssignmentsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

// NewReleaseStaleAssignmentsCommand creates the command.
// The actor must hold the dispatcher role; the sweep acts administratively.
func NewReleaseStaleAssignmentsCommand(
	maxAge time.Duration,
	actor kernel.Actor,
) (ReleaseStaleAssignmentsCommand, error) {
	cmd := ReleaseStaleAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMaxAge(maxAge),
		cmd.setActor(actor),
	); err != nil {
		return ReleaseStaleAssignmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseStaleAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStaleAssignmentsCommandIsNotConstructed)
}

// MaxAge returns the age threshold for a stale assignment.
func (c ReleaseStaleAssignmentsCommand) MaxAge() time.Duration {
	return c.maxAge
}

// Actor returns the administrative caller performing the sweep.
func (c ReleaseStaleAssignmentsCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ReleaseStaleAssignmentsCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsRequiredError("maxAge")
	}
	c.maxAge = maxAge
	return nil
}

func (c *ReleaseStaleAssignmentsCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsDispatcher() {
		return errs.NewValueIsInvalidError("actor must hold the dispatcher role")
	}
	c.actor = actor
	return nil
}
