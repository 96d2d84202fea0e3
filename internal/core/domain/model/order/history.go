package order

import (
	"time"

	"gasline/internal/core/domain/model/kernel"
)

// StatusChange is one append-only audit entry recording a lifecycle
// transition: the status entered, when, and by whom. Entries are never
// mutated or removed.
type StatusChange struct {
	status  Status
	at      time.Time
	actorID kernel.UUID
	role    kernel.Role
}

// NewStatusChange creates an audit entry for a transition performed by actor.
func NewStatusChange(status Status, at time.Time, actor kernel.Actor) (StatusChange, error) {
	if err := status.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := actor.Validate(); err != nil {
		return StatusChange{}, err
	}

	return StatusChange{
		status:  status,
		at:      at.UTC(),
		actorID: actor.ID(),
		role:    actor.Role(),
	}, nil
}

// RestoreStatusChange rehydrates an audit entry from persistence without
// revalidating the actor against the current roster.
func RestoreStatusChange(status Status, at time.Time, actorID kernel.UUID, role kernel.Role) StatusChange {
	return StatusChange{status: status, at: at.UTC(), actorID: actorID, role: role}
}

// Status returns the status entered by this transition.
func (sc StatusChange) Status() Status { return sc.status }

// At returns the transition timestamp in UTC.
func (sc StatusChange) At() time.Time { return sc.at }

// ActorID returns the identity of the actor who performed the transition.
func (sc StatusChange) ActorID() kernel.UUID { return sc.actorID }

// ActorRole returns the role the actor held at transition time.
func (sc StatusChange) ActorRole() kernel.Role { return sc.role }
