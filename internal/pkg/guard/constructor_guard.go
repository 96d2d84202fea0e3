// Package guard provides the constructor-guard pattern used by domain objects,
// commands, and queries to reject zero-value instances that bypassed their
// designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor; the zero value fails Validate, so direct struct literals are
// detectable at the first use.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was properly constructed, otherwise the
// supplied validationError (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
