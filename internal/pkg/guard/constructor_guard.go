// Package guard provides the constructor guard pattern for value objects and
// entities. A ConstructorGuard embedded in a struct lets Validate detect
// instances that bypassed the constructor (zero values, direct struct
// literals) and reject them with a caller-supplied error.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is invalid; only NewConstructorGuard produces a valid guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call this from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructed, or ErrDefaultConstructorGuard when
// notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}
