// Package guard provides ConstructorGuard, a small marker embedded in value objects,
// entities, queries and commands so that zero values created by struct literals can be
// told apart from values built by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing object was created by its constructor.
//
// Example:
//
//	var ErrLegIsNotConstructed = errors.New("Leg must be created via NewLeg")
//
//	type Leg struct {
//	    pickup Segment
//	    drop   Segment
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewLeg(pickup, drop Segment) Leg {
//	    return Leg{pickup: pickup, drop: drop, guard: guard.NewConstructorGuard()}
//	}
//
//	func (l Leg) Validate() error {
//	    return l.guard.Validate(ErrLegIsNotConstructed)
//	}
//
// The guard is immutable and safe to copy and share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
