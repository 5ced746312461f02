// Package guard provides ConstructorGuard, a marker embedded in aggregates,
// entities and commands so that zero values built with a struct literal can be
// told apart from values produced by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and the caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
//
// Example:
//
//	var ErrPolicyNotConstructed = errors.New("StoragePolicy must be created via NewStoragePolicy")
//
//	type StoragePolicy struct {
//	    freeDays int
//	    guard    guard.ConstructorGuard
//	}
//
//	func (p *StoragePolicy) Validate() error {
//	    return p.guard.Validate(ErrPolicyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it only from
// constructor functions.
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
