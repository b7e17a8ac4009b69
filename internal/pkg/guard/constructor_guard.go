// Package guard provides the constructor guard pattern used by domain
// objects and commands to detect zero-value instances that bypassed their
// designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated with a nil error, so validation always fails with a meaningful
// message even when no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its
// constructor. Embedding a ConstructorGuard in a struct and setting it with
// NewConstructorGuard inside the constructor lets Validate distinguish
// properly built instances from zero values, which keeps domain invariants
// from being bypassed by direct struct initialization.
//
// Example:
//
//	type Allocation struct {
//	    container string
//	    qty       float64
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewAllocation(container string, qty float64) (Allocation, error) {
//	    if qty <= 0 {
//	        return Allocation{}, errors.New("qty must be positive")
//	    }
//	    return Allocation{container: container, qty: qty, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (a Allocation) Validate() error {
//	    return a.guard.Validate(ErrAllocationIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built through its
// constructor, the given validationError when it was not, and
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
