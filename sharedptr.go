// Package sharedptr provides reference-counted shared-ownership handles.
//
// A Shared handle co-owns an object together with every other handle cloned
// from it. The object's deleter runs exactly once, when the last owner calls
// Destroy, no matter which goroutine that happens on.
package sharedptr

import (
	"errors"
)

// ErrAllocationFailed is returned when a control block can not be allocated.
// The object passed to the failed constructor has already been deleted.
var ErrAllocationFailed = errors.New("sharedptr: control block allocation failed")

// ErrBadWeakPtr is returned by SharedFromThis when the object is not owned by any Shared handle
var ErrBadWeakPtr = errors.New("sharedptr: object is not owned by a shared handle")

var errNilControlBlock = errors.New("allocator returned nil control block")
