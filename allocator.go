package sharedptr

import (
	"github.com/QuangTung97/sharedptr/refcount"
)

//go:generate moq -out allocator_mocks_test.go . Allocator

// Allocator creates the control block shared by the owners of one object.
// A failed allocation makes the constructor delete the object and return ErrAllocationFailed.
type Allocator interface {
	NewControlBlock(d refcount.Destroyer) (*refcount.ControlBlock, error)
}

type heapAllocator struct {
}

func (heapAllocator) NewControlBlock(d refcount.Destroyer) (*refcount.ControlBlock, error) {
	return refcount.New(d), nil
}

// DefaultAllocator allocates control blocks on the Go heap and never fails
var DefaultAllocator Allocator = heapAllocator{}
