package sharedptr

import (
	"github.com/QuangTung97/sharedptr/refcount"
	"go.uber.org/atomic"
)

type sharedState[T any] struct {
	ptr  *T
	ctrl *refcount.ControlBlock
}

// AtomicShared is a slot holding one owner of an object, safe for concurrent Load, Store and Swap.
// The zero value is an empty slot.
type AtomicShared[T any] struct {
	state atomic.Pointer[sharedState[T]]
}

func newSharedState[T any](s *Shared[T]) *sharedState[T] {
	moved := s.Move()
	if moved.ctrl == nil {
		return nil
	}
	return &sharedState[T]{
		ptr:  moved.ptr,
		ctrl: moved.ctrl,
	}
}

// Load returns a new owner of the current object, or an empty handle
func (a *AtomicShared[T]) Load() Shared[T] {
	for {
		st := a.state.Load()
		if st == nil {
			return Shared[T]{}
		}

		ok := st.ctrl.TryAcquireStrong()
		if !ok {
			continue
		}
		return Shared[T]{
			ptr:  st.ptr,
			ctrl: st.ctrl,
		}
	}
}

// Store takes over the ownership of s, s becomes empty
func (a *AtomicShared[T]) Store(s *Shared[T]) {
	old := a.Swap(s)
	old.Destroy()
}

// Swap takes over the ownership of s and returns the previous owner held by the slot
func (a *AtomicShared[T]) Swap(s *Shared[T]) Shared[T] {
	old := a.state.Swap(newSharedState(s))
	if old == nil {
		return Shared[T]{}
	}
	return Shared[T]{
		ptr:  old.ptr,
		ctrl: old.ctrl,
	}
}

// Destroy empties the slot
func (a *AtomicShared[T]) Destroy() {
	var empty Shared[T]
	a.Store(&empty)
}
