package sharedptr

import (
	"fmt"
	"github.com/QuangTung97/sharedptr/refcount"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// EnableSharedFromThis lets an object get a new owning handle to itself.
// Embed it in the object struct:
//
//	type Session struct {
//		sharedptr.EnableSharedFromThis[Session]
//	}
//
// It is bound when the object is first wrapped by New, NewWithDeleter or FromUnique.
// Clone, Alias and assignment never bind it.
//
// The type parameter must be the embedding type itself. A Derived struct embedding
// a Base that embeds EnableSharedFromThis[Base] is not bound when wrapped as Shared[Derived],
// only when the Base is wrapped as Shared[Base].
//
// SharedFromThis and WeakFromThis are safe to call concurrently with the release of the last owner.
type EnableSharedFromThis[T any] struct {
	weakThis atomic.Pointer[Weak[T]]
}

type sharedFromThisBinder[T any] interface {
	bindWeakThis(s *Shared[T]) bool
	unbindWeakThis(ctrl *refcount.ControlBlock)
}

// SharedFromThis returns ErrBadWeakPtr when the object has no live owner
func (e *EnableSharedFromThis[T]) SharedFromThis() (Shared[T], error) {
	w := e.weakThis.Load()
	if w == nil {
		return Shared[T]{}, ErrBadWeakPtr
	}
	s := w.Lock()
	if s.ctrl == nil {
		return Shared[T]{}, ErrBadWeakPtr
	}
	return s, nil
}

// WeakFromThis ...
func (e *EnableSharedFromThis[T]) WeakFromThis() Weak[T] {
	w := e.weakThis.Load()
	if w == nil || !w.ctrl.TryAcquireWeak() {
		return Weak[T]{}
	}
	return Weak[T]{
		ptr:  w.ptr,
		ctrl: w.ctrl,
	}
}

// The stored *Weak is never mutated after publishing, it is only swapped out.
func (e *EnableSharedFromThis[T]) bindWeakThis(s *Shared[T]) bool {
	old := e.weakThis.Load()
	if old != nil && !old.Expired() {
		return false
	}

	w := WeakFrom(s)
	if !e.weakThis.CompareAndSwap(old, &w) {
		w.Destroy()
		return false
	}
	if old != nil {
		old.ctrl.ReleaseWeak()
	}
	return true
}

func (e *EnableSharedFromThis[T]) unbindWeakThis(ctrl *refcount.ControlBlock) {
	old := e.weakThis.Load()
	if old == nil || old.ctrl != ctrl {
		return
	}
	if e.weakThis.CompareAndSwap(old, nil) {
		old.ctrl.ReleaseWeak()
	}
}

func maybeEnableSharedFromThis[T any](s *Shared[T], logger *zap.Logger) {
	if s.ptr == nil {
		return
	}
	binder, ok := interface{}(s.ptr).(sharedFromThisBinder[T])
	if !ok {
		return
	}
	if binder.bindWeakThis(s) {
		logger.Debug("Bound shared handle to EnableSharedFromThis",
			zap.String("type", fmt.Sprintf("%T", s.ptr)))
	}
}
