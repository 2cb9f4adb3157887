package sharedptr

import (
	"github.com/QuangTung97/sharedptr/refcount"
)

// Weak observes an object owned by Shared handles without keeping it alive.
// A weak handle keeps only the control block alive. It must be destroyed exactly once.
type Weak[T any] struct {
	ptr  *T
	ctrl *refcount.ControlBlock
}

// WeakFrom ...
func WeakFrom[T any](s *Shared[T]) Weak[T] {
	if s.ctrl == nil {
		return Weak[T]{}
	}
	s.ctrl.AcquireWeak()
	return Weak[T]{
		ptr:  s.ptr,
		ctrl: s.ctrl,
	}
}

// Lock returns a new owner of the object, or an empty handle if the object has been destroyed
func (w *Weak[T]) Lock() Shared[T] {
	if w.ctrl == nil || !w.ctrl.TryAcquireStrong() {
		return Shared[T]{}
	}
	return Shared[T]{
		ptr:  w.ptr,
		ctrl: w.ctrl,
	}
}

// Expired ...
func (w *Weak[T]) Expired() bool {
	return w.ctrl == nil || w.ctrl.Expired()
}

// UseCount ...
func (w *Weak[T]) UseCount() int64 {
	if w.ctrl == nil {
		return 0
	}
	return w.ctrl.UseCount()
}

// Clone ...
func (w *Weak[T]) Clone() Weak[T] {
	if w.ctrl == nil {
		return Weak[T]{}
	}
	w.ctrl.AcquireWeak()
	return *w
}

// Reset is the same as Destroy
func (w *Weak[T]) Reset() {
	w.Destroy()
}

// Destroy ...
func (w *Weak[T]) Destroy() {
	ctrl := w.ctrl
	*w = Weak[T]{}
	if ctrl != nil {
		ctrl.ReleaseWeak()
	}
}
