package sharedptr

import (
	"fmt"
	"github.com/QuangTung97/sharedptr/refcount"
	"go.uber.org/zap"
	"unsafe"
)

// Shared is an owning handle of an object shared with other handles.
//
// Copying the struct value does NOT create a new owner, use Clone for that.
// Every handle obtained from a constructor, Clone, Move, Alias or Lock must
// eventually be destroyed exactly once. The zero value is an empty handle.
type Shared[T any] struct {
	ptr  *T
	ctrl *refcount.ControlBlock
}

// New creates a handle owning ptr, deleted by DefaultDeleter.
// ptr can be nil, in that case the handle still has a control block.
func New[T any](ptr *T, options ...Option) (Shared[T], error) {
	opts := computeHandleOptions(options...)
	return newShared[T](ptr, NewDefaultDeleter[T](opts.logger), opts)
}

// NewWithDeleter creates a handle owning ptr, deleted by d
func NewWithDeleter[T any, D Deleter[T]](ptr *T, d D, options ...Option) (Shared[T], error) {
	return newShared[T](ptr, d, computeHandleOptions(options...))
}

// NewArray creates a handle owning a slice, every element is deleted by the default deletion
func NewArray[E any](elems []E, options ...Option) (Shared[[]E], error) {
	opts := computeHandleOptions(options...)
	return newShared[[]E](&elems, ArrayDeleter[E]{logger: opts.logger}, opts)
}

// FromUnique moves the object and the deleter of u into a new shared handle.
// On success u is left empty. On failure u still owns the object.
func FromUnique[T any](u *Unique[T], options ...Option) (Shared[T], error) {
	if u.ptr == nil {
		return Shared[T]{}, nil
	}

	s, _, err := allocateShared[T](u.ptr, u.deleter, computeHandleOptions(options...))
	if err != nil {
		return Shared[T]{}, err
	}
	u.Release()
	return s, nil
}

// Alias creates a handle sharing ownership with src but exposing ptr.
// Aliasing an empty handle gives an empty handle.
func Alias[T any, U any](src *Shared[U], ptr *T) Shared[T] {
	if src.ctrl == nil {
		return Shared[T]{}
	}
	src.ctrl.AcquireStrong()
	return Shared[T]{
		ptr:  ptr,
		ctrl: src.ctrl,
	}
}

func allocateShared[T any, D Deleter[T]](
	ptr *T, d D, opts handleOptions,
) (Shared[T], refcount.Destroyer, error) {
	bound := &boundDeleter[T, D]{
		ptr:     ptr,
		deleter: d,
	}

	ctrl, err := opts.allocator.NewControlBlock(bound)
	if err == nil && ctrl == nil {
		err = errNilControlBlock
	}
	if err != nil {
		return Shared[T]{}, bound, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	bound.ctrl = ctrl
	s := Shared[T]{
		ptr:  ptr,
		ctrl: ctrl,
	}
	maybeEnableSharedFromThis(&s, opts.logger)
	return s, nil, nil
}

func newShared[T any, D Deleter[T]](ptr *T, d D, opts handleOptions) (Shared[T], error) {
	s, bound, err := allocateShared[T](ptr, d, opts)
	if err != nil {
		opts.logger.Warn("Fail to allocate control block, deleting object", zap.Error(err))
		bound.Destroy()
		return Shared[T]{}, err
	}
	return s, nil
}

// Get ...
func (s *Shared[T]) Get() *T {
	return s.ptr
}

// UseCount returns the number of strong owners, 0 for an empty handle.
// The value is advisory only.
func (s *Shared[T]) UseCount() int64 {
	if s.ctrl == nil {
		return 0
	}
	return s.ctrl.UseCount()
}

// IsNil ...
func (s *Shared[T]) IsNil() bool {
	return s.ptr == nil
}

// Equal compares the exposed pointers only, regardless of ownership
func (s *Shared[T]) Equal(other *Shared[T]) bool {
	return s.ptr == other.ptr
}

// Clone ...
func (s *Shared[T]) Clone() Shared[T] {
	return Alias[T](s, s.ptr)
}

// Move transfers the ownership to the returned handle, s becomes empty
func (s *Shared[T]) Move() Shared[T] {
	result := *s
	*s = Shared[T]{}
	return result
}

// Swap ...
func (s *Shared[T]) Swap(other *Shared[T]) {
	s.ptr, other.ptr = other.ptr, s.ptr
	s.ctrl, other.ctrl = other.ctrl, s.ctrl
}

// Destroy releases the ownership, s becomes empty. Destroying an empty handle is a no-op.
func (s *Shared[T]) Destroy() {
	ctrl := s.ctrl
	*s = Shared[T]{}
	if ctrl != nil {
		ctrl.ReleaseStrong()
	}
}

// Reset ...
func (s *Shared[T]) Reset() {
	var tmp Shared[T]
	tmp.Swap(s)
	tmp.Destroy()
}

// ResetPointer replaces the owned object with ptr, deleted by DefaultDeleter.
// When the allocation fails ptr is deleted and s keeps its current object.
func (s *Shared[T]) ResetPointer(ptr *T, options ...Option) error {
	tmp, err := New[T](ptr, options...)
	if err != nil {
		return err
	}
	tmp.Swap(s)
	tmp.Destroy()
	return nil
}

// ResetWithDeleter ...
func (s *Shared[T]) ResetWithDeleter(ptr *T, d Deleter[T], options ...Option) error {
	tmp, err := NewWithDeleter[T](ptr, d, options...)
	if err != nil {
		return err
	}
	tmp.Swap(s)
	tmp.Destroy()
	return nil
}

// Assign makes s an owner of the object of other, other is unchanged
func (s *Shared[T]) Assign(other *Shared[T]) {
	tmp := other.Clone()
	tmp.Swap(s)
	tmp.Destroy()
}

// AssignMove ...
func (s *Shared[T]) AssignMove(other *Shared[T]) {
	tmp := other.Move()
	tmp.Swap(s)
	tmp.Destroy()
}

// SameOwner reports whether a and b share one control block
func SameOwner[T any, U any](a *Shared[T], b *Shared[U]) bool {
	return a.ctrl != nil && a.ctrl == b.ctrl
}

// Equal compares the exposed addresses of handles of different types,
// e.g. a handle to a struct and an alias to its first field are equal
func Equal[T any, U any](a *Shared[T], b *Shared[U]) bool {
	return unsafe.Pointer(a.ptr) == unsafe.Pointer(b.ptr)
}
