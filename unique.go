package sharedptr

// Unique is a single owner handle. It can be moved but never shared,
// except by giving its object away to FromUnique.
type Unique[T any] struct {
	ptr     *T
	deleter Deleter[T]
}

// NewUnique ...
func NewUnique[T any](ptr *T, d Deleter[T]) Unique[T] {
	return Unique[T]{
		ptr:     ptr,
		deleter: d,
	}
}

// NewUniqueDefault creates a unique handle deleted by DefaultDeleter
func NewUniqueDefault[T any](ptr *T) Unique[T] {
	return NewUnique[T](ptr, DefaultDeleter[T]{})
}

// Get ...
func (u *Unique[T]) Get() *T {
	return u.ptr
}

// Deleter ...
func (u *Unique[T]) Deleter() Deleter[T] {
	return u.deleter
}

// Release gives up the ownership without deleting the object
func (u *Unique[T]) Release() *T {
	ptr := u.ptr
	u.ptr = nil
	return ptr
}

// Reset deletes the current object, if any, and takes ownership of ptr
func (u *Unique[T]) Reset(ptr *T) {
	old := u.ptr
	u.ptr = ptr
	if old != nil {
		u.deleter.Delete(old)
	}
}

// Destroy ...
func (u *Unique[T]) Destroy() {
	u.Reset(nil)
}

// Move ...
func (u *Unique[T]) Move() Unique[T] {
	result := *u
	u.ptr = nil
	return result
}
