package sharedptr

import (
	"github.com/QuangTung97/sharedptr/refcount"
	"go.uber.org/zap"
	"io"
	"reflect"
)

// Deleter releases the resources of an object when its last owner goes away.
// Delete is also called with a nil pointer when a nil pointer was handed to a constructor.
type Deleter[T any] interface {
	Delete(ptr *T)
}

// DeleterFunc ...
type DeleterFunc[T any] func(ptr *T)

// Delete ...
func (f DeleterFunc[T]) Delete(ptr *T) {
	f(ptr)
}

// Destroyable is implemented by objects that need explicit cleanup without an error result
type Destroyable interface {
	Destroy()
}

// DefaultDeleter closes objects implementing io.Closer and destroys objects implementing Destroyable.
// Any other object is left to the garbage collector.
type DefaultDeleter[T any] struct {
	logger *zap.Logger
}

// NewDefaultDeleter ...
func NewDefaultDeleter[T any](logger *zap.Logger) DefaultDeleter[T] {
	return DefaultDeleter[T]{logger: logger}
}

// Delete ...
func (d DefaultDeleter[T]) Delete(ptr *T) {
	if ptr == nil {
		return
	}
	destroyValue(ptr, d.logger)
}

// ArrayDeleter applies the default deletion to every element of a slice
type ArrayDeleter[E any] struct {
	logger *zap.Logger
}

// Delete ...
func (d ArrayDeleter[E]) Delete(ptr *[]E) {
	if ptr == nil {
		return
	}
	elems := *ptr
	for i := range elems {
		if isNilValue(elems[i]) {
			continue
		}
		if destroyValue(elems[i], d.logger) {
			continue
		}
		destroyValue(&elems[i], d.logger)
	}
}

func isNilValue(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func destroyValue(v interface{}, logger *zap.Logger) bool {
	switch obj := v.(type) {
	case io.Closer:
		err := obj.Close()
		if err != nil && logger != nil {
			logger.Error("Error while closing object", zap.Error(err))
		}
		return true

	case Destroyable:
		obj.Destroy()
		return true

	default:
		return false
	}
}

// boundDeleter is the only refcount.Destroyer implementation, one instantiation per deleter type
type boundDeleter[T any, D Deleter[T]] struct {
	ptr     *T
	deleter D
	ctrl    *refcount.ControlBlock
}

var _ refcount.Destroyer = &boundDeleter[int, DeleterFunc[int]]{}

func (b *boundDeleter[T, D]) Destroy() {
	if b.ptr != nil && b.ctrl != nil {
		if binder, ok := interface{}(b.ptr).(sharedFromThisBinder[T]); ok {
			binder.unbindWeakThis(b.ctrl)
		}
	}
	b.deleter.Delete(b.ptr)
}
