package sharedptr

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestWeak_Empty(t *testing.T) {
	var s Shared[int]
	w := WeakFrom(&s)

	assert.Equal(t, true, w.Expired())
	assert.Equal(t, int64(0), w.UseCount())

	locked := w.Lock()
	assert.Nil(t, locked.Get())

	w.Destroy()
}

func TestWeak_Lock(t *testing.T) {
	s, ptr, rec := newRecordedShared(t, 10)
	w := WeakFrom(&s)

	assert.Equal(t, false, w.Expired())
	assert.Equal(t, int64(1), w.UseCount())

	locked := w.Lock()
	assert.Same(t, ptr, locked.Get())
	assert.Equal(t, int64(2), s.UseCount())

	s.Destroy()
	assert.Equal(t, 0, len(rec.calls))

	locked.Destroy()
	assert.Equal(t, []*int{ptr}, rec.calls)
	assert.Equal(t, true, w.Expired())

	afterExpired := w.Lock()
	assert.Nil(t, afterExpired.Get())
	assert.Equal(t, int64(0), afterExpired.UseCount())

	w.Destroy()
}

func TestWeak_Keeps_Control_Block(t *testing.T) {
	s, _, _ := newRecordedShared(t, 10)
	ctrl := s.ctrl

	w := WeakFrom(&s)
	w2 := w.Clone()
	assert.Equal(t, int64(3), ctrl.WeakCount())

	s.Destroy()
	assert.Equal(t, true, ctrl.Expired())
	assert.Equal(t, false, ctrl.Freed())

	w.Destroy()
	assert.Equal(t, false, ctrl.Freed())

	w2.Destroy()
	assert.Equal(t, true, ctrl.Freed())
}

func TestWeak_Reset(t *testing.T) {
	s, ptr, rec := newRecordedShared(t, 10)
	ctrl := s.ctrl

	w := WeakFrom(&s)
	w.Reset()

	assert.Equal(t, true, w.Expired())
	assert.Equal(t, int64(1), ctrl.WeakCount())

	w.Reset()
	assert.Equal(t, int64(1), ctrl.WeakCount())

	s.Destroy()
	assert.Equal(t, []*int{ptr}, rec.calls)
	assert.Equal(t, true, ctrl.Freed())
}
