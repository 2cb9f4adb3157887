// Package refcount implements the control block shared by owning and weak handles.
package refcount

import (
	"go.uber.org/atomic"
)

// Destroyer is the type-erased "destroy controlled object now" action bound to a ControlBlock
type Destroyer interface {
	Destroy()
}

// DestroyerFunc ...
type DestroyerFunc func()

// Destroy ...
func (f DestroyerFunc) Destroy() {
	f()
}

// ControlBlock holds the strong and weak counters shared by every handle co-owning one object.
//
// useCount counts live strong owners. weakCount counts live weak observers plus one
// implicit reference held by the pool of strong owners, dropped on the last strong release.
type ControlBlock struct {
	useCount  atomic.Int64
	weakCount atomic.Int64
	freed     atomic.Bool

	destroyer Destroyer
}

// New ...
func New(d Destroyer) *ControlBlock {
	c := &ControlBlock{destroyer: d}
	c.useCount.Store(1)
	c.weakCount.Store(1)
	return c
}

// AcquireStrong must only be called by an owner of a live strong reference
func (c *ControlBlock) AcquireStrong() {
	if c.useCount.Inc() <= 1 {
		panic("refcount: acquire on destroyed object")
	}
}

// TryAcquireStrong increments the use count unless it has already dropped to zero
func (c *ControlBlock) TryAcquireStrong() bool {
	for {
		last := c.useCount.Load()
		if last == 0 {
			return false
		}
		swapped := c.useCount.CompareAndSwap(last, last+1)
		if swapped {
			return true
		}
	}
}

// ReleaseStrong ...
func (c *ControlBlock) ReleaseStrong() {
	newVal := c.useCount.Dec()
	if newVal > 0 {
		return
	}
	if newVal < 0 {
		panic("refcount: strong reference released too often")
	}

	d := c.destroyer
	c.destroyer = nil
	d.Destroy()

	c.ReleaseWeak()
}

// AcquireWeak ...
func (c *ControlBlock) AcquireWeak() {
	if c.weakCount.Inc() <= 1 {
		panic("refcount: acquire weak on freed control block")
	}
}

// TryAcquireWeak increments the weak count unless the control block has already been freed
func (c *ControlBlock) TryAcquireWeak() bool {
	for {
		last := c.weakCount.Load()
		if last == 0 {
			return false
		}
		swapped := c.weakCount.CompareAndSwap(last, last+1)
		if swapped {
			return true
		}
	}
}

// ReleaseWeak ...
func (c *ControlBlock) ReleaseWeak() {
	newVal := c.weakCount.Dec()
	if newVal > 0 {
		return
	}
	if newVal < 0 {
		panic("refcount: weak reference released too often")
	}
	c.freed.Store(true)
}

// UseCount is advisory only, it may be stale as soon as it returns
func (c *ControlBlock) UseCount() int64 {
	return c.useCount.Load()
}

// WeakCount ...
func (c *ControlBlock) WeakCount() int64 {
	return c.weakCount.Load()
}

// Expired reports whether the controlled object has been destroyed
func (c *ControlBlock) Expired() bool {
	return c.useCount.Load() == 0
}

// Freed reports whether both counters have reached zero
func (c *ControlBlock) Freed() bool {
	return c.freed.Load()
}
