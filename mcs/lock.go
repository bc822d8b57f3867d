// Package mcs implements the Mellor-Crummey Scott (MCS) lock, a scalable FIFO queue-based spin lock.
//
// An MCS lock provides several advantages over traditional spin locks:
//   - FIFO ordering ensures fair lock acquisition
//   - Each goroutine spins on a flag in its own Slot, reducing memory contention and cache invalidation
//   - The queue lives entirely in caller-owned Slots, so locking allocates nothing
//   - Predictable performance under high contention
//
// Two types are provided. Lock is the bare queue lock. Mutex wraps a value of
// any type and hands out a Guard, the only way to reach that value while
// other goroutines may be contending.
//
// Example usage:
//
//	m := mcs.New(0)
//	var slot mcs.Slot
//
//	// Blocking acquisition
//	g := m.Lock(&slot)
//	*g.Get() += 1
//	g.Unlock()
//
//	// Non-blocking try-lock
//	if g, ok := m.TryLock(&slot); ok {
//	    // ... critical section ...
//	    g.Unlock()
//	}
//
// Each goroutine must maintain its own Slot. A single Slot must not be used
// by two acquisitions at the same time, and must stay untouched until the
// Guard (or Lock) it was used for is unlocked.
//
// Waiters busy-wait. By default every spin iteration yields to the Go
// scheduler; building with -tags mcs_freestanding replaces that with a
// processor spin-wait hint. There are no timeouts and no cancellation.
package mcs

import (
	"sync/atomic"

	"github.com/ahrav/mcs-mutex/internal/pause"
)

// Lock represents the MCS lock. The zero value is an unlocked lock.
//
// tail is nil when nobody holds or waits for the lock. Otherwise it points at
// the most recently enqueued Slot: the holder if nobody queued behind it, the
// last waiter if somebody did. The rest of the queue hangs off Slot.next.
type Lock struct {
	_    noCopy
	tail atomic.Pointer[Slot]
}

// NewLock creates a new MCS lock.
func NewLock() *Lock { return new(Lock) }

// TryLock attempts to acquire the lock without blocking.
// It succeeds only if the lock is idle: no holder and no waiters. A failed
// attempt does not enqueue and leaves the lock untouched.
func (l *Lock) TryLock(slot *Slot) bool {
	slot.claim()
	if l.tail.CompareAndSwap(nil, slot) {
		return true
	}
	slot.disown()
	return false
}

// Lock acquires the lock, spinning until every goroutine that enqueued
// before this one has released it.
func (l *Lock) Lock(slot *Slot) {
	slot.claim()
	slot.locked.Store(true)
	pred := l.tail.Swap(slot) // Atomically put ourselves at the tail

	if pred == nil { // No predecessor, lock acquired
		return
	}

	// Link to predecessor, it clears our flag when it releases.
	pred.next.Store(slot)

	// The load that finally observes false pairs with the predecessor's
	// store, so everything it wrote while holding the lock is visible.
	for slot.locked.Load() {
		pause.Pause()
	}
}

// Unlock releases the lock held through slot, handing it to the next
// waiter if there is one.
//
// Unlock touches only queue metadata: it never reads data protected by the
// lock, so it is safe to call while that data is being torn down or while
// unwinding from a panic inside the critical section.
//
// Unlock panics if the lock is idle. Releasing a slot that is not the holder
// while the lock is busy is not detected.
func (l *Lock) Unlock(slot *Slot) {
	succ := slot.next.Load()
	if succ == nil {
		// No one waiting? Try to set tail to nil.
		if l.tail.CompareAndSwap(slot, nil) {
			slot.disown()
			return
		}
		if l.tail.Load() == nil {
			panic("mcs: unlock of unlocked lock")
		}

		// Someone swapped the tail but has not linked to us yet, wait for them.
		for succ = slot.next.Load(); succ == nil; succ = slot.next.Load() {
			pause.Pause()
		}
	}

	slot.disown()
	succ.locked.Store(false) // Signal successor
}

// IsFree returns true if the lock is currently free.
func (l *Lock) IsFree() bool { return l.tail.Load() == nil }
