package mcs

import "sync/atomic"

// Slot is a queue node for one acquisition of a Lock or Mutex.
//
// The zero value is ready to use. A Slot belongs to the goroutine that passes
// it to Lock or TryLock and must not be handed to another acquisition until
// the one it is part of has been released. It may be reused for any number of
// sequential, non-overlapping acquisitions, on the same or different locks.
type Slot struct {
	_      noCopy
	next   atomic.Pointer[Slot] // successor in the queue, set by the next arrival
	locked atomic.Bool          // cleared by the predecessor at hand-off
	inUse  atomic.Bool          // only maintained when debugChecks is set
}

// claim resets the slot for a new acquisition attempt.
func (s *Slot) claim() {
	if debugChecks && !s.inUse.CompareAndSwap(false, true) {
		panic("mcs: slot used by two acquisitions at once")
	}
	s.next.Store(nil)
}

// disown marks the slot as free for its owner to reuse.
func (s *Slot) disown() {
	if debugChecks {
		s.inUse.Store(false)
	}
}

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
