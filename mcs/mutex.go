package mcs

import "golang.org/x/sys/cpu"

// Mutex is an MCS lock that owns the value it protects.
//
// The value can only be reached through the Guard returned by Lock or
// TryLock, or through Exclusive and Consume when the caller knows no other
// goroutine can be using the mutex. The zero value is an unlocked mutex
// holding the zero value of T. A Mutex must not be copied after first use.
type Mutex[T any] struct {
	lock Lock
	_    cpu.CacheLinePad // keep enqueuers off the holder's cache line
	data T
}

// New returns an unlocked mutex holding value.
func New[T any](value T) *Mutex[T] { return &Mutex[T]{data: value} }

// TryLock attempts to acquire the mutex without blocking. It reports false,
// with a zero Guard, when the mutex is held or has waiters.
func (m *Mutex[T]) TryLock(slot *Slot) (Guard[T], bool) {
	if !m.lock.TryLock(slot) {
		return Guard[T]{}, false
	}
	return Guard[T]{mu: m, slot: slot}, true
}

// Lock acquires the mutex, spinning until it is this caller's turn.
// Callers are served in the order they enqueued.
func (m *Mutex[T]) Lock(slot *Slot) Guard[T] {
	m.lock.Lock(slot)
	return Guard[T]{mu: m, slot: slot}
}

// Do runs fn with the mutex held and releases it when fn returns or panics.
func (m *Mutex[T]) Do(slot *Slot, fn func(*T)) {
	g := m.Lock(slot)
	defer g.Unlock()
	fn(g.Get())
}

// Exclusive returns a pointer to the protected value without locking.
// The caller must be the only goroutine with access to the mutex, for
// example before it is shared or after all users have finished. It panics if
// the mutex is held or has waiters.
func (m *Mutex[T]) Exclusive() *T {
	m.mustBeIdle("Exclusive")
	return &m.data
}

// Consume moves the protected value out of the mutex and returns it, leaving
// the zero value behind. It has the same precondition as Exclusive.
func (m *Mutex[T]) Consume() T {
	m.mustBeIdle("Consume")
	v := m.data
	var zero T
	m.data = zero
	return v
}

// IsFree returns true if the mutex is neither held nor awaited.
func (m *Mutex[T]) IsFree() bool { return m.lock.IsFree() }

func (m *Mutex[T]) mustBeIdle(op string) {
	if !m.lock.IsFree() {
		panic("mcs: " + op + " called on a locked mutex")
	}
}

// Guard grants access to a locked Mutex's value. It is valid from the Lock
// or TryLock call that returned it until Unlock, which must be called exactly
// once. Pointers obtained from Get must not be used after Unlock. A Guard
// should not be copied: the copies share one release obligation.
type Guard[T any] struct {
	mu   *Mutex[T]
	slot *Slot
}

// Get returns a pointer to the protected value.
func (g *Guard[T]) Get() *T {
	g.mustBeHeld("access through")
	return &g.mu.data
}

// Value returns a copy of the protected value.
func (g *Guard[T]) Value() T { return *g.Get() }

// Set replaces the protected value.
func (g *Guard[T]) Set(v T) { *g.Get() = v }

// Unlock releases the mutex and hands it to the next waiter, if any.
// The protected value is not touched.
func (g *Guard[T]) Unlock() {
	g.mustBeHeld("unlock of")
	mu, slot := g.mu, g.slot
	g.mu, g.slot = nil, nil
	mu.lock.Unlock(slot)
}

func (g *Guard[T]) mustBeHeld(op string) {
	if g.mu == nil {
		panic("mcs: " + op + " unlocked guard")
	}
}
