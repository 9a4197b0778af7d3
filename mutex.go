package procsync

import "sync"

// Mutex is a kernel-backed exclusive lock (adaptive spin, then block in the
// kernel). It is deliberately not reentrant: recursive locking deadlocks,
// matching the lowest-common-denominator behavior across target operating
// systems. Under the procsyncchecks build tag a reentrancy counter detects
// recursive use and unbalanced unlocks and panics instead.
//
// Mutex provides mutual exclusion but no ordering or fairness guarantee
// among waiters. The zero value is an unlocked Mutex; it must not be
// copied after first use.
type Mutex struct {
	mu sync.Mutex

	// lockCount is maintained only when checksEnabled; it must stay in
	// {0, 1}.
	lockCount Word
	closed    Word
}

// Lock acquires the mutex, blocking until it is available.
func (m *Mutex) Lock() {
	if checksEnabled && m.closed.Load() != 0 {
		panic("procsync: Lock of closed Mutex")
	}
	m.mu.Lock()
	if checksEnabled {
		if count := Increment(&m.lockCount); count != 1 {
			panic("procsync: recursive Mutex lock detected")
		}
	}
}

// Unlock releases the mutex. Lock and Unlock calls must balance; under
// procsyncchecks an unbalanced Unlock panics, otherwise the underlying
// runtime reports the fault.
func (m *Mutex) Unlock() {
	if checksEnabled {
		if count := Decrement(&m.lockCount); count != 0 {
			panic("procsync: unlock of unlocked Mutex")
		}
	}
	m.mu.Unlock()
}

// TryLock attempts to acquire the mutex without blocking, reporting
// whether it succeeded.
func (m *Mutex) TryLock() bool {
	if !m.mu.TryLock() {
		return false
	}
	if checksEnabled {
		if count := Increment(&m.lockCount); count != 1 {
			panic("procsync: recursive Mutex lock detected")
		}
	}
	return true
}

// Close releases the mutex's resources. Closing a held mutex is
// potentially hazardous (a pending waiter may still be blocked on it) and
// panics under procsyncchecks. Close is provided for parity with the other
// kernel-object types; the zero-cost Go mutex does not strictly require it.
func (m *Mutex) Close() {
	if checksEnabled {
		if m.lockCount.Load() != 0 {
			panic("procsync: Close of locked Mutex")
		}
		m.closed.Store(1)
	}
}
