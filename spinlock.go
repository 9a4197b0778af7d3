package procsync

import "sync/atomic"

// Spinlock is a busy-wait exclusive lock built directly on compare-and-swap,
// with no kernel involvement, no timeout, and no fairness guarantee. It is
// intended only for critical sections held for microseconds; Lock never
// yields to the scheduler, so never acquire it while holding another
// goroutine's only path to progress.
//
// The zero value is an unlocked Spinlock. A Spinlock must not be copied
// after first use.
type Spinlock struct {
	state atomic.Int32 // 0 = unlocked, 1 = locked
}

// Lock acquires the lock, busy-polling until it is available.
// Classic test-and-test-and-set: spin on a plain read until the word looks
// free, then retry the compare-and-swap.
func (l *Spinlock) Lock() {
	for !l.state.CompareAndSwap(0, 1) {
		for l.state.Load() != 0 {
		}
	}
}

// TryLock attempts to acquire the lock without spinning, reporting whether
// it succeeded.
func (l *Spinlock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock. Unlocking an already-unlocked Spinlock is a
// programming error, not a runtime condition, and panics.
func (l *Spinlock) Unlock() {
	if !l.state.CompareAndSwap(1, 0) {
		panic("procsync: unlock of unlocked Spinlock")
	}
}
