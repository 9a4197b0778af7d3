package procsync

import (
	"time"
)

// SemaphoreToken names a semaphore's kernel handles for cross-process
// transfer. The handle values are meaningful only within the owning
// process; a peer converts a token into its own semaphore with
// [CopySemaphoreFromProcess], supplying the owner's process id.
//
// On Linux a semaphore is a pair of eventfds (available items plus
// remaining capacity); on Windows it is a single kernel semaphore object
// and Slots is NullHandle.
type SemaphoreToken struct {
	Items Handle
	Slots Handle
}

// Semaphore is a kernel-backed counting semaphore with a fixed maximum
// count. Signal increments the count and fails, rather than clamping, if
// the increment would exceed the maximum; Wait blocks until the count is
// positive and decrements it. The count invariant holds under concurrent
// signal/wait from any number of threads and processes, but no FIFO
// fairness is promised.
//
// A semaphore created in one process can be handed to another through
// [Semaphore.Token] and [CopySemaphoreFromProcess]; afterwards both
// processes observe the same count and may signal and wait
// interchangeably. The kernel object is destroyed only when every holder
// has closed its handles.
type Semaphore struct {
	os     semaOS
	closed Word
}

// NewSemaphore creates a semaphore with the given initial and maximum
// counts. maxCount must be positive and initialCount must not exceed it.
func NewSemaphore(initialCount, maxCount uint32) (*Semaphore, error) {
	if maxCount == 0 || initialCount > maxCount {
		return nil, ErrInvalidParameter
	}
	os, err := newSema(initialCount, maxCount)
	if err != nil {
		return nil, err
	}
	return &Semaphore{os: os}, nil
}

// CopySemaphoreFromProcess obtains a semaphore referring to the same
// underlying kernel object as tok, where tok holds handle values from
// process pid's handle table. The returned semaphore is an independent
// capability: closing it does not invalidate the original.
//
// Duplication requires opening the foreign process with full access; it
// fails if the process cannot be opened or the OS access-control policy
// refuses the duplication.
func CopySemaphoreFromProcess(pid int, tok SemaphoreToken) (*Semaphore, error) {
	os, err := copySemaFromProcess(pid, tok)
	if err != nil {
		return nil, err
	}
	return &Semaphore{os: os}, nil
}

// Signal increments the count by one. It returns ResultError if the
// increment would exceed the semaphore's maximum count; the count is
// never clamped.
func (s *Semaphore) Signal() Result {
	if s.closed.Load() != 0 {
		return ResultError
	}
	return s.os.signal()
}

// Wait blocks until the count is positive, then atomically decrements it.
// It returns ResultSuccess on decrement, ResultNotReady if timeout
// elapses first, or ResultError on an OS failure. A timeout <= 0 polls.
func (s *Semaphore) Wait(timeout time.Duration) Result {
	if s.closed.Load() != 0 {
		return ResultError
	}
	return s.os.wait(timeout)
}

// Token returns the handle values identifying this semaphore within the
// calling process, for transfer to a peer via any agreed channel.
func (s *Semaphore) Token() SemaphoreToken {
	return s.os.token()
}

// Close releases this process's handles. Idempotent. The underlying
// kernel object persists until all holders (including cross-process
// duplicates) have closed.
func (s *Semaphore) Close() error {
	if Increment(&s.closed) != 1 {
		return nil
	}
	return s.os.close()
}
