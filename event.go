package procsync

import (
	"sync"
	"time"
)

// Event is a manual-reset signal: once Signal is called the event stays
// signaled, releasing all current and future waiters, until Clear is
// called. Multiple concurrent waiters are all released by a single Signal.
//
// The signaled state is represented by a closed channel, which is swapped
// out wholesale on Clear; a channel close is the one broadcast primitive
// the runtime gives us that releases every waiter exactly once.
type Event struct {
	mu     sync.Mutex
	ch     chan struct{} // closed while the event is signaled
	closed bool
}

// NewEvent returns a new Event, initially signaled or not per the
// argument.
func NewEvent(signaled bool) *Event {
	e := &Event{ch: make(chan struct{})}
	if signaled {
		close(e.ch)
	}
	return e
}

// Signal sets the event to signaled. It remains signaled until Clear.
// Signaling an already-signaled event is a no-op.
func (e *Event) Signal() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		logWarn("Event.Signal", nil, "signal of closed event ignored")
		return
	}
	select {
	case <-e.ch:
		// Already signaled.
	default:
		close(e.ch)
	}
}

// Clear resets the event to unsignaled. Waiters arriving after Clear block
// until the next Signal; waiters already released by a prior Signal are
// unaffected.
func (e *Event) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	select {
	case <-e.ch:
		e.ch = make(chan struct{})
	default:
		// Already clear.
	}
}

// Wait blocks until the event is signaled or timeout elapses.
//
// It returns ResultSuccess if the event is (or becomes) signaled,
// ResultNotReady if the timeout elapses first (an expected condition, not
// an error), or ResultError if the event has been closed.
//
// A timeout <= 0 polls: it returns immediately with ResultSuccess or
// ResultNotReady.
func (e *Event) Wait(timeout time.Duration) Result {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ResultError
	}
	ch := e.ch
	e.mu.Unlock()

	select {
	case <-ch:
		return e.waitResult()
	default:
	}
	if timeout <= 0 {
		return ResultNotReady
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ch:
		return e.waitResult()
	case <-timer.C:
		return ResultNotReady
	}
}

// waitResult distinguishes a genuine signal from a close-induced wakeup.
func (e *Event) waitResult() Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ResultError
	}
	return ResultSuccess
}

// Close releases the event, waking any blocked waiters with ResultError.
// Close is idempotent; Signal and Wait on a closed event fail.
func (e *Event) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	select {
	case <-e.ch:
	default:
		close(e.ch)
	}
}
