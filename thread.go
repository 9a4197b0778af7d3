package procsync

import (
	"runtime"
	"sync"
	"time"
)

// ThreadFunc is a thread entry function.
type ThreadFunc func(arg any)

// Thread owns an OS-scheduled execution context: an entry function and
// parameter, a dedicated OS thread, and a completion event signaled when
// the entry function returns.
//
// The entry function runs on a goroutine locked to its OS thread for the
// thread's whole lifetime, so OS-level naming applies to a real thread and
// both a normal return and runtime.Goexit terminate the underlying thread.
//
// Lifecycle: Unstarted -> Running (Start) -> Exited (entry returned or the
// thread was terminated without running its exit path) -> Unstarted again
// (successful Join). A Thread must not be started twice without an
// intervening Join; Join on an unstarted Thread returns ResultError.
type Thread struct {
	mu      sync.Mutex
	running bool
	tid     threadID
	done    *Event
	name    string
}

// NewThread returns a Thread configured by the given options. The zero
// value of Thread is also usable; NewThread exists for option plumbing.
func NewThread(opts ...ThreadOption) (*Thread, error) {
	cfg, err := resolveThreadOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Thread{name: cfg.name}, nil
}

// Start creates the OS-scheduled execution context and invokes fn(arg) on
// it. On return of fn the completion event is signaled before the OS
// thread exits.
//
// Start returns ResultError if the thread is already started or fn is nil.
// It does not return until the new thread is running, so the thread id is
// valid once Start returns.
func (t *Thread) Start(fn ThreadFunc, arg any) Result {
	if fn == nil {
		return ResultError
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return ResultError
	}

	done := NewEvent(false)
	started := make(chan threadID)
	name := t.name

	go func() {
		// Never unlocked: the OS thread dies with this goroutine, which is
		// what makes the liveness probe in Join meaningful.
		runtime.LockOSThread()
		tid := currentThreadID()
		started <- tid
		if name != "" {
			setThreadName(tid, name)
		}
		fn(arg)
		// Deliberately not deferred: a thread torn down without returning
		// from its entry function (runtime.Goexit) must not signal
		// completion, so Join can tell the two apart.
		done.Signal()
	}()

	t.tid = <-started
	t.done = done
	t.running = true
	return ResultSuccess
}

// SetName applies an OS-level name to the thread, best effort. The naming
// facility is resolved lazily and cached process-wide; where it does not
// exist (older OS versions, /proc unavailable) SetName returns
// ResultUnavailable rather than failing hard, and callers are expected to
// continue without a name. Names longer than the platform limit are
// truncated.
//
// Called before Start, the name is stored and applied when the thread
// starts. Called while running, it is applied immediately.
func (t *Thread) SetName(name string) Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.name = name
	if !t.running {
		return ResultSuccess
	}
	return setThreadName(t.tid, name)
}

// Join waits for the thread to exit, then releases its resources and
// resets the Thread for reuse.
//
// Join first probes the raw OS thread state without blocking: if the
// thread object is already terminated but the completion event was never
// signaled, the thread was terminated without running its exit path (in Go
// terms, the entry function called runtime.Goexit), and waiting on the
// completion event would block forever. Only a thread that is still alive
// is waited on, with the caller's timeout.
//
// Returns ResultSuccess once joined (IsJoinable is then false),
// ResultNotReady if timeout elapsed with the thread still running, or
// ResultError if the Thread is not joinable.
func (t *Thread) Join(timeout time.Duration) Result {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return ResultError
	}
	tid := t.tid
	done := t.done
	t.mu.Unlock()

	result := ResultSuccess
	if threadAlive(tid) {
		result = done.Wait(timeout)
		if result == ResultNotReady && !threadAlive(tid) {
			// Terminated between the probe and the wait, bypassing the
			// completion event.
			result = ResultSuccess
		}
	}

	if result == ResultSuccess {
		t.mu.Lock()
		t.running = false
		t.tid = 0
		t.done = nil
		t.mu.Unlock()
		done.Close()
	}
	return result
}

// IsJoinable reports whether the thread has been started and not yet
// joined.
func (t *Thread) IsJoinable() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
