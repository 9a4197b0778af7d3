//go:build windows

package procsync

import (
	"time"

	"golang.org/x/sys/windows"
)

// Semaphore object syscalls not wrapped by x/sys/windows are resolved
// lazily from kernel32.
var (
	modKernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procCreateSemaphoreW = modKernel32.NewProc("CreateSemaphoreW")
	procReleaseSemaphore = modKernel32.NewProc("ReleaseSemaphore")
)

// semaOS is the Windows semaphore: a single anonymous kernel semaphore
// object. ReleaseSemaphore enforces the maximum count natively, so no
// capacity companion is needed.
type semaOS struct {
	h windows.Handle
}

func newSema(initialCount, maxCount uint32) (semaOS, error) {
	// Anonymous on purpose: named objects are visible across sessions and
	// invite collisions.
	r1, _, e1 := procCreateSemaphoreW.Call(
		0, // default security
		uintptr(initialCount),
		uintptr(maxCount),
		0, // not named
	)
	if r1 == 0 {
		logWarn("NewSemaphore", e1, "CreateSemaphoreW failed")
		return semaOS{}, ErrOperationFailed
	}
	return semaOS{h: windows.Handle(r1)}, nil
}

func copySemaFromProcess(pid int, tok SemaphoreToken) (semaOS, error) {
	if tok.Items == NullHandle {
		return semaOS{}, ErrInvalidParameter
	}
	h, err := DupHandleFromProcess(pid, tok.Items)
	if err != nil {
		return semaOS{}, err
	}
	return semaOS{h: windows.Handle(h)}, nil
}

func (s semaOS) signal() Result {
	// Fails with ERROR_TOO_MANY_POSTS when the count is at maximum.
	r1, _, e1 := procReleaseSemaphore.Call(uintptr(s.h), 1, 0)
	if r1 == 0 {
		if e1 != windows.ERROR_TOO_MANY_POSTS {
			logWarn("Semaphore.Signal", e1, "ReleaseSemaphore failed")
		}
		return ResultError
	}
	return ResultSuccess
}

func (s semaOS) wait(timeout time.Duration) Result {
	return waitHandle(s.h, timeout)
}

func (s semaOS) token() SemaphoreToken {
	return SemaphoreToken{Items: Handle(s.h)}
}

func (s semaOS) close() error {
	return windows.CloseHandle(s.h)
}
