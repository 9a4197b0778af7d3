//go:build windows

package procsync

import (
	"time"

	"golang.org/x/sys/windows"
)

// waitHandle blocks until h is signaled or timeout elapses, mapping
// WaitForSingleObject onto the package Result model: WAIT_OBJECT_0 ->
// Success, WAIT_TIMEOUT -> NotReady, anything else -> Error.
//
// A timeout <= 0 polls without blocking.
func waitHandle(h windows.Handle, timeout time.Duration) Result {
	ms := uint32(0)
	if timeout > 0 {
		ms = uint32((timeout + time.Millisecond - 1) / time.Millisecond)
	}
	event, err := windows.WaitForSingleObject(h, ms)
	switch event {
	case uint32(windows.WAIT_OBJECT_0):
		return ResultSuccess
	case uint32(windows.WAIT_TIMEOUT):
		return ResultNotReady
	default:
		// WAIT_FAILED reports detail through the returned error.
		logWarn("waitHandle", err, "WaitForSingleObject failed")
		return ResultError
	}
}
