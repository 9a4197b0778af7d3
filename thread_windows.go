//go:build windows

package procsync

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// threadID is a Windows thread id.
type threadID = uint32

const threadNameMaxLength = 255

// THREAD_SET_LIMITED_INFORMATION, needed for SetThreadDescription.
const threadSetLimitedInformation = 0x0400

// SetThreadDescription only exists on Windows 10 1607 and above, so it is
// resolved lazily and the presence/absence answer is cached process-wide;
// every caller consults the cache rather than re-resolving.
var (
	procSetThreadDescription = modKernel32.NewProc("SetThreadDescription")

	setThreadDescriptionAvailable = sync.OnceValue(func() bool {
		return procSetThreadDescription.Find() == nil
	})
)

func currentThreadID() threadID {
	return windows.GetCurrentThreadId()
}

// threadAlive probes the raw OS thread object without blocking: a signaled
// thread handle means the thread has terminated.
func threadAlive(tid threadID) bool {
	h, err := windows.OpenThread(windows.SYNCHRONIZE, false, tid)
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)
	event, _ := windows.WaitForSingleObject(h, 0)
	return event == uint32(windows.WAIT_TIMEOUT)
}

func setThreadName(tid threadID, name string) Result {
	if !setThreadDescriptionAvailable() {
		return ResultUnavailable
	}
	if len(name) > threadNameMaxLength {
		name = name[:threadNameMaxLength]
	}
	wname, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return ResultError
	}
	h, err := windows.OpenThread(threadSetLimitedInformation, false, tid)
	if err != nil {
		logWarn("Thread.SetName", err, "OpenThread failed")
		return ResultError
	}
	defer windows.CloseHandle(h)
	r1, _, _ := procSetThreadDescription.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(wname)),
	)
	// SetThreadDescription returns an HRESULT; negative means failure.
	if int32(uint32(r1)) < 0 {
		return ResultError
	}
	return ResultSuccess
}
