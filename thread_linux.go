//go:build linux

package procsync

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// threadID is a Linux thread id (tid), valid within this process's thread
// group for the thread's lifetime. Tids can be reused after a thread
// exits; Join tolerates this because reuse after a natural exit is hidden
// by the already-signaled completion event.
type threadID = int

// Linux caps a thread name (comm) at 15 bytes plus the terminator.
const threadNameMaxLength = 15

func currentThreadID() threadID {
	return unix.Gettid()
}

// threadAlive probes the raw OS thread state without blocking: signal 0
// delivers nothing but performs the existence check.
func threadAlive(tid threadID) bool {
	return unix.Tgkill(unix.Getpid(), tid, 0) == nil
}

// commAvailable caches, process-wide, whether the thread-naming facility
// (per-task comm files) exists. Resolution is attempted once; every caller
// consults the cached answer.
var commAvailable = sync.OnceValue(func() bool {
	_, err := os.Stat("/proc/self/task")
	return err == nil
})

// setThreadName names the thread via its comm file, which unlike
// prctl(PR_SET_NAME) also works for naming a sibling thread.
func setThreadName(tid threadID, name string) Result {
	if !commAvailable() {
		return ResultUnavailable
	}
	if len(name) > threadNameMaxLength {
		name = name[:threadNameMaxLength]
	}
	path := fmt.Sprintf("/proc/self/task/%d/comm", tid)
	err := os.WriteFile(path, []byte(name), 0)
	if err == nil {
		return ResultSuccess
	}
	if os.IsNotExist(err) {
		// The thread is gone (or /proc is partially mounted); naming is
		// best effort either way.
		return ResultUnavailable
	}
	logWarn("Thread.SetName", err, "writing comm failed")
	return ResultError
}
