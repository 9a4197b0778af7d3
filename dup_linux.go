//go:build linux

package procsync

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func dupHandleFromProcess(pid int, h Handle) (Handle, error) {
	pidfd, err := unix.PidfdOpen(pid, 0)
	if err != nil {
		logWarn("DupHandleFromProcess", err, "pidfd_open failed")
		return NullHandle, fmt.Errorf("procsync: open process %d: %w", pid, err)
	}
	defer unix.Close(pidfd)

	fd, err := unix.PidfdGetfd(pidfd, int(h), 0)
	if err != nil {
		// EPERM means the kernel's ptrace-mode access check refused us.
		logWarn("DupHandleFromProcess", err, "pidfd_getfd failed")
		return NullHandle, fmt.Errorf("procsync: duplicate handle %d from process %d: %w", h, pid, err)
	}
	return Handle(fd), nil
}

// dupHandleToProcess would inject a handle into a foreign process's table.
// Linux has no such facility (pidfd_getfd only pulls); peers either pull
// with DupHandleFromProcess or receive the fd over a HandleConn.
func dupHandleToProcess(h Handle, pid int) (Handle, error) {
	return NullHandle, ErrUnavailable
}

func closeHandle(h Handle) error {
	return unix.Close(int(h))
}
