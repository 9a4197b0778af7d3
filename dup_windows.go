//go:build windows

package procsync

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func dupHandleFromProcess(pid int, h Handle) (Handle, error) {
	hProcess, err := windows.OpenProcess(windows.PROCESS_ALL_ACCESS, true, uint32(pid))
	if err != nil {
		logWarn("DupHandleFromProcess", err, "OpenProcess failed")
		return NullHandle, fmt.Errorf("procsync: open process %d: %w", pid, err)
	}
	defer windows.CloseHandle(hProcess)

	var out windows.Handle
	err = windows.DuplicateHandle(
		hProcess,
		windows.Handle(h),
		windows.CurrentProcess(),
		&out,
		0,
		true,
		windows.DUPLICATE_SAME_ACCESS,
	)
	if err != nil {
		logWarn("DupHandleFromProcess", err, "DuplicateHandle failed")
		return NullHandle, fmt.Errorf("procsync: duplicate handle from process %d: %w", pid, err)
	}
	return Handle(out), nil
}

// dupHandleToProcess duplicates a local handle into pid's handle table
// (the push direction). The returned value is a handle in the target
// process's table, to be communicated to that process out of band.
func dupHandleToProcess(h Handle, pid int) (Handle, error) {
	hProcess, err := windows.OpenProcess(windows.PROCESS_ALL_ACCESS, true, uint32(pid))
	if err != nil {
		logWarn("dupHandleToProcess", err, "OpenProcess failed")
		return NullHandle, fmt.Errorf("procsync: open process %d: %w", pid, err)
	}
	defer windows.CloseHandle(hProcess)

	var out windows.Handle
	err = windows.DuplicateHandle(
		windows.CurrentProcess(),
		windows.Handle(h),
		hProcess,
		&out,
		0,
		true,
		windows.DUPLICATE_SAME_ACCESS,
	)
	if err != nil {
		logWarn("dupHandleToProcess", err, "DuplicateHandle failed")
		return NullHandle, fmt.Errorf("procsync: duplicate handle into process %d: %w", pid, err)
	}
	return Handle(out), nil
}

func closeHandle(h Handle) error {
	return windows.CloseHandle(windows.Handle(h))
}
