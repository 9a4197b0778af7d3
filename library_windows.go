//go:build windows

package procsync

import (
	"golang.org/x/sys/windows"
)

// loadLibrary prefers an existing instance: GetModuleHandleEx (without the
// UNCHANGED_REFCOUNT flag) finds an already-loaded module and increments
// its reference count atomically, avoiding both a double load and the
// GetModuleHandle race. Only if no instance exists is the module loaded
// fresh.
func loadLibrary(name string) (uintptr, Result) {
	wname, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, ResultInvalidParameter
	}
	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, wname, &module); err == nil {
		return uintptr(module), ResultSuccess
	}
	h, err := windows.LoadLibrary(name)
	if err != nil {
		logDebug("Library.Load", "LoadLibrary: "+err.Error())
		return 0, ResultFileNotFound
	}
	return uintptr(h), ResultSuccess
}

func getFunction(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func closeLibrary(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
