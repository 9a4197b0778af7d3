package procsync

// DupHandleFromProcess obtains a handle valid in the calling process that
// refers to the same kernel object as h, where h is a handle value in
// process pid's handle table (the pull direction of the capability
// transfer protocol).
//
// The caller must be able to open pid with full access: on Linux this is
// pidfd_getfd, gated by ptrace-mode access checks; on Windows it is
// OpenProcess + DuplicateHandle. The returned handle is an independent
// capability, closable without affecting the source; the kernel object is
// destroyed only when the OS reference count across all holders reaches
// zero.
//
// Handle duplication is the only portable mechanism for granting another
// process access to a kernel object without a named, globally-visible
// identifier. This package never creates named objects: names collide and
// leak across user sessions.
func DupHandleFromProcess(pid int, h Handle) (Handle, error) {
	if h == NullHandle {
		return NullHandle, ErrInvalidParameter
	}
	return dupHandleFromProcess(pid, h)
}

// CloseHandle closes a handle previously produced by this package's
// duplication or creation operations.
func CloseHandle(h Handle) error {
	if h == NullHandle {
		return ErrInvalidParameter
	}
	return closeHandle(h)
}
