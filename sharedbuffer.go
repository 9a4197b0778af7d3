package procsync

// SharedBuffer is an anonymous shared-memory region backed by the system
// paging store (not a file), usable for inter-process shared memory. It is
// identified by a handle rather than a name, so access is granted only by
// explicit duplication into a peer process.
type SharedBuffer struct {
	h      Handle
	size   int
	closed Word
}

// NewSharedBuffer creates an anonymous shared-memory region of the given
// size in bytes.
func NewSharedBuffer(size int) (*SharedBuffer, error) {
	if size <= 0 {
		return nil, ErrInvalidParameter
	}
	h, err := createSharedBuffer(size)
	if err != nil {
		return nil, err
	}
	return &SharedBuffer{h: h, size: size}, nil
}

// CopyBufferFromProcess obtains a buffer referring to the same shared
// region as h, where h is a handle value in process pid's handle table.
// size must match the region's size; it is carried out of band because a
// raw handle does not encode it portably.
func CopyBufferFromProcess(pid int, h Handle, size int) (*SharedBuffer, error) {
	if size <= 0 {
		return nil, ErrInvalidParameter
	}
	dup, err := DupHandleFromProcess(pid, h)
	if err != nil {
		return nil, err
	}
	return &SharedBuffer{h: dup, size: size}, nil
}

// Handle returns the buffer's handle value within the calling process, for
// transfer to a peer.
func (b *SharedBuffer) Handle() Handle { return b.h }

// Size returns the region size in bytes.
func (b *SharedBuffer) Size() int { return b.size }

// Map maps the shared region into the calling process's address space,
// returning a slice covering the full region. Multiple mappings of the
// same buffer (in the same or different processes) alias the same memory.
func (b *SharedBuffer) Map() ([]byte, error) {
	if b.closed.Load() != 0 {
		return nil, ErrInvalidParameter
	}
	return mapBufferView(b.h, b.size)
}

// Unmap releases a mapping previously returned by Map. The view must not
// be used afterwards.
func (b *SharedBuffer) Unmap(view []byte) error {
	return unmapBufferView(view)
}

// ShareWithProcess duplicates the buffer handle into process pid's handle
// table and returns the handle value valid in that process (the push
// direction). On platforms without handle-table injection (Linux) it
// returns ErrUnavailable; peers there pull with [CopyBufferFromProcess] or
// receive the handle over a [HandleConn].
func (b *SharedBuffer) ShareWithProcess(pid int) (Handle, error) {
	if b.closed.Load() != 0 {
		return NullHandle, ErrInvalidParameter
	}
	return dupHandleToProcess(b.h, pid)
}

// Close releases this process's handle to the region. Idempotent.
// Existing mappings remain valid until unmapped; the region itself is
// destroyed when all handles and mappings across all processes are gone.
func (b *SharedBuffer) Close() error {
	if Increment(&b.closed) != 1 {
		return nil
	}
	return closeHandle(b.h)
}
