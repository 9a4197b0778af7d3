//go:build linux

package procsync

import (
	"golang.org/x/sys/unix"
)

// createSharedBuffer backs the region with a memfd: anonymous, paging-store
// backed, and invisible to the filesystem namespace. The name below is a
// debugging label in /proc only, not a lookup key.
func createSharedBuffer(size int) (Handle, error) {
	fd, err := unix.MemfdCreate("procsync-buffer", unix.MFD_CLOEXEC)
	if err != nil {
		logWarn("NewSharedBuffer", err, "memfd_create failed")
		return NullHandle, ErrOperationFailed
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		logWarn("NewSharedBuffer", err, "ftruncate failed")
		return NullHandle, ErrFileIo
	}
	return Handle(fd), nil
}

func mapBufferView(h Handle, size int) ([]byte, error) {
	view, err := unix.Mmap(int(h), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		logWarn("SharedBuffer.Map", err, "mmap failed")
		return nil, ErrOperationFailed
	}
	return view, nil
}

func unmapBufferView(view []byte) error {
	if err := unix.Munmap(view); err != nil {
		logWarn("SharedBuffer.Unmap", err, "munmap failed")
		return ErrOperationFailed
	}
	return nil
}
