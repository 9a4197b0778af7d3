//go:build windows

package procsync

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// createSharedBuffer backs the region with an anonymous pagefile-backed
// file mapping (INVALID_HANDLE_VALUE instead of a file, no name).
func createSharedBuffer(size int) (Handle, error) {
	h, err := windows.CreateFileMapping(
		windows.InvalidHandle, // use the paging file
		nil,                   // default security
		windows.PAGE_READWRITE,
		uint32(uint64(size)>>32),
		uint32(uint64(size)&0xffffffff),
		nil, // not named
	)
	if err != nil {
		logWarn("NewSharedBuffer", err, "CreateFileMapping failed")
		return NullHandle, ErrOperationFailed
	}
	return Handle(h), nil
}

func mapBufferView(h Handle, size int) ([]byte, error) {
	addr, err := windows.MapViewOfFile(
		windows.Handle(h),
		windows.FILE_MAP_READ|windows.FILE_MAP_WRITE,
		0, 0,
		uintptr(size),
	)
	if err != nil {
		logWarn("SharedBuffer.Map", err, "MapViewOfFile failed")
		return nil, ErrOperationFailed
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func unmapBufferView(view []byte) error {
	if len(view) == 0 {
		return ErrInvalidParameter
	}
	if err := windows.UnmapViewOfFile(uintptr(unsafe.Pointer(&view[0]))); err != nil {
		logWarn("SharedBuffer.Unmap", err, "UnmapViewOfFile failed")
		return ErrOperationFailed
	}
	return nil
}
