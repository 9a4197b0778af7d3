//go:build linux

package procsync

import (
	"encoding/binary"
	"time"

	"golang.org/x/sys/unix"
)

// semaOS is the Linux semaphore: a pair of EFD_SEMAPHORE eventfds.
//
// items carries the semaphore count proper. slots carries the remaining
// capacity (maxCount - count), which is what makes the maximum enforceable
// across processes: Signal must first take a unit from slots, and an empty
// slots fd means the count is already at maximum. Both fds travel together
// when the semaphore is duplicated into another process.
type semaOS struct {
	items int
	slots int
}

const semaFlags = unix.EFD_SEMAPHORE | unix.EFD_CLOEXEC | unix.EFD_NONBLOCK

func newSema(initialCount, maxCount uint32) (semaOS, error) {
	items, err := unix.Eventfd(uint(initialCount), semaFlags)
	if err != nil {
		logWarn("NewSemaphore", err, "eventfd failed")
		return semaOS{}, ErrOperationFailed
	}
	slots, err := unix.Eventfd(uint(maxCount-initialCount), semaFlags)
	if err != nil {
		unix.Close(items)
		logWarn("NewSemaphore", err, "eventfd failed")
		return semaOS{}, ErrOperationFailed
	}
	return semaOS{items: items, slots: slots}, nil
}

func copySemaFromProcess(pid int, tok SemaphoreToken) (semaOS, error) {
	if tok.Items == NullHandle || tok.Slots == NullHandle {
		return semaOS{}, ErrInvalidParameter
	}
	items, err := DupHandleFromProcess(pid, tok.Items)
	if err != nil {
		return semaOS{}, err
	}
	slots, err := DupHandleFromProcess(pid, tok.Slots)
	if err != nil {
		unix.Close(int(items))
		return semaOS{}, err
	}
	return semaOS{items: int(items), slots: int(slots)}, nil
}

// takeUnit performs one non-blocking EFD_SEMAPHORE decrement on fd.
func takeUnit(fd int) (bool, error) {
	var buf [8]byte
	_, err := unix.Read(fd, buf[:])
	if err == unix.EAGAIN {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// postUnit increments the eventfd counter on fd by one.
func postUnit(fd int) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], 1)
	_, err := unix.Write(fd, buf[:])
	return err
}

func (s semaOS) signal() Result {
	ok, err := takeUnit(s.slots)
	if err != nil {
		logWarn("Semaphore.Signal", err, "capacity read failed")
		return ResultError
	}
	if !ok {
		// No capacity left: the count is at maxCount. Excess is an error,
		// never a clamp.
		return ResultError
	}
	if err := postUnit(s.items); err != nil {
		// Return the capacity unit so the invariant count+slots==max holds.
		_ = postUnit(s.slots)
		logWarn("Semaphore.Signal", err, "eventfd write failed")
		return ResultError
	}
	return ResultSuccess
}

func (s semaOS) wait(timeout time.Duration) Result {
	deadline := time.Now().Add(timeout)
	for {
		ok, err := takeUnit(s.items)
		if err != nil {
			logWarn("Semaphore.Wait", err, "eventfd read failed")
			return ResultError
		}
		if ok {
			if err := postUnit(s.slots); err != nil {
				logWarn("Semaphore.Wait", err, "capacity write failed")
				return ResultError
			}
			return ResultSuccess
		}

		remaining := timeout
		if timeout > 0 {
			remaining = time.Until(deadline)
		}
		if remaining <= 0 && timeout > 0 {
			return ResultNotReady
		}
		if r := waitFD(s.items, remaining); r != ResultSuccess {
			return r
		}
		// Readable at poll time, but another waiter may drain the count
		// before our read; loop and retry against the same deadline.
	}
}

func (s semaOS) token() SemaphoreToken {
	return SemaphoreToken{Items: Handle(s.items), Slots: Handle(s.slots)}
}

func (s semaOS) close() error {
	err := unix.Close(s.items)
	if err2 := unix.Close(s.slots); err == nil {
		err = err2
	}
	return err
}
