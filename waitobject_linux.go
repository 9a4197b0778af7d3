//go:build linux

package procsync

import (
	"time"

	"golang.org/x/sys/unix"
)

// waitFD blocks until fd is readable or timeout elapses, mapping the poll
// outcome onto the package Result model: readable -> Success, timeout ->
// NotReady, poll failure or fd error/invalidation -> Error.
//
// A timeout <= 0 polls without blocking.
func waitFD(fd int, timeout time.Duration) Result {
	deadline := time.Now().Add(timeout)
	for {
		ms := 0
		if timeout > 0 {
			remaining := time.Until(deadline)
			if remaining < 0 {
				remaining = 0
			}
			// Round up so short positive timeouts do not degrade to a poll.
			ms = int((remaining + time.Millisecond - 1) / time.Millisecond)
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			logWarn("waitFD", err, "poll failed")
			return ResultError
		}
		if n == 0 {
			return ResultNotReady
		}
		if fds[0].Revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
			logWarn("waitFD", nil, "poll reported fd error")
			return ResultError
		}
		return ResultSuccess
	}
}
