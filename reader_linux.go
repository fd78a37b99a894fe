//go:build linux

package reqcore

import (
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// waitReadable blocks until conn has data available or timeoutMS elapses,
// using a single poll(2) call against the connection's file descriptor —
// grounded on the teacher's pkg/shockwave/socket convention of a
// linux-specific fast path behind a build tag. It does not itself read or
// set a deadline; a readable signal here just means the subsequent Read in
// readForHeader will not block.
func waitReadable(conn net.Conn, timeoutMS int) error {
	sc, ok := conn.(syscall.Conn)
	if !ok {
		return waitReadableFallback(conn, timeoutMS)
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return waitReadableFallback(conn, timeoutMS)
	}

	var pollErr error
	var ready bool
	ctrlErr := raw.Control(func(fd uintptr) {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, e := unix.Poll(fds, timeoutMS)
		if e != nil {
			pollErr = e
			return
		}
		if n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0 {
			ready = true
		}
	})
	if ctrlErr != nil {
		return waitReadableFallback(conn, timeoutMS)
	}
	if pollErr != nil {
		return pollErr
	}
	if !ready {
		return ErrTimeout
	}
	return nil
}
