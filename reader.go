package reqcore

import (
	"errors"
	"net"
	"time"
)

// readForHeader waits for socket readability (if timeoutMS > 0), then issues
// exactly one read into buf. It performs at most one poll and one read; the
// caller composes multiple calls to accumulate a full header block.
//
// A read returning 0 with len(buf) == 0 means the caller gave zero space
// (the static buffer is full): ErrHeaderTooBig. A 0-byte read with
// len(buf) > 0 means the remote closed the connection: ErrConnectionClosed.
// Any positive count is returned verbatim, even alongside a read error.
func readForHeader(conn net.Conn, buf []byte, timeoutMS int) (int, error) {
	if timeoutMS > 0 {
		if err := waitReadable(conn, timeoutMS); err != nil {
			return 0, err
		}
	}

	n, err := conn.Read(buf)
	if n > 0 {
		return n, nil
	}
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return 0, ErrTimeout
		}
	}
	if len(buf) == 0 {
		return 0, ErrHeaderTooBig
	}
	return 0, ErrConnectionClosed
}

// waitReadableFallback sets a read deadline timeoutMS out and returns
// immediately; it does not itself detect readability. The timeout is
// enforced by the subsequent Read returning a net.Error with Timeout()
// true, which readForHeader translates to ErrTimeout.
func waitReadableFallback(conn net.Conn, timeoutMS int) error {
	return conn.SetReadDeadline(time.Now().Add(time.Duration(timeoutMS) * time.Millisecond))
}
