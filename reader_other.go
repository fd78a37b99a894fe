//go:build !linux

package reqcore

import "net"

// waitReadable is the portable fallback used on every non-Linux platform
// (and when a connection doesn't expose a raw fd): it sets a read deadline
// and lets the subsequent Read enforce it, rather than polling directly.
func waitReadable(conn net.Conn, timeoutMS int) error {
	return waitReadableFallback(conn, timeoutMS)
}
