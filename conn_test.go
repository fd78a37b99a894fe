package reqcore

import (
	"net"
	"strings"
	"sync"
	"time"
)

// mockConn implements net.Conn over an in-memory byte string, grounded on
// the teacher's http11 test helper of the same shape — adapted to return
// data in bounded chunks so tests can exercise readForHeader's one-read-
// per-call contract against a request split across several socket reads.
type mockConn struct {
	readData  *strings.Reader
	chunkSize int // 0 means unbounded (one Read drains everything available)
	writeData strings.Builder
	closed    bool
	mu        sync.Mutex
}

func newMockConn(data string) *mockConn {
	return &mockConn{readData: strings.NewReader(data)}
}

// newChunkedMockConn behaves like newMockConn but never returns more than
// chunkSize bytes from a single Read, simulating a request that trickles
// in over multiple TCP segments.
func newChunkedMockConn(data string, chunkSize int) *mockConn {
	return &mockConn{readData: strings.NewReader(data), chunkSize: chunkSize}
}

func (m *mockConn) Read(b []byte) (int, error) {
	if m.chunkSize > 0 && len(b) > m.chunkSize {
		b = b[:m.chunkSize]
	}
	return m.readData.Read(b)
}

func (m *mockConn) Write(b []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writeData.Write(b)
}

func (m *mockConn) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockConn) LocalAddr() net.Addr  { return &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 8080} }
func (m *mockConn) RemoteAddr() net.Addr { return &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 12345} }
func (m *mockConn) SetDeadline(t time.Time) error      { return nil }
func (m *mockConn) SetReadDeadline(t time.Time) error  { return nil }
func (m *mockConn) SetWriteDeadline(t time.Time) error { return nil }
