package reqcore

import (
	"net"

	"github.com/wattstack/reqcore/pool"
)

// StatePool is a fixed-capacity pool of RequestState, so a server can
// recycle one per connection instead of allocating and garbage collecting
// the buffer, stores, and arena on every request.
type StatePool struct {
	pool *pool.Pool[*RequestState]
}

// NewStatePool creates a StatePool with room for capacity idle
// RequestStates, each built from cfg when the pool needs a fresh one.
func NewStatePool(capacity int, cfg Config) *StatePool {
	return &StatePool{
		pool: pool.New(capacity, func() *RequestState {
			return NewRequestState(cfg)
		}),
	}
}

// Acquire claims a RequestState and binds it to conn, resetting it for
// reuse first.
func (p *StatePool) Acquire(conn net.Conn) *RequestState {
	s := p.pool.Acquire()
	s.Reset(conn)
	return s
}

// Release returns s to the pool once the connection it served is done with
// it (either closing, or about to be rebound to the next pipelined
// request via a fresh Acquire).
func (p *StatePool) Release(s *RequestState) {
	p.pool.Release(s)
}

// Cap returns the pool's fixed capacity.
func (p *StatePool) Cap() int { return p.pool.Cap() }
