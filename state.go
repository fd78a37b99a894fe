package reqcore

import (
	"net"

	"github.com/wattstack/reqcore/internal/arena"
)

// Config controls the resource limits and timeouts a Parser and the
// Request it produces enforce. The zero value is not ready to use; call
// DefaultConfig and override individual fields.
type Config struct {
	// BufferSize is the size of the single static buffer shared between
	// header storage and any over-read body prefix. It also caps the size
	// of the header block.
	BufferSize int

	// MaxBodySize bounds Body and Drain; a Content-Length beyond this fails
	// both with ErrBodyTooBig.
	MaxBodySize int64

	// MaxHeaderCount bounds the header KeyValueStore's capacity.
	MaxHeaderCount int

	// MaxQueryCount bounds the query KeyValueStore's capacity.
	MaxQueryCount int

	// MaxParamCount bounds the PathParams store's capacity.
	MaxParamCount int

	// ReadHeaderTimeoutMS bounds each readForHeader call, in milliseconds.
	// Zero disables the timeout.
	ReadHeaderTimeoutMS int
}

// DefaultConfig returns a Config populated with the library's default
// resource limits.
func DefaultConfig() Config {
	return Config{
		BufferSize:          DefaultBufferSize,
		MaxBodySize:         DefaultMaxBodySize,
		MaxHeaderCount:      DefaultMaxHeaderCount,
		MaxQueryCount:       DefaultMaxQueryCount,
		MaxParamCount:       DefaultMaxParamCount,
		ReadHeaderTimeoutMS: DefaultReadHeaderTimeout,
	}
}

// RequestState is the mutable, reusable core a Parser fills in and a
// Request reads from. One RequestState is bound to one connection at a
// time; the object Pool recycles it across connections instead of letting
// the garbage collector reclaim and reallocate it per request.
//
// buf is the single static buffer referenced by the spec's buffer-sharing
// invariant: bytes [0:headerEnd) hold the request line and headers,
// [headerEnd:filled) hold any body bytes read ahead of demand during the
// header read, and [filled:cap) is unused. Percent-decoding and Body never
// write into buf; they allocate from the arena instead.
type RequestState struct {
	conn net.Conn
	cfg  Config

	buf    []byte
	filled int // bytes in buf that hold real data, starting at 0

	headerEnd    int // offset where the header block ends (after blank line)
	bodyConsumed int64

	method uint8
	proto  uint8

	target   []byte // raw request-target, borrowed from buf
	path     []byte // target with any query string stripped
	rawQuery []byte // query string without leading '?', borrowed from buf

	headers *KeyValueStore
	query   *KeyValueStore
	params  *PathParams

	arena *arena.Arena

	// contentLengthRaw is the first Content-Length header's raw, untrimmed-
	// of-format value, or nil if none was sent. Parsing and validating its
	// decimal format is deferred to Request.resolveContentLength, not done
	// here: a malformed Content-Length must not be fatal to Parse itself.
	contentLengthRaw        []byte
	contentLengthMismatch   bool // a second Content-Length disagreed with the first
	transferEncodingPresent bool
	transferChunked         bool
	closeConn               bool

	contentLengthResolved bool
	contentLength         int64 // -1 once resolved absent or invalid
	contentLengthErr      error

	queryParsed bool
	bodyDrained bool

	bodyCached bool
	bodyCache  []byte
}

// NewRequestState allocates a RequestState sized per cfg. Intended to be
// called once per Pool slot, not once per request.
func NewRequestState(cfg Config) *RequestState {
	return &RequestState{
		cfg:     cfg,
		buf:     make([]byte, cfg.BufferSize),
		headers: NewKeyValueStore(cfg.MaxHeaderCount),
		query:   NewKeyValueStore(cfg.MaxQueryCount),
		params:  NewPathParams(cfg.MaxParamCount),
		arena:   arena.New(cfg.BufferSize / 4),
	}
}

// Reset clears a RequestState for reuse against a new connection, keeping
// every backing allocation (buf, the three stores, the arena's slab).
func (s *RequestState) Reset(conn net.Conn) {
	s.conn = conn
	s.filled = 0
	s.headerEnd = 0
	s.bodyConsumed = 0
	s.method = MethodUnknown
	s.proto = ProtoHTTP11
	s.target = nil
	s.path = nil
	s.rawQuery = nil
	s.contentLengthRaw = nil
	s.contentLengthMismatch = false
	s.transferEncodingPresent = false
	s.transferChunked = false
	s.closeConn = false
	s.contentLengthResolved = false
	s.contentLength = -1
	s.contentLengthErr = nil
	s.queryParsed = false
	s.bodyDrained = false
	s.bodyCached = false
	s.bodyCache = nil
	s.headers.Reset()
	s.query.Reset()
	s.params.Reset()
	s.arena.Reset()
}
