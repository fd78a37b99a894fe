package reqcore

import "io"

// Request is the read-only view a handler sees over a parsed RequestState.
// It owns nothing: every accessor reads or decodes lazily from the bound
// state, and every returned byte slice is borrowed (from state.buf or
// state.arena) and only valid until the state is reset for the next
// connection — grounded on the teacher's Request type's "zero-copy, only
// valid during request lifetime" contract, generalized from the teacher's
// always-materialized Header/pathBytes/queryBytes fields to this package's
// lazy, arena-backed Query/Body.
type Request struct {
	state *RequestState
}

// NewRequest wraps state in a Request view.
func NewRequest(state *RequestState) *Request {
	return &Request{state: state}
}

// Method returns the parsed method ID.
func (r *Request) Method() uint8 { return r.state.method }

// MethodString returns the canonical method string.
func (r *Request) MethodString() string { return MethodString(r.state.method) }

// Target returns the raw, still percent-encoded request-target.
func (r *Request) Target() []byte { return r.state.target }

// Path returns the request-target with any query string stripped. It is
// still percent-encoded; call PathUnescape for the decoded form.
func (r *Request) Path() []byte { return r.state.path }

// PathUnescape returns the percent-decoded path. The result is borrowed
// from state.buf when no decoding was needed, or from the request arena
// otherwise; either way it is only valid until the next Reset.
func (r *Request) PathUnescape() ([]byte, error) {
	return unescapePath(r.state.path, r.state.arena)
}

// RawQuery returns the query string without the leading '?', still
// percent-encoded.
func (r *Request) RawQuery() []byte { return r.state.rawQuery }

// Proto returns the parsed protocol version (ProtoHTTP10 or ProtoHTTP11).
func (r *Request) Proto() uint8 { return r.state.proto }

// ContentLength returns the declared body length, or -1 if absent or if the
// declared Content-Length is malformed (duplicated with a different value,
// combined with Transfer-Encoding, non-numeric, or empty). A malformed
// Content-Length is not reported as an error here — call Body() or Drain()
// to observe ErrInvalidContentLength / ErrChunkedUnsupported.
func (r *Request) ContentLength() int64 {
	n, _ := r.resolveContentLength()
	return n
}

// HasBody reports whether the request declared a non-empty body.
func (r *Request) HasBody() bool {
	n, _ := r.resolveContentLength()
	return n > 0
}

// Header looks up a header by name. name must already be lowercased by the
// caller, matching the lowercased storage invariant headers are parsed
// under.
func (r *Request) Header(name []byte) ([]byte, bool) {
	return r.state.headers.Get(name)
}

// HeaderCount returns the number of headers parsed.
func (r *Request) HeaderCount() int { return r.state.headers.Len() }

// HeaderAt returns the header at position i in insertion order.
func (r *Request) HeaderAt(i int) KVEntry { return r.state.headers.At(i) }

// Param looks up a path parameter populated by an external router.
func (r *Request) Param(name []byte) ([]byte, bool) {
	return r.state.params.Get(name)
}

// Params exposes the request's PathParams store directly, so a router can
// populate it after a successful Parse.
func (r *Request) Params() *PathParams { return r.state.params }

// Query looks up a percent-decoded query parameter by name. The query
// string is parsed on first call and cached on state for subsequent calls;
// decoding happens into the request arena, never into state.buf, so Query
// and Body may be called in either order without clobbering each other.
func (r *Request) Query(name []byte) ([]byte, bool) {
	s := r.state
	if !s.queryParsed {
		// A malformed %-escape is not fatal to the request: parsing stops
		// at that pair, so lookups for it and for every later pair miss.
		// Pairs beyond MaxQueryCount are dropped the same way.
		_ = ParseQuery(s.rawQuery, s.query, s.arena)
		s.queryParsed = true
	}
	return s.query.Get(name)
}

// resolveContentLength parses and validates the request's declared body
// length on first call and caches both the result and any error for every
// subsequent call. This is where spec.md §4.4's body() validation actually
// happens: a non-numeric or empty Content-Length, a duplicate Content-
// Length with a disagreeing value, Content-Length combined with Transfer-
// Encoding, and bare chunked Transfer-Encoding are all deferred here rather
// than failing Parse(), so a handler that never touches the body still
// gets a usable Request.
func (r *Request) resolveContentLength() (int64, error) {
	s := r.state
	if s.contentLengthResolved {
		return s.contentLength, s.contentLengthErr
	}
	s.contentLengthResolved = true
	s.contentLength = -1

	switch {
	case s.contentLengthMismatch:
		s.contentLengthErr = ErrInvalidContentLength
	case s.contentLengthRaw != nil && s.transferEncodingPresent:
		s.contentLengthErr = ErrInvalidContentLength
	case s.transferEncodingPresent && s.transferChunked:
		s.contentLengthErr = ErrChunkedUnsupported
	case s.contentLengthRaw == nil:
		// No declared body; chunked encoding is not implemented.
	default:
		n, err := parseContentLength(s.contentLengthRaw)
		if err != nil {
			s.contentLengthErr = err
		} else {
			s.contentLength = n
		}
	}
	return s.contentLength, s.contentLengthErr
}

// Read implements io.Reader over the declared body: bytes already read
// ahead into state.buf during header parsing are served first, then
// further bytes are read directly from the connection into p (the body is
// never buffered into state.buf, since MaxBodySize is ordinarily larger
// than BufferSize). Read returns io.EOF once ContentLength bytes have been
// delivered, or immediately if there is no declared body. A 0-byte read
// from the connection before ContentLength bytes have arrived fails
// ErrConnectionClosed rather than surfacing as a bare io.EOF.
func (r *Request) Read(p []byte) (int, error) {
	s := r.state
	length, err := r.resolveContentLength()
	if err != nil {
		return 0, err
	}
	if length <= 0 {
		return 0, io.EOF
	}
	remaining := length - s.bodyConsumed
	if remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	bufPos := s.headerEnd + int(s.bodyConsumed)
	if bufPos < s.filled {
		n := copy(p, s.buf[bufPos:s.filled])
		s.bodyConsumed += int64(n)
		return n, nil
	}

	n, cerr := s.conn.Read(p)
	s.bodyConsumed += int64(n)
	if n == 0 {
		return 0, ErrConnectionClosed
	}
	return n, cerr
}

// Body reads the entire declared body into a single arena-owned slice and
// caches it for subsequent calls. Returns ErrInvalidContentLength or
// ErrChunkedUnsupported if the declared Content-Length/Transfer-Encoding
// was malformed, or ErrBodyTooBig if it exceeds the configured
// MaxBodySize, without reading anything.
func (r *Request) Body() ([]byte, error) {
	s := r.state
	if s.bodyCached {
		return s.bodyCache, nil
	}
	length, err := r.resolveContentLength()
	if err != nil {
		return nil, err
	}
	if length <= 0 {
		s.bodyCached = true
		return nil, nil
	}
	if length > s.cfg.MaxBodySize {
		return nil, ErrBodyTooBig
	}

	buf := s.arena.Alloc(int(length))
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	s.bodyCache = buf
	s.bodyCached = true
	s.bodyDrained = true
	return buf, nil
}

// Drain discards any remaining unread body bytes, so the connection is
// positioned at the start of the next pipelined request (or ready to
// close). Returns ErrBodyTooBig if ContentLength exceeds MaxBodySize, or
// ErrTooMuchData if more bytes were already read ahead into the static
// buffer than the declared body accounts for (a pipelined next request
// whose bytes would otherwise be silently discarded along with the body).
func (r *Request) Drain() error {
	s := r.state
	if s.bodyDrained {
		return nil
	}
	length, err := r.resolveContentLength()
	if err != nil {
		return err
	}
	overread := int64(s.filled - s.headerEnd)
	if length <= 0 {
		// No declared body: any over-read bytes past the header block
		// are unexplained data the client had no business sending.
		if overread > 0 {
			return ErrTooMuchData
		}
		s.bodyDrained = true
		return nil
	}
	if length > s.cfg.MaxBodySize {
		return ErrBodyTooBig
	}
	if overread > length {
		return ErrTooMuchData
	}

	var scratch [4096]byte
	for s.bodyConsumed < length {
		n, err := r.Read(scratch[:])
		if n == 0 && err != nil {
			return err
		}
	}
	s.bodyDrained = true
	return nil
}

// CanKeepAlive reports whether the connection may be reused for another
// request. It is a pure function of the protocol/Connection-header policy
// resolved during Parse (HTTP/1.0 always closes; HTTP/1.1 closes only on
// an explicit Connection: close) — it does not depend on whether the body
// has since been drained, since the caller must drain before reuse anyway
// regardless of what this reports.
func (r *Request) CanKeepAlive() bool {
	return !r.state.closeConn
}
