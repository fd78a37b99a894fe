package reqcore

import (
	"bytes"
	"math"
)

// Parser drives the incremental read-and-parse loop for one request against
// a bound RequestState. It owns no buffer of its own: every byte lands
// directly in state.buf, read incrementally via readForHeader and scanned
// for line boundaries via findCarriageReturn, so header parsing never
// allocates and never copies the header block a second time the way the
// teacher's bytes.Index(buf, "\r\n\r\n")-over-an-unbounded-append approach
// does.
//
// Parse runs four phases in order: method, target, protocol, headers. Each
// phase consumes bytes already in state.buf before asking readForHeader for
// more, and stops as soon as state.headerEnd is known.
type Parser struct {
	state *RequestState
}

// NewParser binds a Parser to state. The Parser holds no other state and
// can be discarded and recreated cheaply; state is what the object Pool
// recycles.
func NewParser(state *RequestState) *Parser {
	return &Parser{state: state}
}

// Parse reads and parses the request line and headers from the Parser's
// bound connection into its RequestState. On success state.headerEnd marks
// the end of the header block and any bytes beyond it up to state.filled
// are an over-read prefix of the body.
func (p *Parser) Parse() error {
	s := p.state

	lineEnd, err := p.readLine()
	if err != nil {
		return err
	}
	line := s.buf[:lineEnd]

	id, consumed := ParseMethodID(line)
	if id == MethodUnknown {
		return ErrUnknownMethod
	}
	s.method = id
	line = line[consumed:]

	if len(line) == 0 || line[0] != ' ' {
		return ErrInvalidRequestTarget
	}
	line = line[1:]

	sp := bytes.IndexByte(line, ' ')
	if sp <= 0 {
		return ErrInvalidRequestTarget
	}
	target := line[:sp]
	if target[0] != '/' && string(target) != wildcardTarget {
		return ErrInvalidRequestTarget
	}
	s.path, s.rawQuery = SplitTarget(target)
	s.target = target

	protoBytes := line[sp+1:]
	switch {
	case bytes.Equal(protoBytes, http11Bytes):
		s.proto = ProtoHTTP11
	case bytes.Equal(protoBytes, http10Bytes):
		s.proto = ProtoHTTP10
	default:
		if len(protoBytes) >= 5 && string(protoBytes[:5]) == "HTTP/" {
			return ErrUnsupportedProtocol
		}
		return ErrUnknownProtocol
	}

	if err := p.parseHeaders(lineEnd + 2); err != nil {
		return err
	}

	s.closeConn = s.proto == ProtoHTTP10
	if v, ok := s.headers.Get(headerConnection); ok {
		switch {
		case equalFoldASCII(v, headerClose):
			s.closeConn = true
		case s.proto == ProtoHTTP11 && equalFoldASCII(v, headerKeepAlive):
			// HTTP/1.0 never honors Connection: keep-alive (spec.md §9's
			// conservative default); only HTTP/1.1 can override its
			// already-keep-alive default back with an explicit close.
			s.closeConn = false
		}
	}

	return nil
}

// readLine ensures state.buf[:?] contains a full CRLF-terminated line
// starting at offset 0, reading more from the connection as needed, and
// returns the offset of the '\r'.
func (p *Parser) readLine() (int, error) {
	s := p.state
	for {
		if idx := findCarriageReturn(s.buf[:s.filled]); idx >= 0 && idx+1 < s.filled && s.buf[idx+1] == '\n' {
			return idx, nil
		}
		if err := p.fill(); err != nil {
			return 0, err
		}
	}
}

// fill performs one readForHeader call, appending into state.buf at
// state.filled and advancing it. It returns ErrHeaderTooBig once the
// buffer is exhausted without a complete header block.
func (p *Parser) fill() error {
	s := p.state
	if s.filled >= len(s.buf) {
		return ErrHeaderTooBig
	}
	n, err := readForHeader(s.conn, s.buf[s.filled:], s.cfg.ReadHeaderTimeoutMS)
	s.filled += n
	return err
}

// parseHeaders parses "Name: Value\r\n" lines starting at offset pos in
// state.buf, stopping at the blank line that ends the header block. Header
// names are lowercased in place (the buffer is never read afterward in its
// original case) per the spec's lowercased-storage invariant.
//
// Content-Length and Transfer-Encoding are only recorded here (raw value,
// duplicate-mismatch flag, chunked flag); decimal parsing and the
// InvalidContentLength/ChunkedUnsupported failures they can produce are
// deferred to Request.resolveContentLength, per spec.md §4.4's framing of
// that validation as part of body() rather than the header phase.
func (p *Parser) parseHeaders(pos int) error {
	s := p.state

	for {
		var lineEnd int
		for {
			idx := findCarriageReturn(s.buf[pos:s.filled])
			if idx >= 0 && pos+idx+1 < s.filled {
				lineEnd = pos + idx
				break
			}
			if err := p.fill(); err != nil {
				return err
			}
		}

		if s.buf[lineEnd+1] != '\n' {
			return ErrInvalidHeaderLine
		}
		if lineEnd == pos {
			s.headerEnd = pos + 2
			break
		}

		line := s.buf[pos:lineEnd]

		colon := bytes.IndexByte(line, ':')
		if colon <= 0 {
			return ErrInvalidHeaderLine
		}
		name := lowerInPlace(line[:colon])
		if bytes.IndexByte(name, ' ') != -1 || bytes.IndexByte(name, '\t') != -1 {
			return ErrInvalidHeaderLine
		}
		value := trimOWS(line[colon+1:])

		if err := s.headers.Add(name, value); err != nil && err != ErrStoreFull {
			return err
		}

		switch {
		case bytes.Equal(name, headerContentLength):
			if s.contentLengthRaw == nil {
				s.contentLengthRaw = value
			} else if !bytes.Equal(value, s.contentLengthRaw) {
				s.contentLengthMismatch = true
			}
		case bytes.Equal(name, headerTransferEncoding):
			s.transferEncodingPresent = true
			if equalFoldASCII(value, headerChunked) {
				s.transferChunked = true
			}
		}

		pos = lineEnd + 2
	}

	return nil
}

// parseContentLength parses a decimal Content-Length value with overflow
// and empty-value rejection.
func parseContentLength(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, ErrInvalidContentLength
	}
	var n int64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, ErrInvalidContentLength
		}
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0, ErrInvalidContentLength
		}
		n = n*10 + d
	}
	return n, nil
}

// trimOWS trims leading/trailing optional whitespace (space, tab) from a
// header value per RFC 7230 §3.2.
func trimOWS(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}

// lowerInPlace ASCII-lowercases b in place and returns it. Used only for
// header names, which the spec stores lowercased; never for values, since
// values keep the caller's original case and b here aliases the buffer a
// stored header value also points into.
func lowerInPlace(b []byte) []byte {
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return b
}

// equalFoldASCII reports whether a and b are equal under ASCII
// case-folding, without mutating either slice.
func equalFoldASCII(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
