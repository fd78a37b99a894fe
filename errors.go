package reqcore

import "errors"

// Parser errors, returned from Parse and fatal to the current request: the
// connection must be closed.
var (
	ErrHeaderTooBig         = errors.New("reqcore: header block exceeds buffer")
	ErrConnectionClosed     = errors.New("reqcore: connection closed before required bytes arrived")
	ErrTimeout              = errors.New("reqcore: header read timeout")
	ErrUnknownMethod        = errors.New("reqcore: unknown method")
	ErrInvalidRequestTarget = errors.New("reqcore: invalid request target")
	ErrUnknownProtocol      = errors.New("reqcore: malformed protocol")
	ErrUnsupportedProtocol  = errors.New("reqcore: unsupported protocol version")
	ErrInvalidHeaderLine    = errors.New("reqcore: invalid header line")
)

// Body/query/drain errors, returned to the handler rather than fatal to
// parsing itself.
var (
	ErrInvalidContentLength = errors.New("reqcore: invalid content-length")
	ErrBodyTooBig           = errors.New("reqcore: declared body exceeds max body size")
	ErrTooMuchData          = errors.New("reqcore: drain found more bytes than content-length allowed")
	ErrChunkedUnsupported   = errors.New("reqcore: chunked transfer-encoding is not implemented")
)

// Pool/container errors.
var (
	ErrStoreFull = errors.New("reqcore: fixed-capacity store is full")
)
