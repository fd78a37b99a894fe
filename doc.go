// Package reqcore implements the request-parsing and connection-state core
// of a minimal HTTP/1.x server library: a streaming header/line parser that
// shares a single static buffer between header storage and over-read body
// prefix (decoded query values and the full body go to a per-request arena),
// and a lock-free fixed-capacity pool used to recycle per-request scratch
// state across connections.
//
// The router, middleware pipeline, response writer, accept loop and TLS are
// external collaborators and live outside this package.
package reqcore
