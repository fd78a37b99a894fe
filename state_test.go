package reqcore

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BufferSize != DefaultBufferSize {
		t.Errorf("BufferSize = %d, want %d", cfg.BufferSize, DefaultBufferSize)
	}
	if cfg.MaxBodySize != DefaultMaxBodySize {
		t.Errorf("MaxBodySize = %d, want %d", cfg.MaxBodySize, DefaultMaxBodySize)
	}
}

func TestRequestStateResetClearsParsedFields(t *testing.T) {
	conn1 := newMockConn("GET /first HTTP/1.1\r\nHost: h\r\n\r\n")
	s := NewRequestState(testConfig())
	s.Reset(conn1)
	if err := NewParser(s).Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.headers.Len() != 1 {
		t.Fatalf("headers.Len() = %d, want 1", s.headers.Len())
	}

	conn2 := newMockConn("POST /second HTTP/1.1\r\nContent-Length: 0\r\n\r\n")
	s.Reset(conn2)
	if s.headers.Len() != 0 {
		t.Fatalf("headers.Len() after Reset = %d, want 0", s.headers.Len())
	}
	if s.filled != 0 || s.headerEnd != 0 {
		t.Fatalf("Reset did not clear filled/headerEnd: filled=%d headerEnd=%d", s.filled, s.headerEnd)
	}
	if err := NewParser(s).Parse(); err != nil {
		t.Fatalf("Parse after Reset: %v", err)
	}
	req := NewRequest(s)
	if string(req.Path()) != "/second" {
		t.Fatalf("Path after Reset+Parse = %q, want /second", req.Path())
	}
}
