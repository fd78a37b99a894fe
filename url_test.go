package reqcore

import (
	"testing"

	"github.com/wattstack/reqcore/internal/arena"
)

func TestSplitTarget(t *testing.T) {
	tests := []struct {
		target    string
		wantPath  string
		wantQuery string
	}{
		{"/a/b", "/a/b", ""},
		{"/a/b?x=1", "/a/b", "x=1"},
		{"/a/b?", "/a/b", ""},
		{"*", "*", ""},
	}
	for _, tt := range tests {
		path, query := SplitTarget([]byte(tt.target))
		if string(path) != tt.wantPath || string(query) != tt.wantQuery {
			t.Errorf("SplitTarget(%q) = (%q, %q), want (%q, %q)",
				tt.target, path, query, tt.wantPath, tt.wantQuery)
		}
	}
}

func TestParseQueryBasic(t *testing.T) {
	a := arena.New(256)
	store := NewKeyValueStore(8)
	if err := ParseQuery([]byte("a=1&b=2&flag"), store, a); err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if v, ok := store.Get([]byte("a")); !ok || string(v) != "1" {
		t.Errorf("a = (%q, %v), want (1, true)", v, ok)
	}
	if v, ok := store.Get([]byte("b")); !ok || string(v) != "2" {
		t.Errorf("b = (%q, %v), want (2, true)", v, ok)
	}
	if v, ok := store.Get([]byte("flag")); !ok || string(v) != "" {
		t.Errorf("flag = (%q, %v), want (\"\", true)", v, ok)
	}
}

func TestParseQueryCapacityOverflowIsSilentlyDropped(t *testing.T) {
	a := arena.New(256)
	store := NewKeyValueStore(1)
	if err := ParseQuery([]byte("a=1&b=2"), store, a); err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (capacity bound, not an error)", store.Len())
	}
}
