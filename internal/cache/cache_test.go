package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/donaldgifford/fortfmt/internal/config"
)

func TestKeyDistinguishesContent(t *testing.T) {
	cfg := config.DefaultConfig()

	k1, err := Key(cfg, []byte("      x = 1\n"))
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	k2, err := Key(cfg, []byte("      x = 2\n"))
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if k1 == k2 {
		t.Error("different content produced the same key")
	}

	again, err := Key(cfg, []byte("      x = 1\n"))
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if k1 != again {
		t.Error("same inputs produced different keys")
	}
}

func TestKeyDistinguishesConfig(t *testing.T) {
	content := []byte("      x = 1\n")

	base := config.DefaultConfig()
	changed := config.DefaultConfig()
	changed.Formatter.IndentWidth = 4

	k1, err := Key(base, content)
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	k2, err := Key(changed, content)
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if k1 == k2 {
		t.Error("different configs produced the same key")
	}
}

func TestMarkCleanThenLookup(t *testing.T) {
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}

	key, err := Key(config.DefaultConfig(), []byte("end\n"))
	if err != nil {
		t.Fatalf("Key: %v", err)
	}

	if _, ok := s.Lookup(key); ok {
		t.Fatal("unexpected hit on empty store")
	}

	if err := s.MarkClean(key, 42); err != nil {
		t.Fatalf("MarkClean: %v", err)
	}

	e, ok := s.Lookup(key)
	if !ok {
		t.Fatal("expected a hit after MarkClean")
	}
	if e.Lines != 42 {
		t.Errorf("Lines = %d, want 42", e.Lines)
	}
	if e.SavedAt == 0 {
		t.Error("SavedAt not set")
	}
}

func TestMarkCleanRejectsNegativeLines(t *testing.T) {
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}

	var key Digest
	if err := s.MarkClean(key, -1); err == nil {
		t.Error("expected an error for a negative line count")
	}
}

func TestLookupIgnoresCorruptEntry(t *testing.T) {
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}

	var key Digest
	key[0] = 1

	p := s.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(p, []byte("not msgpack"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := s.Lookup(key); ok {
		t.Error("corrupt entry read as a hit")
	}
}

func TestLookupIgnoresStaleSchema(t *testing.T) {
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}

	var key Digest
	key[0] = 2

	p := s.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	raw, err := msgpack.Marshal(&Entry{Schema: schemaVersion + 1, Lines: 1})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := os.WriteFile(p, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := s.Lookup(key); ok {
		t.Error("stale schema read as a hit")
	}
}

func TestClear(t *testing.T) {
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}

	key, err := Key(config.DefaultConfig(), []byte("end\n"))
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if err := s.MarkClean(key, 1); err != nil {
		t.Fatalf("MarkClean: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := s.Lookup(key); ok {
		t.Error("hit survived Clear")
	}

	// The store stays usable after clearing.
	if err := s.MarkClean(key, 1); err != nil {
		t.Fatalf("MarkClean after Clear: %v", err)
	}
	if _, ok := s.Lookup(key); !ok {
		t.Error("store unusable after Clear")
	}
}

func TestNilStore(t *testing.T) {
	var s *Store

	var key Digest
	if err := s.MarkClean(key, 1); err != nil {
		t.Errorf("nil MarkClean: %v", err)
	}
	if _, ok := s.Lookup(key); ok {
		t.Error("nil store reported a hit")
	}
	if err := s.Clear(); err != nil {
		t.Errorf("nil Clear: %v", err)
	}
}
