// Package cache memoizes formatting verdicts on disk so files already
// clean under the current configuration are skipped on repeat runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/fortfmt/internal/config"
)

// schemaVersion invalidates stored entries when the Entry format changes.
const schemaVersion uint16 = 1

// Digest identifies one (config, content) pair.
type Digest [sha256.Size]byte

// Entry records one verdict. An entry is stored only for content the
// formatter left unchanged, so a hit means the file is already clean
// under the keyed configuration.
type Entry struct {
	Schema  uint16
	Lines   uint32 // line count of the cached file
	SavedAt int64  // Unix seconds
}

// Key hashes the effective configuration together with the file content.
// Any configuration change therefore invalidates every stored verdict.
func Key(cfg *config.Config, content []byte) (Digest, error) {
	var d Digest

	cfgBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return d, err
	}

	h := sha256.New()
	h.Write(cfgBytes)
	h.Write([]byte{0})
	h.Write(content)
	copy(d[:], h.Sum(nil))

	return d, nil
}

// Store holds verdicts on disk. A nil Store ignores every call, so callers
// need no guard when caching is off.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// Open returns the store rooted at $XDG_CACHE_HOME/<app>, falling back to
// ~/.cache/<app>.
func Open(app string) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenAt(filepath.Join(base, app))
}

// OpenAt returns a store rooted at dir.
func OpenAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) pathFor(key Digest) string {
	return filepath.Join(s.dir, "clean", hex.EncodeToString(key[:])+".mp")
}

// MarkClean stores a verdict for key with the given line count.
func (s *Store) MarkClean(key Digest, lines int) error {
	if s == nil {
		return nil
	}
	n, err := safecast.Conv[uint32](lines)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()

	entry := Entry{
		Schema:  schemaVersion,
		Lines:   n,
		SavedAt: time.Now().Unix(),
	}
	if err := msgpack.NewEncoder(f).Encode(&entry); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Lookup returns the stored verdict for key. Missing files, decode
// failures, and stale schemas all read as a miss.
func (s *Store) Lookup(key Digest) (Entry, bool) {
	var e Entry
	if s == nil {
		return e, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.pathFor(key))
	if err != nil {
		return e, false
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(&e); err != nil {
		return Entry{}, false
	}
	if e.Schema != schemaVersion {
		return e, false
	}
	return e, true
}

// Clear drops every stored verdict. The directory is renamed aside first
// so a concurrent run never sees a half-removed store.
func (s *Store) Clear() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(s.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(s.dir, 0o755)
}
