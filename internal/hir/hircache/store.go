package hircache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"oxbow/internal/hir"
	"oxbow/internal/trace"
)

// Store keeps encoded crates on disk under <dir>/crates/<fingerprint>.mp.
// Safe for concurrent use. A nil *Store is a cache that never hits.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// DefaultDir is $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func DefaultDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Open prepares a store rooted at dir. An empty dir selects DefaultDir("oxbow").
func Open(dir string) (*Store, error) {
	if dir == "" {
		d, err := DefaultDir("oxbow")
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the cache root.
func (s *Store) Dir() string {
	if s == nil {
		return ""
	}
	return s.dir
}

func (s *Store) pathFor(fp Fingerprint) string {
	return filepath.Join(s.dir, "crates", fp.String()+".mp")
}

// Put encodes c and stores it under its fingerprint.
func (s *Store) Put(ctx context.Context, c *hir.Crate) (Fingerprint, error) {
	data, fp, err := Encode(c)
	if err != nil || s == nil {
		return fp, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pathFor(fp)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fp, err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return fp, err
	}
	defer func() {
		// после Rename файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			trace.Point(trace.FromContext(ctx), trace.ScopeOwner, "cache.cleanup", rmErr.Error())
		}
	}()
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fp, err
	}
	if err := f.Close(); err != nil {
		return fp, err
	}
	// атомарная замена
	if err := os.Rename(f.Name(), p); err != nil {
		return fp, err
	}
	trace.Point(trace.FromContext(ctx), trace.ScopeOwner, "cache.put", fp.Short())
	return fp, nil
}

// Get loads the crate stored under fp. A missing entry or one written by an
// older schema is a miss, not an error.
func (s *Store) Get(ctx context.Context, fp Fingerprint) (*hir.Crate, bool, error) {
	if s == nil {
		return nil, false, nil
	}
	tracer := trace.FromContext(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.pathFor(fp))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			trace.Point(tracer, trace.ScopeOwner, "cache.miss", fp.Short())
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		if errors.Is(err, ErrSchemaMismatch) {
			trace.Point(tracer, trace.ScopeOwner, "cache.stale", fp.Short())
			return nil, false, nil
		}
		return nil, false, err
	}
	trace.Point(tracer, trace.ScopeOwner, "cache.hit", fp.Short())
	return c, true, nil
}

// Drop removes one entry. Removing a missing entry is not an error.
func (s *Store) Drop(fp Fingerprint) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.pathFor(fp)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// DropAll removes every stored crate.
func (s *Store) DropAll() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.RemoveAll(filepath.Join(s.dir, "crates"))
}
