package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// ErrNotFound is returned by mutations that target a missing record.
var ErrNotFound = errors.New("record not found")

// Document is a collection persisted as a single canonical JSON file.
//
// Mutations run one at a time per Document: each cycle reads the committed
// state, applies the change in memory, writes a temp file next to the
// canonical one and renames it into place. A crash mid-write leaves at worst
// an orphaned temp file; the canonical file is always a complete prior or
// complete new state.
//
// Reads never block. They observe the last committed snapshot, which may be
// the pre- or post-state of an in-flight mutation.
type Document[T any] struct {
	path string

	mu   sync.Mutex // serializes the read-modify-write-rename cycle
	snap atomic.Pointer[[]T]
}

// Open loads the canonical file at path, creating an empty collection when
// the file is missing. A file that exists but does not parse is preserved
// under a timestamped backup name and the collection resets to empty; this
// trades strict durability for availability on purpose. Open fails only when
// the data directory is unusable.
func Open[T any](path string) (*Document[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	d := &Document[T]{path: path}
	items := []T{}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := d.commit(items); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if jsonErr := json.Unmarshal(raw, &items); jsonErr != nil {
			backup := fmt.Sprintf("%s.corrupt-%s", path, time.Now().UTC().Format("20060102T150405Z"))
			if err := os.WriteFile(backup, raw, 0o644); err != nil {
				return nil, fmt.Errorf("back up corrupt document: %w", err)
			}
			slog.Warn("canonical document corrupt, resetting to empty",
				"path", path, "backup", backup, "error", jsonErr)
			items = []T{}
			if err := d.commit(items); err != nil {
				return nil, err
			}
		}
	}

	d.snap.Store(&items)
	return d, nil
}

// Path returns the canonical file location.
func (d *Document[T]) Path() string {
	return d.path
}

// All returns the last committed snapshot. Callers must not modify it.
func (d *Document[T]) All() []T {
	return *d.snap.Load()
}

// Mutate applies fn to a copy of the committed collection and commits the
// result. At most one mutation is in flight at a time; submission order is
// commit order. An error from fn or from the write aborts the mutation and
// leaves the committed state untouched.
func (d *Document[T]) Mutate(fn func(items []T) ([]T, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	cur := *d.snap.Load()
	items := make([]T, len(cur))
	copy(items, cur)

	next, err := fn(items)
	if err != nil {
		return err
	}
	if err := d.commit(next); err != nil {
		return err
	}
	d.snap.Store(&next)
	return nil
}

// commit writes items to a temp file and renames it over the canonical path.
func (d *Document[T]) commit(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp document: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace canonical document: %w", err)
	}
	return nil
}
