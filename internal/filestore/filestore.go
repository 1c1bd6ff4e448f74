// Package filestore keeps each stored value in its own JSON file under the
// data directory: <DataDir>/<key>.json. Writes go through a temp file and a
// rename so a crash never leaves a half-written blob behind.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// fileExt is appended to every key to form its file name.
const fileExt = ".json"

// validKey matches keys that are safe to use as file names.
var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Backend is a file-per-key types.Backend.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	dir      string
}

// NewBackend returns a detached file backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach points the backend at config.DataDir, creating it if needed.
// An empty DataDir means the current directory.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	dir := config.DataDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	b.dir = dir
	b.attached = true
	return nil
}

// Detach releases the backend. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.attached = false
	b.dir = ""
	return nil
}

// Get reads the file for key.
func (b *Backend) Get(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	path, err := b.pathLocked(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, true, nil
}

// Set replaces the file for key atomically.
func (b *Backend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	path, err := b.pathLocked(key)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, value)
}

// Remove deletes the file for key. A missing file is not an error.
func (b *Backend) Remove(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	path, err := b.pathLocked(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

// Keys lists the keys that have a file in the data directory, sorted.
func (b *Backend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("listing data dir: %w", err)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		key := strings.TrimSuffix(name, fileExt)
		if validKey.MatchString(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *Backend) pathLocked(key string) (string, error) {
	if !b.attached {
		return "", types.ErrDetached
	}
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidKey, key)
	}
	return filepath.Join(b.dir, key+fileExt), nil
}

// writeFileAtomic writes data to path using the temp-file, fsync, rename
// pattern.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".corkboard-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
