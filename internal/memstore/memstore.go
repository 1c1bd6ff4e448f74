// Package memstore is a Store held entirely in process memory. It backs
// tests and throwaway boards; nothing survives Detach.
package memstore

import (
	"slices"
	"sync"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Backend is an in-memory types.Backend.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	data     map[string][]byte
}

// NewBackend returns a detached in-memory backend.
func NewBackend() *Backend {
	return &Backend{}
}

// New returns an attached in-memory backend, ready for use.
func New() *Backend {
	b := NewBackend()
	b.attached = true
	b.data = make(map[string][]byte)
	return b
}

// Attach readies the backend. Config is accepted for interface parity; the
// data directory is ignored.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	b.attached = true
	b.data = make(map[string][]byte)
	return nil
}

// Detach drops all stored values. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.attached = false
	b.data = nil
	return nil
}

// Get returns a copy of the value stored under key.
func (b *Backend) Get(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, false, types.ErrDetached
	}
	if key == "" {
		return nil, false, types.ErrInvalidKey
	}
	v, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Set stores a copy of value under key.
func (b *Backend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	if key == "" {
		return types.ErrInvalidKey
	}
	v := slices.Clone(value)
	if v == nil {
		v = []byte{}
	}
	b.data[key] = v
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (b *Backend) Remove(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	if key == "" {
		return types.ErrInvalidKey
	}
	delete(b.data, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (b *Backend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}

	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}
