package types

import "errors"

// Store is the key-value medium the board persists into. Values are opaque
// blobs; Get reports ok=false for a missing key.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// Backend is a Store with an attach/detach lifecycle.
type Backend interface {
	Store

	// Attach connects the backend to the medium described by config.
	// Creates DataDir if it does not exist. Returns ErrAlreadyAttached if
	// called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach, Store
	// operations return ErrDetached.
	Detach() error

	// Keys lists the stored keys in sorted order.
	Keys() ([]string, error)
}

// Backend lifecycle errors.
var (
	ErrDetached        = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
	ErrInvalidKey      = errors.New("invalid storage key")
)
