// Package store is the public factory for corkboard storage backends. The
// implementations stay internal; callers pick one by name.
package store

import (
	"fmt"

	"github.com/mesh-intelligence/corkboard/internal/filestore"
	"github.com/mesh-intelligence/corkboard/internal/memstore"
	"github.com/mesh-intelligence/corkboard/internal/sqlite"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// NewBackend returns a detached backend for name, one of the
// types.Backend* constants. Call Attach with a Config to initialize it.
//
// Example:
//
//	backend, err := store.NewBackend(types.BackendSQLite)
//	if err != nil {
//	    return err
//	}
//	err = backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: dataDir,
//	})
//	defer backend.Detach()
func NewBackend(name string) (types.Backend, error) {
	switch name {
	case types.BackendMemory:
		return memstore.NewBackend(), nil
	case types.BackendFile:
		return filestore.NewBackend(), nil
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, name)
	}
}
