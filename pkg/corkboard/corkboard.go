// Package corkboard is the entry point for embedding a board: Open picks and
// attaches a storage backend from a Config, then restores the saved board.
package corkboard

import (
	"fmt"

	"github.com/mesh-intelligence/corkboard/pkg/board"
	"github.com/mesh-intelligence/corkboard/pkg/store"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Version is the corkboard release.
const Version = "0.1.0"

// Board is a board engine bound to an attached backend.
type Board struct {
	*board.Engine

	backend types.Backend
}

// Open validates cfg, attaches the configured backend and loads the board
// stored there. opts are passed to board.New after the history capacity
// taken from cfg, so they may override it.
func Open(cfg types.Config, opts ...board.Option) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	backend, err := store.NewBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", cfg.Backend, err)
	}

	all := append([]board.Option{board.WithHistoryCapacity(cfg.Capacity())}, opts...)
	e := board.New(backend, all...)
	e.Load()
	return &Board{Engine: e, backend: backend}, nil
}

// Backend returns the attached storage backend.
func (b *Board) Backend() types.Backend {
	return b.backend
}

// Close detaches the backend. The engine must not be used afterwards.
func (b *Board) Close() error {
	return b.backend.Detach()
}
