package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// row is one stored blob.
type row struct {
	Key       string `db:"key"`
	Value     []byte `db:"value"`
	UpdatedAt string `db:"updated_at"`
}

// Backend implements types.Backend on a SQLite key-value table.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sqlx.DB
	now      func() time.Time
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{now: time.Now}
}

// Attach opens <DataDir>/corkboard.db, creating the directory and schema if
// needed. Existing rows are kept.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	db, err := sqlx.Connect("sqlite", filepath.Join(dataDir, dbFile))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database connection. After Detach, all operations
// return ErrDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// Get returns the value stored under key.
func (b *Backend) Get(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkLocked(key); err != nil {
		return nil, false, err
	}
	var r row
	err := b.db.Get(&r, selectValue, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	if r.Value == nil {
		r.Value = []byte{}
	}
	return r.Value, true, nil
}

// Set inserts or replaces the value under key.
func (b *Backend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkLocked(key); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	r := row{
		Key:       key,
		Value:     value,
		UpdatedAt: b.now().UTC().Format(time.RFC3339),
	}
	if _, err := b.db.NamedExec(upsertValue, r); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Remove deletes the row for key. A missing key is not an error.
func (b *Backend) Remove(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkLocked(key); err != nil {
		return err
	}
	if _, err := b.db.Exec(deleteValue, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys returns all stored keys in sorted order.
func (b *Backend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}
	var keys []string
	if err := b.db.Select(&keys, selectKeys); err != nil {
		return nil, fmt.Errorf("select keys: %w", err)
	}
	return keys, nil
}

func (b *Backend) checkLocked(key string) error {
	if !b.attached {
		return types.ErrDetached
	}
	if key == "" {
		return types.ErrInvalidKey
	}
	return nil
}
