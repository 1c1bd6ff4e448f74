// Package sqlite implements the SQLite storage backend for corkboard. Each
// stored blob is one row of a key-value table in <DataDir>/corkboard.db.
package sqlite

// dbFile is the database file name inside the data directory.
const dbFile = "corkboard.db"

// Schema DDL. The table is created on first attach and kept afterwards.
const (
	createKV = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// Queries against the kv table.
const (
	selectValue = `SELECT key, value, updated_at FROM kv WHERE key = ?`

	upsertValue = `INSERT INTO kv (key, value, updated_at)
VALUES (:key, :value, :updated_at)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	deleteValue = `DELETE FROM kv WHERE key = ?`

	selectKeys = `SELECT key FROM kv ORDER BY key`
)

// schemaStatements lists the DDL executed on attach, in order.
var schemaStatements = []string{
	createKV,
}
