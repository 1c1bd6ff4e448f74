package types

import "errors"

// Config holds backend selection and board parameters for corkboard.Open.
type Config struct {
	Backend         string `json:"backend" yaml:"backend"`
	DataDir         string `json:"data_dir" yaml:"data_dir"`
	HistoryCapacity int    `json:"history_capacity" yaml:"history_capacity"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DefaultHistoryCapacity is the number of undo entries kept when
// Config.HistoryCapacity is zero.
const DefaultHistoryCapacity = 50

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrInvalidCapacity = errors.New("history capacity must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendFile:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.HistoryCapacity < 0 {
		return ErrInvalidCapacity
	}
	return nil
}

// Capacity returns the effective history capacity.
func (c Config) Capacity() int {
	if c.HistoryCapacity == 0 {
		return DefaultHistoryCapacity
	}
	return c.HistoryCapacity
}
