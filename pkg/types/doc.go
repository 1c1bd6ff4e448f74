// Package types defines the entity model for the corkboard: pins, list items,
// snapshots, drafts and patches, the per-type sizing policy, the key-value
// Store and Backend interfaces, and the standard error values.
//
// Entities are plain values. Pin.Clone and ClonePins produce deep copies so
// that history entries and snapshots never share slices with the live board.
package types
