package board

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/corkboard/internal/metrics"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock sets the time source for pin and snapshot timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator sets the ID source for pins, list items and snapshots.
// Defaults to UUID v7.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithRand sets the source used to pick palette colors. intn must return a
// value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(e *Engine) { e.intn = intn }
}

// WithHistoryCapacity bounds the undo ledger. Values below 1 select
// types.DefaultHistoryCapacity.
func WithHistoryCapacity(n int) Option {
	return func(e *Engine) { e.capacity = n }
}

// WithMetrics records engine activity on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

func defaultOptions(e *Engine) {
	e.log = slog.Default()
	e.now = time.Now
	e.newID = newUUID
	e.intn = rand.IntN
	e.capacity = types.DefaultHistoryCapacity
}
